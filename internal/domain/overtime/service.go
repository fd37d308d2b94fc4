package overtime

import "context"

type RequestService interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	Get(ctx context.Context, id string) (RequestResponse, error)
	List(ctx context.Context, filter RequestFilter) (ListRequestResponse, error)
	Approve(ctx context.Context, id string) (RequestResponse, error)
	Reject(ctx context.Context, req RejectRequestRequest) (RequestResponse, error)
	Delete(ctx context.Context, id string) error
}
