package payroll

import "context"

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) ([]RecordResponse, error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter Filter) (ListRecordResponse, error)
	Update(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	MarkPaid(ctx context.Context, id string) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
	GetPeriodSummary(ctx context.Context, month, year int) (PeriodSummary, error)
}
