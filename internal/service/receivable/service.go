package receivable

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pertashop/backoffice-go/internal/domain/receivable"
	"github.com/pertashop/backoffice-go/internal/pkg/currency"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
	"github.com/pertashop/backoffice-go/internal/repository/postgresql"
)

type ReceivableServiceImpl struct {
	receivable.Repository
	CustomerRepository receivable.CustomerRepository
	db                 *database.DB
}

func NewReceivableService(db *database.DB, repo receivable.Repository, custRepo receivable.CustomerRepository) receivable.Service {
	return &ReceivableServiceImpl{
		Repository:         repo,
		CustomerRepository: custRepo,
		db:                 db,
	}
}

func (s *ReceivableServiceImpl) toCustomerResponse(ctx context.Context, c receivable.Customer) (receivable.CustomerResponse, error) {
	outstanding, err := s.Repository.SumOutstandingByCustomer(ctx, c.ID)
	if err != nil {
		return receivable.CustomerResponse{}, err
	}
	return receivable.CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Address:          c.Address,
		TotalOutstanding: outstanding,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func toPaymentResponse(p receivable.Payment) receivable.PaymentResponse {
	return receivable.PaymentResponse{
		ID:     p.ID,
		Amount: p.Amount,
		PaidAt: p.PaidAt.Format("2006-01-02"),
		Method: p.Method,
		Note:   p.Note,
	}
}

func toResponse(rec receivable.Receivable, payments []receivable.Payment) receivable.ReceivableResponse {
	resp := receivable.ReceivableResponse{
		ID:               rec.ID,
		CustomerID:       rec.CustomerID,
		CustomerName:     rec.CustomerName,
		Amount:           rec.Amount,
		PaidTotal:        rec.PaidTotal,
		Outstanding:      rec.Outstanding,
		OutstandingLabel: currency.FormatRupiah(rec.Outstanding),
		Note:             rec.Note,
		Status:           rec.Status,
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.DueDate != nil {
		d := rec.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(p))
	}
	return resp
}

// CreateCustomer implements receivable.Service.
func (s *ReceivableServiceImpl) CreateCustomer(ctx context.Context, req receivable.CreateCustomerRequest) (receivable.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return receivable.CustomerResponse{}, err
	}

	created, err := s.CustomerRepository.Create(ctx, receivable.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return receivable.CustomerResponse{}, err
	}

	return s.toCustomerResponse(ctx, created)
}

// GetCustomer implements receivable.Service.
func (s *ReceivableServiceImpl) GetCustomer(ctx context.Context, id string) (receivable.CustomerResponse, error) {
	c, err := s.CustomerRepository.GetByID(ctx, id)
	if err != nil {
		return receivable.CustomerResponse{}, err
	}
	return s.toCustomerResponse(ctx, c)
}

// ListCustomers implements receivable.Service.
func (s *ReceivableServiceImpl) ListCustomers(ctx context.Context, page, limit int) ([]receivable.CustomerResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	customers, total, err := s.CustomerRepository.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	data := make([]receivable.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp, err := s.toCustomerResponse(ctx, c)
		if err != nil {
			return nil, 0, err
		}
		data = append(data, resp)
	}

	return data, total, nil
}

// UpdateCustomer implements receivable.Service.
func (s *ReceivableServiceImpl) UpdateCustomer(ctx context.Context, req receivable.UpdateCustomerRequest) (receivable.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return receivable.CustomerResponse{}, err
	}

	c, err := s.CustomerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return receivable.CustomerResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Address != nil {
		c.Address = req.Address
	}

	if err := s.CustomerRepository.Update(ctx, c); err != nil {
		return receivable.CustomerResponse{}, err
	}

	return s.toCustomerResponse(ctx, c)
}

// DeleteCustomer implements receivable.Service. A customer who still owes
// money cannot be removed.
func (s *ReceivableServiceImpl) DeleteCustomer(ctx context.Context, id string) error {
	outstanding, err := s.Repository.SumOutstandingByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if outstanding.IsPositive() {
		return receivable.ErrCustomerHasOutstanding
	}
	return s.CustomerRepository.Delete(ctx, id)
}

// Create implements receivable.Service.
func (s *ReceivableServiceImpl) Create(ctx context.Context, req receivable.CreateReceivableRequest) (receivable.ReceivableResponse, error) {
	if err := req.Validate(); err != nil {
		return receivable.ReceivableResponse{}, err
	}

	cust, err := s.CustomerRepository.GetByID(ctx, req.CustomerID)
	if err != nil {
		return receivable.ReceivableResponse{}, err
	}

	rec := receivable.Receivable{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Note:       req.Note,
		Status:     receivable.StatusOutstanding,
	}
	if req.DueDate != nil {
		d, _ := validator.IsValidDate(*req.DueDate)
		rec.DueDate = &d
	}

	created, err := s.Repository.Create(ctx, rec)
	if err != nil {
		return receivable.ReceivableResponse{}, err
	}
	created.CustomerName = &cust.Name

	return toResponse(created, nil), nil
}

// Get implements receivable.Service.
func (s *ReceivableServiceImpl) Get(ctx context.Context, id string) (receivable.ReceivableResponse, error) {
	rec, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return receivable.ReceivableResponse{}, err
	}

	payments, err := s.Repository.ListPayments(ctx, id)
	if err != nil {
		return receivable.ReceivableResponse{}, err
	}

	return toResponse(rec, payments), nil
}

// List implements receivable.Service.
func (s *ReceivableServiceImpl) List(ctx context.Context, filter receivable.ReceivableFilter) (receivable.ListReceivableResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return receivable.ListReceivableResponse{}, err
	}

	data := make([]receivable.ReceivableResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toResponse(rec, nil))
	}

	return receivable.ListReceivableResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Delete implements receivable.Service.
func (s *ReceivableServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

// RecordPayment implements receivable.Service. Overpaying is rejected;
// paying the balance down to zero flips the receivable to paid.
func (s *ReceivableServiceImpl) RecordPayment(ctx context.Context, req receivable.RecordPaymentRequest) (receivable.ReceivableResponse, error) {
	if err := req.Validate(); err != nil {
		return receivable.ReceivableResponse{}, err
	}

	rec, err := s.Repository.GetByID(ctx, req.ReceivableID)
	if err != nil {
		return receivable.ReceivableResponse{}, err
	}
	if rec.Status == receivable.StatusPaid {
		return receivable.ReceivableResponse{}, receivable.ErrReceivableAlreadyPaid
	}
	if req.Amount.GreaterThan(rec.Outstanding) {
		return receivable.ReceivableResponse{}, receivable.ErrPaymentExceedsBalance
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		d, _ := validator.IsValidDate(*req.PaidAt)
		paidAt = d
	}
	method := req.Method
	if method == "" {
		method = "cash"
	}

	// The installment and the status flip must land together.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if _, err := s.Repository.CreatePayment(txCtx, receivable.Payment{
			ReceivableID: req.ReceivableID,
			Amount:       req.Amount,
			PaidAt:       paidAt,
			Method:       method,
			Note:         req.Note,
		}); err != nil {
			return err
		}

		if req.Amount.Equal(rec.Outstanding) {
			if err := s.Repository.UpdateStatus(txCtx, rec.ID, receivable.StatusPaid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return receivable.ReceivableResponse{}, err
	}

	return s.Get(ctx, req.ReceivableID)
}

// Aging implements receivable.Service.
func (s *ReceivableServiceImpl) Aging(ctx context.Context) (receivable.AgingSummary, error) {
	entries, err := s.Repository.ListOutstanding(ctx)
	if err != nil {
		return receivable.AgingSummary{}, err
	}
	return receivable.ComputeAging(entries, time.Now()), nil
}
