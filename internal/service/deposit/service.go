package deposit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pertashop/backoffice-go/internal/domain/deposit"
	"github.com/pertashop/backoffice-go/internal/pkg/currency"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
)

type DepositServiceImpl struct {
	deposit.Repository
	PricePerLiter decimal.Decimal
}

func NewDepositService(repo deposit.Repository, pricePerLiter decimal.Decimal) deposit.Service {
	return &DepositServiceImpl{
		Repository:    repo,
		PricePerLiter: pricePerLiter,
	}
}

// toItems assigns IDs to new items so individual entries stay addressable
// across edits.
func toItems(inputs []deposit.ItemInput) []deposit.Item {
	items := make([]deposit.Item, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, deposit.Item{
			ID:          id,
			Description: in.Description,
			Amount:      in.Amount,
		})
	}
	return items
}

func toResponse(dep deposit.Deposit) deposit.DepositResponse {
	resp := deposit.DepositResponse{
		ID:               dep.ID,
		StaffName:        dep.StaffName,
		Date:             dep.Date.Format("2006-01-02"),
		ClockIn:          dep.ClockIn,
		ClockOut:         dep.ClockOut,
		MeterStart:       dep.MeterStart,
		MeterEnd:         dep.MeterEnd,
		TotalLiters:      dep.TotalLiters,
		GrossAmount:      dep.GrossAmount,
		QRISAmount:       dep.QRISAmount,
		CashAmount:       dep.CashAmount,
		Expenses:         dep.Expenses,
		TotalExpenses:    dep.TotalExpenses,
		Income:           dep.Income,
		TotalIncome:      dep.TotalIncome,
		TotalAmount:      dep.TotalAmount,
		TotalAmountLabel: currency.FormatRupiah(dep.TotalAmount),
		CreatedAt:        dep.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        dep.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Expenses == nil {
		resp.Expenses = []deposit.Item{}
	}
	if resp.Income == nil {
		resp.Income = []deposit.Item{}
	}
	return resp
}

func (d *DepositServiceImpl) recalc(dep *deposit.Deposit) {
	calc := deposit.Calculate(dep.MeterStart, dep.MeterEnd, dep.QRISAmount, d.PricePerLiter, dep.Expenses, dep.Income)
	dep.TotalLiters = calc.TotalLiters
	dep.GrossAmount = calc.GrossAmount
	dep.CashAmount = calc.CashAmount
	dep.TotalExpenses = calc.TotalExpenses
	dep.TotalIncome = calc.TotalIncome
	dep.TotalAmount = calc.TotalAmount
}

// Create implements deposit.Service.
func (d *DepositServiceImpl) Create(ctx context.Context, req deposit.CreateDepositRequest) (deposit.DepositResponse, error) {
	if err := req.Validate(); err != nil {
		return deposit.DepositResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	dep := deposit.Deposit{
		StaffName:  req.StaffName,
		Date:       date,
		ClockIn:    req.ClockIn,
		ClockOut:   req.ClockOut,
		MeterStart: req.MeterStart,
		MeterEnd:   req.MeterEnd,
		QRISAmount: req.QRISAmount,
		Expenses:   toItems(req.Expenses),
		Income:     toItems(req.Income),
	}
	d.recalc(&dep)

	created, err := d.Repository.Create(ctx, dep)
	if err != nil {
		return deposit.DepositResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements deposit.Service.
func (d *DepositServiceImpl) Get(ctx context.Context, id string) (deposit.DepositResponse, error) {
	dep, err := d.Repository.GetByID(ctx, id)
	if err != nil {
		return deposit.DepositResponse{}, err
	}
	return toResponse(dep), nil
}

// List implements deposit.Service.
func (d *DepositServiceImpl) List(ctx context.Context, filter deposit.DepositFilter) (deposit.ListDepositResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := d.Repository.List(ctx, filter)
	if err != nil {
		return deposit.ListDepositResponse{}, err
	}

	data := make([]deposit.DepositResponse, 0, len(records))
	for _, dep := range records {
		data = append(data, toResponse(dep))
	}

	return deposit.ListDepositResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements deposit.Service. Every accepted edit rederives the
// calculated columns.
func (d *DepositServiceImpl) Update(ctx context.Context, req deposit.UpdateDepositRequest) (deposit.DepositResponse, error) {
	if err := req.Validate(); err != nil {
		return deposit.DepositResponse{}, err
	}

	dep, err := d.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return deposit.DepositResponse{}, err
	}

	if req.StaffName != nil {
		dep.StaffName = *req.StaffName
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		dep.Date = date
	}
	if req.ClockIn != nil {
		dep.ClockIn = *req.ClockIn
	}
	if req.ClockOut != nil {
		dep.ClockOut = *req.ClockOut
	}
	if req.MeterStart != nil {
		dep.MeterStart = *req.MeterStart
	}
	if req.MeterEnd != nil {
		dep.MeterEnd = *req.MeterEnd
	}
	if req.QRISAmount != nil {
		dep.QRISAmount = *req.QRISAmount
	}
	if req.Expenses != nil {
		dep.Expenses = toItems(*req.Expenses)
	}
	if req.Income != nil {
		dep.Income = toItems(*req.Income)
	}

	d.recalc(&dep)

	if err := d.Repository.Update(ctx, dep); err != nil {
		return deposit.DepositResponse{}, err
	}

	return toResponse(dep), nil
}

// Delete implements deposit.Service.
func (d *DepositServiceImpl) Delete(ctx context.Context, id string) error {
	return d.Repository.Delete(ctx, id)
}

// Preview implements deposit.Service: the same calculation as Create
// without persisting anything, for the entry form.
func (d *DepositServiceImpl) Preview(ctx context.Context, req deposit.CreateDepositRequest) (deposit.Calculation, error) {
	if err := req.Validate(); err != nil {
		return deposit.Calculation{}, err
	}

	calc := deposit.Calculate(req.MeterStart, req.MeterEnd, req.QRISAmount, d.PricePerLiter, toItems(req.Expenses), toItems(req.Income))
	return calc, nil
}
