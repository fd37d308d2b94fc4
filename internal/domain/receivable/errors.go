package receivable

import "errors"

var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrCustomerHasOutstanding = errors.New("customer still has outstanding receivables")
	ErrReceivableNotFound     = errors.New("receivable not found")
	ErrReceivableAlreadyPaid  = errors.New("receivable is already fully paid")
	ErrPaymentExceedsBalance  = errors.New("payment amount exceeds outstanding balance")
)
