package deposit

import "errors"

var (
	ErrDepositNotFound = errors.New("deposit record not found")
)
