package overtime

import "errors"

var (
	ErrRequestNotFound         = errors.New("overtime request not found")
	ErrRequestAlreadyProcessed = errors.New("overtime request has already been approved or rejected")
	ErrDurationRequired        = errors.New("overtime duration is required")
)
