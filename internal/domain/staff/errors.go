package staff

import "errors"

var (
	ErrStaffNotFound      = errors.New("staff not found")
	ErrStaffAlreadyExists = errors.New("staff with the same name already exists")
	ErrStaffInactive      = errors.New("staff is inactive")
)
