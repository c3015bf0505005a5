package backend

import (
	"errors"
	"fmt"
)

// ContractError marks a backend response that violates its documented shape
// (wrong window size, malformed dates). Transport-level failures are plain
// wrapped errors; contract violations get their own type so handlers can map
// them to 502 with a stable code.
type ContractError struct {
	Code string
}

func (e ContractError) Error() string {
	return fmt.Sprintf("backend contract violation: %s", e.Code)
}

func ErrContract(code string) error {
	return ContractError{Code: code}
}

func IsContract(err error) bool {
	var ce ContractError
	return errors.As(err, &ce)
}

// StatusError carries a non-2xx backend status through to the caller.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// IsConflict reports whether the backend rejected a write as a slot conflict.
func IsConflict(err error) bool {
	var se StatusError
	return errors.As(err, &se) && se.StatusCode == 409
}

// IsNotFound reports whether the backend had no such resource.
func IsNotFound(err error) bool {
	var se StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
