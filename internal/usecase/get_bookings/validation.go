package get_bookings

import "fmt"

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.Limit < 0 {
		return fmt.Errorf("%w: limit must be non-negative", ErrInvalidInput)
	}
	return nil
}
