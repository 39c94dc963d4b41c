package confirm_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ConfirmationID) == "" {
		return fmt.Errorf("%w: confirmationID is required", ErrInvalidInput)
	}

	// Желаемое время опционально, но если указано - должно быть валидным
	if !req.PreferredStartTime.IsZero() {
		if err := req.PreferredStartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid preferredStartTime format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
