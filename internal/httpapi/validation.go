package httpapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aichatops/mockgpt/internal/models"
)

// validationErrorResponse turns a binding failure into a field-level error
// envelope. Range violations name the offending field and constraint;
// malformed JSON gets a generic schema message.
func validationErrorResponse(err error) models.ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldErrorMessage(fe))
		}
		resp := models.NewErrorResponse(strings.Join(details, "; "), "invalid_request_error", "")
		resp.Error.Param = strings.ToLower(verrs[0].Field())
		return resp
	}
	return models.NewErrorResponse("invalid request body", "invalid_request_error", "")
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
