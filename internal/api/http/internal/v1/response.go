package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/vibe-gaming/cities/pkg/openapi"
	"github.com/vibe-gaming/cities/pkg/schema"
)

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func errorResponse(c *gin.Context, code ErrorCode) {
	c.AbortWithStatusJSON(http.StatusBadRequest, getErrorStruct(code))
}

// validationErrorResponse reports binding, schema and contract failures as a
// list of field errors.
func validationErrorResponse(c *gin.Context, err error) {
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
	}

	var (
		verr validator.ValidationErrors
		serr *schema.ValidationError
		cerr *openapi.ContractError
	)
	switch {
	case errors.As(err, &verr):
		response.Errors = make([]ValidationError, len(verr))
		for i, ferr := range verr {
			response.Errors[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
	case errors.As(err, &serr):
		response.Errors = make([]ValidationError, len(serr.Violations))
		for i, v := range serr.Violations {
			response.Errors[i] = ValidationError{v.Field, v.Message}
		}
	case errors.As(err, &cerr):
		response.ErrorCode = ContractViolationCode
		response.ErrorMessage = cerr.Message
		response.Errors = make([]ValidationError, len(cerr.Details))
		for i, d := range cerr.Details {
			response.Errors[i] = ValidationError{ErrorMessage: d}
		}
	default:
		response.Errors = []ValidationError{{ErrorMessage: err.Error()}}
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Must be at most %v characters long", value)
	case "pathsegment":
		return "Must not be blank or contain slashes"
	}
	return tag
}
