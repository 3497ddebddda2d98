package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	CityAlreadyExistsCode    = 1002
	CityAlreadyExistsMessage = "city already exists"

	DataAccessFailedCode    = 2000
	DataAccessFailedMessage = "data access failed"

	ContractViolationCode    = 3000
	ContractViolationMessage = "request does not match the api contract"
	MalformedBodyCode        = 3001
	MalformedBodyMessage     = "request body must be a json object or form encoded"

	InvalidRangeCode    = 4000
	InvalidRangeMessage = "invalid range"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case CityAlreadyExistsCode:
		errorStruct.ErrorCode = CityAlreadyExistsCode
		errorStruct.ErrorMessage = CityAlreadyExistsMessage
	case DataAccessFailedCode:
		errorStruct.ErrorCode = DataAccessFailedCode
		errorStruct.ErrorMessage = DataAccessFailedMessage
	case ContractViolationCode:
		errorStruct.ErrorCode = ContractViolationCode
		errorStruct.ErrorMessage = ContractViolationMessage
	case MalformedBodyCode:
		errorStruct.ErrorCode = MalformedBodyCode
		errorStruct.ErrorMessage = MalformedBodyMessage
	case InvalidRangeCode:
		errorStruct.ErrorCode = InvalidRangeCode
		errorStruct.ErrorMessage = InvalidRangeMessage
	}

	return errorStruct
}
