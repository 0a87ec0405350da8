package models

// Response codes.
const (
	CodeSuccess = 0

	// client errors (1000-1999)
	CodeInvalidParams      = 1000
	CodeMissingParams      = 1001
	CodeInvalidCredentials = 1002
	CodeUnauthorized       = 1003
	CodeNotFound           = 1004
	CodeDuplicate          = 1005

	// server errors (2000-2999)
	CodeServerError   = 2000
	CodeDatabaseError = 2001
)

// CodeMessages maps response codes to their default messages.
var CodeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInvalidParams:      "invalid parameters",
	CodeMissingParams:      "missing required parameters",
	CodeInvalidCredentials: "invalid credentials",
	CodeUnauthorized:       "unauthorized",
	CodeNotFound:           "resource not found",
	CodeDuplicate:          "resource already exists",
	CodeServerError:        "internal server error",
	CodeDatabaseError:      "database error",
}

// APIResponse is the envelope used by admin and error responses.
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse builds an error envelope with the code's default message.
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "unknown error"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse builds an error envelope with a custom message.
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
