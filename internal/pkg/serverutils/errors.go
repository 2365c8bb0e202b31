package serverutils

// APIError is a service error carrying the HTTP status it should surface as.
// The error handler middleware turns it into a JSON body; anything else
// becomes a generic 500.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

func BadRequest(message string) *APIError {
	return NewAPIError(400, message)
}

func Unauthorized(message string) *APIError {
	return NewAPIError(401, message)
}

func NotFound(message string) *APIError {
	return NewAPIError(404, message)
}
