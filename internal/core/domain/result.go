package domain

// ResponseType tags how a service operation resolved.
type ResponseType int

const (
	ResponseNotFound ResponseType = iota
	ResponseConflict
	ResponseBadRequest
	ResponseInternalError
	ResponseSuccess
)

// String returns the outcome name for logs and span attributes.
func (t ResponseType) String() string {
	switch t {
	case ResponseNotFound:
		return "not_found"
	case ResponseConflict:
		return "conflict"
	case ResponseBadRequest:
		return "bad_request"
	case ResponseInternalError:
		return "internal_error"
	case ResponseSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ServiceResponse is a tagged result describing the outcome of a service
// operation. Expected business failures (conflict, not found) travel here
// instead of as errors; only unanticipated failures use the error return.
//
// Invariant: IsError is true iff Type is not ResponseSuccess, and
// ErrorMessage is populated whenever IsError is true.
type ServiceResponse struct {
	Type         ResponseType
	IsError      bool
	ErrorMessage string

	// CreatedID holds the stringified identifier of a newly created entity.
	// Only set by successful create operations.
	CreatedID string
}

// SuccessResponse builds a Success outcome.
func SuccessResponse() ServiceResponse {
	return ServiceResponse{Type: ResponseSuccess}
}

// CreatedResponse builds a Success outcome carrying the new entity's ID.
func CreatedResponse(createdID string) ServiceResponse {
	return ServiceResponse{Type: ResponseSuccess, CreatedID: createdID}
}

// ConflictResponse builds a Conflict outcome with the given message.
func ConflictResponse(msg string) ServiceResponse {
	return ServiceResponse{Type: ResponseConflict, IsError: true, ErrorMessage: msg}
}

// NotFoundResponse builds a NotFound outcome with the given message.
func NotFoundResponse(msg string) ServiceResponse {
	return ServiceResponse{Type: ResponseNotFound, IsError: true, ErrorMessage: msg}
}
