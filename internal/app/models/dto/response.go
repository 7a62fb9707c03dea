package dto

// Response is the envelope every endpoint answers with: a success flag,
// a human message, and on success a data payload. List endpoints also
// carry pagination metadata.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// Pagination carries list metadata
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewSuccess builds a success envelope with a payload
func NewSuccess(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewPaginated builds a success envelope for a list endpoint
func NewPaginated(data interface{}, pagination *Pagination) Response {
	return Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	}
}

// NewError builds a failure envelope with a message
func NewError(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
