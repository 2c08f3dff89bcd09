package dto

// ErrorResponse is the error part of every failed API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Response is the envelope around every API response body
type Response struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// OK wraps data in a successful envelope
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps an error in a failed envelope
func Fail(code int, kind, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorResponse{
			Code:    code,
			Kind:    kind,
			Message: message,
		},
	}
}
