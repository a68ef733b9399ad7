package common

// Response is the envelope every API route answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewSuccessResponse(data any) *Response {
	return &Response{Success: true, Data: data}
}

func NewMessageResponse(message string, data any) *Response {
	return &Response{Success: true, Message: message, Data: data}
}

func NewErrorResponse(message string) *Response {
	return &Response{Message: message}
}

// NewFailureResponse carries a diagnostic next to the user facing message.
func NewFailureResponse(message, diagnostic string) *Response {
	return &Response{Message: message, Error: diagnostic}
}
