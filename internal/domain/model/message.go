package model

type Message struct {
	Message string `json:"message"`
}

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
