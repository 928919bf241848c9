package models

type APIError struct {
	Error string `json:"error"`
}

func ErrorResponse(err string) APIError {
	return APIError{Error: err}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type MemoryResponse struct {
	Message string `json:"message"`
	Memory  Memory `json:"memory"`
}
