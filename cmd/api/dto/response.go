package dto

// ErrorResponseDTO unifies the error response shape.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not found"`
}
