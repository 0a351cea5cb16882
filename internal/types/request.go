package types

import "github.com/go-playground/validator/v10"

// ConvertRequest is the request body for the HTML to Word endpoint.
type ConvertRequest struct {
	HTMLContent string `json:"html_content" validate:"required"`
}

// Validate validates the ConvertRequest using the validator.
func (r *ConvertRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// InfoResponse describes the API on the root path.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
