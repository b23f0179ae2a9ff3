//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// SearchRequest represents a job search for a single skill keyword.
type SearchRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
