package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MaxNameLength = 100

// AuthorRequest is the input shape for create and replace. Replace is a full
// overwrite, so both fields are always required.
type AuthorRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("This field is required."),
			validation.Length(1, MaxNameLength).Error("Ensure this field has no more than 100 characters."),
		),
		validation.Field(&r.Bio,
			validation.Required.Error("This field is required."),
		),
	)
}

// ToEntity converts the request to an Author entity without an id.
func (r *AuthorRequest) ToEntity() *Author {
	return &Author{
		Name: r.Name,
		Bio:  r.Bio,
	}
}
