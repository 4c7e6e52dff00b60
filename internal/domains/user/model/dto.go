package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxUsernameLength = 150
	MaxNameLength     = 150
	MinPasswordLength = 8
)

// RegisterRequest is the input shape for user creation. Password is
// write-only: it exists here and never on the entity's JSON.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("This field is required."),
			validation.Length(1, MaxUsernameLength).Error("Ensure this field has no more than 150 characters."),
		),
		validation.Field(&r.Password,
			validation.Required.Error("This field is required."),
			validation.Length(MinPasswordLength, 0).Error("This password is too short. It must contain at least 8 characters."),
		),
		validation.Field(&r.FirstName,
			validation.Required.Error("This field is required."),
			validation.Length(1, MaxNameLength).Error("Ensure this field has no more than 150 characters."),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("This field is required."),
			validation.Length(1, MaxNameLength).Error("Ensure this field has no more than 150 characters."),
		),
		validation.Field(&r.Email,
			validation.Required.Error("This field is required."),
			is.Email.Error("Enter a valid email address."),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("This field is required."),
			validation.In(GenderMale, GenderFemale, GenderOther).Error("\"gender\" is not a valid choice."),
		),
	)
}

// ToEntity converts the request to a User entity; the caller supplies the
// password hash.
func (r *RegisterRequest) ToEntity(passwordHash string) *User {
	return &User{
		Username:  r.Username,
		Password:  passwordHash,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Gender:    r.Gender,
	}
}

// TokenRequest is the credential pair for POST /api/token/.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("This field is required.")),
		validation.Field(&r.Password, validation.Required.Error("This field is required.")),
	)
}

// TokenPairResponse is returned by POST /api/token/.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the input for POST /api/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Refresh, validation.Required.Error("This field is required.")),
	)
}

// AccessResponse is returned by POST /api/token/refresh/.
type AccessResponse struct {
	Access string `json:"access"`
}
