package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinRating = 1
	MaxRating = 10
)

// ReviewRequest is the input shape for create and replace. The book and user
// fields are the referenced ids, matching the stored relationships.
type ReviewRequest struct {
	BookID     int64  `json:"book"`
	UserID     int64  `json:"user"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

func (r ReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID,
			validation.Required.Error("This field is required."),
			validation.Min(int64(1)).Error("Invalid book id."),
		),
		validation.Field(&r.UserID,
			validation.Required.Error("This field is required."),
			validation.Min(int64(1)).Error("Invalid user id."),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("This field is required."),
			validation.Min(MinRating).Error("Ensure this value is greater than or equal to 1."),
			validation.Max(MaxRating).Error("Ensure this value is less than or equal to 10."),
		),
		validation.Field(&r.ReviewText,
			validation.Required.Error("This field is required."),
		),
	)
}

// ToEntity converts the request to a Review entity without an id. CreatedAt
// is assigned by the store at insertion and never carried over from input.
func (r *ReviewRequest) ToEntity() *Review {
	return &Review{
		BookID:     r.BookID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
	}
}
