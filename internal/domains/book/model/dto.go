package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	reviewmodel "bookreview-backend/internal/domains/review/model"
)

const (
	MaxTitleLength = 200
	MaxISBNLength  = 17 // ISBN-13 with separators
)

// BookRequest is the input shape for create and replace. The author field is
// the owning author's id, matching the stored relationship.
type BookRequest struct {
	Title           string `json:"title"`
	PublicationDate string `json:"publication_date"`
	ISBN            string `json:"isbn"`
	AuthorID        int64  `json:"author"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("This field is required."),
			validation.Length(1, MaxTitleLength).Error("Ensure this field has no more than 200 characters."),
		),
		validation.Field(&r.PublicationDate,
			validation.Required.Error("This field is required."),
			validation.Date(DateLayout).Error("Date has wrong format. Use YYYY-MM-DD."),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("This field is required."),
			validation.Length(1, MaxISBNLength).Error("Ensure this field has no more than 17 characters."),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("This field is required."),
			validation.Min(int64(1)).Error("Invalid author id."),
		),
	)
}

// ToEntity converts the request to a Book entity without an id. The
// publication date has already passed validation.
func (r *BookRequest) ToEntity() (*Book, error) {
	date, err := ParseDate(r.PublicationDate)
	if err != nil {
		return nil, err
	}
	return &Book{
		Title:           r.Title,
		PublicationDate: date,
		ISBN:            r.ISBN,
		AuthorID:        r.AuthorID,
	}, nil
}

// BookDetail is the get-by-id representation: the book plus every review of
// it, joined at read time so the response always reflects current data.
type BookDetail struct {
	Book
	Reviews []reviewmodel.Review `json:"reviews"`
}
