package model

import "time"

// Review is one user's rating of one book. BookTitle and Username are
// read-time joins filled only by the review list/detail queries; the zero
// values are omitted when a review is embedded elsewhere.
type Review struct {
	ID         int64     `json:"id" db:"id"`
	BookID     int64     `json:"book" db:"book_id"`
	UserID     int64     `json:"user" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"review_text" db:"review_text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	BookTitle string `json:"book_title,omitempty" db:"book_title"`
	Username  string `json:"username,omitempty" db:"username"`
}
