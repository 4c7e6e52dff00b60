package model

// Author is a book author. Deleting an author cascades to its books and,
// through them, to their reviews (enforced by the store schema).
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Bio  string `json:"bio" db:"bio"`
}
