package model

// Gender choices.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// User is an account that can authenticate and write reviews. The password
// hash and the role flags never leave the process in a response body.
type User struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	Password  string `json:"-" db:"password"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"`
	Gender    string `json:"gender" db:"gender"`

	IsStaff     bool `json:"-" db:"is_staff"`
	IsSuperuser bool `json:"-" db:"is_superuser"`
}
