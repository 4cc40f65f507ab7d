package models

import (
	"strings"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

const MinPasswordLength = 5

type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	SavedBooks   []SavedBook `json:"savedBooks"`
}

// BookCount is the number of books on the user's list.
func (u User) BookCount() int {
	return len(u.SavedBooks)
}

// HasBook reports whether bookID is already on the user's list.
func (u User) HasBook(bookID string) bool {
	for _, b := range u.SavedBooks {
		if b.BookID == bookID {
			return true
		}
	}
	return false
}

// NewUser is the registration input. The password is plain text and must not outlive the request.
type NewUser struct {
	Username string
	Email    string
	Password string
}

// Normalize trims surrounding whitespace from username and email and lowercases the email.
func (n NewUser) Normalize() NewUser {
	n.Username = strings.TrimSpace(n.Username)
	n.Email = NormalizeEmail(n.Email)
	return n
}

// NormalizeEmail is the canonical form every store keys users by.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (n NewUser) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&n.Email, validation.Required, is.EmailFormat),
		validation.Field(&n.Password, validation.Required, validation.Length(MinPasswordLength, 0)),
	)
}
