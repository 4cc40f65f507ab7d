package models

import (
	"github.com/jellydator/validation"
)

// NoAuthors is shown when the catalog does not list any author for a volume.
const NoAuthors = "No author to display"

type SavedBook struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Authors     []string `json:"authors"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
}

func (b SavedBook) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.BookID, validation.Required),
		validation.Field(&b.Title, validation.Required),
	)
}
