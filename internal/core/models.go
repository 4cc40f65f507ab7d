package core

import "bookshelf/internal/models"

type SignupMessage struct {
	Username string
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token string
	User  models.User
}
