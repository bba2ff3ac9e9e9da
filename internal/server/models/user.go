package models

// User is a stored account. PasswordHash holds the self-describing bcrypt
// string and must never be logged or sent to clients.
type User struct {
	ID           string
	UserName     string
	Email        string
	FullName     string
	PasswordHash string
}

// PublicUser is the non-secret projection of User returned to callers.
type PublicUser struct {
	UserName string
	Email    string
	FullName string
}

// Public drops the secret fields.
func (u *User) Public() *PublicUser {
	return &PublicUser{UserName: u.UserName, Email: u.Email, FullName: u.FullName}
}
