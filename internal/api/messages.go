package api

import (
	"errors"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation"
)

// PasswordMaxBytes is bcrypt's input limit.
const PasswordMaxBytes = 72

// emailFormat checks the address syntax only. is.Email also resolves the
// domain, which has no place in a request path.
var emailFormat = validation.NewStringRule(govalidator.IsEmail, "must be a valid email address")

// maxBytes limits a string by its encoded length rather than by runes.
func maxBytes(n int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > n {
			return errors.New("is too long")
		}
		return nil
	})
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// Validate checks the shape of a registration before any hashing happens.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), emailFormat),
		validation.Field(&r.Password, validation.Required, maxBytes(PasswordMaxBytes)),
		validation.Field(&r.FullName, validation.Length(0, 200)),
	)
}

// User is the public identity returned to clients.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type MeRequest struct{}

type DeleteAccountRequest struct{}

type DeleteAccountResponse struct {
	Username string `json:"username"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
