package forms

import "auction-client/internal/models"

// RegistrationForm is shared by the user and seller sign-up screens.
type RegistrationForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

var registrationMessages = messages{
	"name":            {"required": MsgAllRequired},
	"email":           {"required": MsgAllRequired},
	"password":        {"required": MsgAllRequired},
	"confirmPassword": {"required": MsgAllRequired, "eqfield": MsgPasswordsDiffer},
}

// Validate requires every field and matching passwords. Passwords are not trimmed.
func (f *RegistrationForm) Validate() error {
	trim(&f.Name, &f.Email)
	return check(f, registrationMessages, registrationSummary)
}

// Registration is the backend payload.
func (f RegistrationForm) Registration() models.Registration {
	return models.Registration{Name: f.Name, Email: f.Email, Password: f.Password}
}

// LoginForm is used by the user and seller login screens.
type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = messages{
	"email":    {"required": MsgAllRequired},
	"password": {"required": MsgAllRequired},
}

func (f *LoginForm) Validate() error {
	trim(&f.Email)
	return check(f, loginMessages, func(map[string]string) string { return MsgAllRequired })
}

func (f LoginForm) Credentials() models.Credentials {
	return models.Credentials{Email: f.Email, Password: f.Password}
}

// AdminLoginForm is the admin login screen. The username is the admin email.
type AdminLoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (f *AdminLoginForm) Validate() error {
	trim(&f.Email)
	return check(f, loginMessages, func(map[string]string) string { return MsgAllRequired })
}
