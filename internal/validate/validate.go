package validate

import (
	"fmt"
	"net/mail"

	"github.com/yuregl/download-yt/internal/httputil"
)

// MinPasswordLength is the single source of truth for password rules.
const MinPasswordLength = 6

func Name(s string) string {
	if s == "" {
		return "name is required"
	}
	return ""
}

func Email(s string) string {
	if s == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "email is invalid"
	}
	return ""
}

func Password(s string) string {
	if s == "" {
		return "password is required"
	}
	if len(s) < MinPasswordLength {
		return fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	}
	return ""
}

func URL(s string) string {
	if s == "" {
		return "url is required"
	}
	return ""
}

func Resolution(s string) string {
	if s == "" {
		return "resolution is required"
	}
	return ""
}

// CreateUser checks the registration payload and returns one entry per
// violated field, in payload order.
func CreateUser(name, email, password string) []httputil.FieldError {
	var errs []httputil.FieldError
	errs = appendFieldError(errs, "name", Name(name))
	errs = appendFieldError(errs, "email", Email(email))
	errs = appendFieldError(errs, "password", Password(password))
	return errs
}

func UpdateUser(name, password string) []httputil.FieldError {
	var errs []httputil.FieldError
	errs = appendFieldError(errs, "name", Name(name))
	errs = appendFieldError(errs, "password", Password(password))
	return errs
}

// UpdateVip takes a pointer so an absent "status" key is distinguishable
// from an explicit false.
func UpdateVip(status *bool) []httputil.FieldError {
	if status == nil {
		return []httputil.FieldError{{Field: "status", Message: "status is required"}}
	}
	return nil
}

func Login(email, password string) []httputil.FieldError {
	var errs []httputil.FieldError
	errs = appendFieldError(errs, "email", Email(email))
	if password == "" {
		errs = append(errs, httputil.FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

func CreateDownload(url, resolution string) []httputil.FieldError {
	var errs []httputil.FieldError
	errs = appendFieldError(errs, "url", URL(url))
	errs = appendFieldError(errs, "resolution", Resolution(resolution))
	return errs
}

func GetFormats(url string) []httputil.FieldError {
	return appendFieldError(nil, "url", URL(url))
}

func appendFieldError(errs []httputil.FieldError, field, msg string) []httputil.FieldError {
	if msg == "" {
		return errs
	}
	return append(errs, httputil.FieldError{Field: field, Message: msg})
}
