package service

import "errors"

var (
	// ErrLoginFailed wraps any failure of the login flow, including bad
	// credentials — the server does not distinguish them for us.
	ErrLoginFailed = errors.New("login failed")

	// ErrRegisterFailed wraps any failure of the registration flow.
	ErrRegisterFailed = errors.New("registration failed")
)
