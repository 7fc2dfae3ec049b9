package auth

import "errors"

var (
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameNotFound   = errors.New("username not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrTooManyRequests    = errors.New("too many requests")
)

func IsErrBadRequest(err error) bool         { return errors.Is(err, ErrBadRequest) }
func IsErrInvalidCredentials(err error) bool { return errors.Is(err, ErrInvalidCredentials) }
func IsErrUserNotFound(err error) bool       { return errors.Is(err, ErrUserNotFound) }
func IsErrUsernameNotFound(err error) bool   { return errors.Is(err, ErrUsernameNotFound) }
func IsErrInvalidEmail(err error) bool       { return errors.Is(err, ErrInvalidEmail) }
func IsErrTooManyRequests(err error) bool    { return errors.Is(err, ErrTooManyRequests) }
