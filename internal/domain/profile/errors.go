package profile

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrBadRequest    = errors.New("bad request")
	ErrUsernameTaken = errors.New("username already taken")
)

func IsErrNotFound(err error) bool      { return errors.Is(err, ErrNotFound) }
func IsErrBadRequest(err error) bool    { return errors.Is(err, ErrBadRequest) }
func IsErrUsernameTaken(err error) bool { return errors.Is(err, ErrUsernameTaken) }
