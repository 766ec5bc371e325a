package slackexport

import "fmt"

// AuthError is the error returned by Run when the token validity check
// fails, the underlying Err contains the API or transport error returned by
// the auth.test call.
type AuthError struct {
	Err error
}

func (ae *AuthError) Error() string {
	return fmt.Sprintf("failed to authenticate: %s", ae.Err)
}

func (ae *AuthError) Unwrap() error {
	return ae.Err
}

func (ae *AuthError) Is(target error) bool {
	return target == ae.Err
}
