package httperr

import "errors"

// BusinessError is an expected rejection; Code is the error_code sent to clients.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Is lets errors.Is compare business errors by code.
func (e BusinessError) Is(target error) bool {
	var be BusinessError
	return errors.As(target, &be) && be.Code == e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// BusinessCode returns the code of the first business error in err's chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code string) bool {
	got, ok := BusinessCode(err)
	return ok && got == code
}
