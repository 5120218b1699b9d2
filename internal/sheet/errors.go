package sheet

import "errors"

// InvalidInputMessage is the only text users see for a malformed upload.
const InvalidInputMessage = "서식 또는 농협 거래내역 파일을 등록하시기 바랍니다."

// InputError marks a file that could not be read into the expected shape.
// Err carries the cause for logs; callers show InvalidInputMessage instead.
type InputError struct {
	File string
	Err  error
}

func (e *InputError) Error() string {
	return e.File + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err (or any error in its chain) is an InputError.
func IsInvalidInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func invalid(file string, err error) error {
	return &InputError{File: file, Err: err}
}
