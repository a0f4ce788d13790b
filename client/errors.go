package client

// ErrorKind tells which part of the client failed.
type ErrorKind int

const (
	TransportError ErrorKind = iota
	InputError
)

// Error is returned for every client failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	prefix := "client error: transport error: "
	if e.Kind == InputError {
		prefix = "client error: input error: "
	}
	return prefix + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func transportError(err error) error {
	return &Error{Kind: TransportError, Err: err}
}

func inputError(err error) error {
	return &Error{Kind: InputError, Err: err}
}
