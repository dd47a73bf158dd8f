package hotlist

// ErrorKind classifies why a hotlist API call failed. Callers treat
// every kind the same for control flow (skip the channel), but logs and
// the serve-mode API can tell an unreachable upstream from a malformed
// response.
type ErrorKind string

const (
	// ErrTransport covers network and timeout failures.
	ErrTransport ErrorKind = "transport"
	// ErrStatus covers non-2xx HTTP responses.
	ErrStatus ErrorKind = "status"
	// ErrDecode covers malformed JSON bodies.
	ErrDecode ErrorKind = "decode"
	// ErrUpstream covers well-formed responses with an unexpected shape,
	// such as a non-200 code field or a missing routes list.
	ErrUpstream ErrorKind = "upstream"
)

// Error is a typed hotlist API failure.
type Error struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + " error for " + e.URL + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
