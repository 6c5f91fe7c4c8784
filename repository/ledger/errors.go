package ledger

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	// KindTransport: no response was obtained (DNS, connect, abort).
	KindTransport ErrorKind = "transport"
	// KindHTTP: a response arrived with a non-2xx status.
	KindHTTP ErrorKind = "http"
	// KindDecode: a 2xx response body could not be decoded.
	KindDecode ErrorKind = "decode"
)

// APIError is the single error shape produced by the client. Status is zero
// for transport and decode failures, which is what distinguishes them from
// HTTP errors.
type APIError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ledger: %s (status %d)", e.Message, e.Status)
	}
	return "ledger: " + e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is a backend 401, the signal that the
// persisted session token is no longer valid.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}

// GenericMessage is the fallback shown when an error carries no usable text.
const GenericMessage = "Something went wrong. Please try again."

// Message extracts a display-ready message from any error returned by the
// client, falling back to a generic line for everything else.
func Message(err error) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return GenericMessage
}
