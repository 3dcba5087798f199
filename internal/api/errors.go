package api

import "fmt"

// The client reduces every failure to one of three kinds: the request never
// got a response (ConnectionError), the server said no (StatusError), or
// the server answered 2xx with a body that does not decode (DecodeError).

type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "network error, please check your connection"
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// StatusError carries a non-2xx response. Message is the response body text
// when the server sent one, else the endpoint's fallback message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string { return e.Message }

// DecodeError marks a 2xx response whose body is not valid JSON. It keeps
// the status and a truncated copy of the raw body so an operator can tell
// "server said no" apart from "server said something unparseable".
type DecodeError struct {
	StatusCode int
	Body       string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("server returned invalid JSON (status %d): %s", e.StatusCode, e.Body)
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max])
}
