package extract

import "fmt"

// FetchError is returned when the source page could not be downloaded.
type FetchError struct {
	URL string
	// Status is the HTTP status code, 0 when no response was received.
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the page does not have the expected table shape.
type ParseError struct {
	// Row is the 1-based data row (header excluded), 0 for the document itself.
	Row    int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Row > 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "parse: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
