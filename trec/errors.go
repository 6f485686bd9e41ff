package trec

import "fmt"

// MalformedInputError is returned when a line of an input file cannot be split into the
// expected fields, or when one of those fields cannot be parsed.
type MalformedInputError struct {
	Line   int
	Text   string
	Reason string
}

func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input on line %d (%q): %s", e.Line, e.Text, e.Reason)
}
