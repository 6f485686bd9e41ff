package eval

import "fmt"

// ConfigurationError is returned for invalid evaluation settings: no or conflicting T
// sources, a T that is not positive, or a negative depth.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// MissingParameterError is returned when a topic to be evaluated has no T value.
type MissingParameterError struct {
	Topic string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("no T was found for topic %s", e.Topic)
}
