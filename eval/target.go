package eval

import "fmt"

// TargetResolver gives the T value of a topic: the number of relevant documents a user
// of average persistence wants to find.
type TargetResolver interface {
	Target(topic string) (float64, error)
}

type constantTarget float64

func (c constantTarget) Target(topic string) (float64, error) {
	return checkTarget(topic, float64(c))
}

type perQueryTargets map[string]float64

func (p perQueryTargets) Target(topic string) (float64, error) {
	t, ok := p[topic]
	if !ok {
		return 0, MissingParameterError{Topic: topic}
	}
	return checkTarget(topic, t)
}

func checkTarget(topic string, t float64) (float64, error) {
	if !(t > 0) {
		return 0, ConfigurationError{Reason: fmt.Sprintf("T for topic %s must be positive, got %v", topic, t)}
	}
	return t, nil
}

// ConstantTarget uses the same T for every topic.
func ConstantTarget(t float64) TargetResolver {
	return constantTarget(t)
}

// PerQueryTargets looks T up per topic; topics missing from targets are an error.
func PerQueryTargets(targets map[string]float64) TargetResolver {
	return perQueryTargets(targets)
}

// ValidateTargetSources checks that exactly one source of T values is configured.
func ValidateTargetSources(perQuery, override bool) error {
	switch {
	case perQuery && override:
		return ConfigurationError{Reason: "a per-query T file and an override T are mutually exclusive"}
	case !perQuery && !override:
		return ConfigurationError{Reason: "one of a per-query T file or an override T is required"}
	}
	return nil
}

// NewTargetResolver resolves T from exactly one of a per-query mapping or an override.
func NewTargetResolver(perQuery map[string]float64, override *float64) (TargetResolver, error) {
	if err := ValidateTargetSources(perQuery != nil, override != nil); err != nil {
		return nil, err
	}
	if override != nil {
		return ConstantTarget(*override), nil
	}
	return PerQueryTargets(perQuery), nil
}
