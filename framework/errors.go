package framework

import "fmt"

// ConfigError reports an invalid engine or problem configuration, such as an
// unrecognized objective direction or an odd population size.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// InfeasibleError reports that sampling or variation exhausted its retry
// budget without producing enough feasible candidates.
type InfeasibleError struct {
	Stage   string
	Retries int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%s: no feasible candidate found after %d attempts", e.Stage, e.Retries)
}

// DegeneracyError reports a zero-range column during grey relational
// normalization, where dividing by max-min would produce NaN.
type DegeneracyError struct {
	Column int
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("grey relational normalization: column %d has zero range", e.Column)
}
