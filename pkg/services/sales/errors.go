package sales

import "fmt"

// InvalidInputError reports a malformed or empty input bundle
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input data: %s", e.Reason)
}

// MissingConfigError reports absent configuration or a missing formula
type MissingConfigError struct {
	Reason string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Reason)
}
