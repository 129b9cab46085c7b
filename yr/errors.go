package yr

import "fmt"

// InvalidArgumentError reports an empty or malformed argument handed to the
// client factory or an entity constructor.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// MissingFieldError reports a required field absent from the source XML.
// List builders catch it per item and skip the entry instead of failing the
// whole batch.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// ServiceUnavailableError reports that the probe could not confirm the
// remote service will answer for the given place.
type ServiceUnavailableError struct {
	Place  string
	Reason string
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("yr service unavailable for %q: %s", e.Place, e.Reason)
}

// AssemblyError reports that a Location could not be built from otherwise
// retrievable documents, wrapping the root cause.
type AssemblyError struct {
	Cause error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assembling location: %v", e.Cause)
}

func (e *AssemblyError) Unwrap() error {
	return e.Cause
}
