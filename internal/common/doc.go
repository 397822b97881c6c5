// Package common defines the error taxonomy shared by the Pocket client
// components. Callers should use errors.Is (or errors.As for
// MissingFieldError) to match these values; components wrap the underlying
// cause next to the kind, so both survive.
package common
