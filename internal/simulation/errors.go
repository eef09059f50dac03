package simulation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInsufficientData is returned when the fetched orders, routes, or
// driver pool is empty. Nothing is persisted in that case.
var ErrInsufficientData = errors.New("not enough data to run simulation")

// MissingParametersError reports request fields that were absent entirely.
// Presence is checked before format, so a request can fail with this error
// even if the fields it does carry are malformed.
type MissingParametersError struct {
	Missing []string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("missing required parameters: %s", strings.Join(e.Missing, ", "))
}

// InvalidParameterError reports a single field whose value violated a
// validation rule. Rule is a human-readable statement of the constraint.
type InvalidParameterError struct {
	Field string
	Rule  string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Rule)
}

// PersistenceError wraps a storage-layer failure while writing a snapshot.
// The run it belongs to is reported as failed; computed KPIs are never
// returned without being durable.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist simulation result: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
