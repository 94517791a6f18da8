package models

import "encoding/json"

// ResourceResult is one slot of the aggregated payload: either the
// fetched record for a resource or the error that replaced it. A failed
// slot serializes as {"error": "<message>"} while a settled slot
// serializes as the record itself, so consumers always receive an
// object under every resource key.
type ResourceResult[T any] struct {
	// Value is the fetched record. Meaningful only when Err is empty.
	Value T

	// Err is the failure message for this resource.
	// Empty when the fetch succeeded.
	Err string
}

// NewResult returns a settled slot carrying the fetched record.
func NewResult[T any](value T) ResourceResult[T] {
	return ResourceResult[T]{Value: value}
}

// NewErrorResult returns a failed slot carrying the error message.
func NewErrorResult[T any](err error) ResourceResult[T] {
	return ResourceResult[T]{Err: err.Error()}
}

// Failed reports whether this slot carries an error instead of a record.
func (r ResourceResult[T]) Failed() bool {
	return r.Err != ""
}

// MarshalJSON writes the record on success or the error envelope on failure.
func (r ResourceResult[T]) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(ErrorResponse{Error: r.Err})
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON restores a slot written by MarshalJSON. An object with
// a non-null "error" key becomes a failed slot; anything else decodes
// into the record.
func (r *ResourceResult[T]) UnmarshalJSON(data []byte) error {
	var probe struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Error != nil {
		var zero T
		r.Value = zero
		r.Err = *probe.Error
		return nil
	}

	r.Err = ""
	return json.Unmarshal(data, &r.Value)
}
