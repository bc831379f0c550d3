package database

import "errors"

// Failure kinds reported by every provider. Match them with errors.Is; the
// client error that caused them stays reachable with errors.As.
var (
	ErrConnection    = errors.New("database unreachable or unauthorized")
	ErrTableNotFound = errors.New("table does not exist")
	ErrThroughput    = errors.New("throughput capacity exceeded")
	ErrInvalidItem   = errors.New("malformed item")
	ErrItemNotFound  = errors.New("item not found")
)

type classifiedError struct {
	kind error
	err  error
}

// Error is the client error text, unchanged.
func (e *classifiedError) Error() string { return e.err.Error() }

func (e *classifiedError) Unwrap() []error { return []error{e.kind, e.err} }

// Classify tags err with kind. A nil kind or err, or an err that already
// matches kind, is returned as is.
func Classify(kind, err error) error {
	if err == nil || kind == nil || errors.Is(err, kind) {
		return err
	}
	return &classifiedError{kind: kind, err: err}
}

// Kind returns the failure kind of err, or nil when err is unclassified.
func Kind(err error) error {
	for _, k := range []error{ErrConnection, ErrTableNotFound, ErrThroughput, ErrInvalidItem, ErrItemNotFound} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
