/*
Package errors provides semantic error types for tagstore.

The tagging core itself never fails: an unknown entity or label is an empty
result and detaching a missing pair is a no-op. Errors exist at the edges,
where identifiers are validated and snapshots are persisted.

Common Errors:

	var (
	    ErrNotFound        = errors.New("entity not found")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrInvalidKey      = errors.New("invalid key")
	    ErrConditionFailed = errors.New("condition check failed")
	    ErrNoIndexMap      = errors.New("no index map found for type")
	)

Usage:

	if err := validate.Pair(entityID, labelName); err != nil {
	    if errors.IsInvalidKey(err) {
	        // reject the request before it reaches the index
	    }
	    return err
	}

	err := errors.NewKeyError("label", "", "empty")
	err := errors.NewValidationError("default", "must not be empty")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
