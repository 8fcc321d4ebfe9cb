package sqlquery

import (
	"errors"
	"fmt"
)

var (
	ErrQueryRejected = errors.New("query rejected")
	ErrEmptyQuestion = errors.New("question is empty")
	ErrEmptySQL      = errors.New("model returned no SQL")
)

// RejectedError names the keyword that caused a statement to be refused.
type RejectedError struct {
	Keyword string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("Query rejected: %s operations are not allowed", e.Keyword)
}

func (e *RejectedError) Unwrap() error {
	return ErrQueryRejected
}
