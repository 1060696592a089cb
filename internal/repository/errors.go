package repository

import (
	"errors"
	"strings"
	"time"

	"mmgp/internal/model"
)

var (
	// ErrConstraint marks writes the store rejected on business grounds.
	ErrConstraint = errors.New("constraint violation")
	// ErrDuplicate is returned when a unique key already exists.
	ErrDuplicate = errors.New("duplicate key")
)

// ConstraintError carries the store's own message for a rejected write.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrConstraint) match.
func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// timeNow is the clock used for server-assigned timestamps.
var timeNow = func() time.Time { return time.Now().UTC() }

func checkRecord(rec *model.ResponseRecord) error {
	if strings.TrimSpace(rec.Email) == "" {
		return &ConstraintError{Message: "email must not be empty"}
	}
	return nil
}
