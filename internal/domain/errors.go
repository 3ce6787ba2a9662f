package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyCollected  = errors.New("already collected")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrPersistence       = errors.New("persistence failure")
)

const dateLayout = "2006-01-02"

// AlreadyCollectedError is returned when a contract's due date already has a
// recorded collection.
type AlreadyCollectedError struct {
	ContractID int64
	DueDate    time.Time
}

func (e *AlreadyCollectedError) Error() string {
	return fmt.Sprintf("already collected for date %s", e.DueDate.Format(dateLayout))
}

func (e *AlreadyCollectedError) Unwrap() error {
	return ErrAlreadyCollected
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
