package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoData       = errors.New("no data")
)

// NoDataError reports that a required reference total is absent for a fiscal year.
type NoDataError struct {
	Year string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no budget data found for year %s", e.Year)
}

func (e *NoDataError) Unwrap() error {
	return ErrNoData
}

// NotFoundError names the entity whose lookup yielded no row.
type NotFoundError struct {
	Entity string
	Code   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Code)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
