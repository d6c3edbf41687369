package domain

import "errors"

var (
	// ErrUnauthorized is returned when the actor lacks the capability for an operation.
	ErrUnauthorized = errors.New("actor is not allowed to perform this operation")
	// ErrInvalidToken is returned when an anti-forgery token is missing or does not match.
	ErrInvalidToken = errors.New("anti-forgery token is missing or invalid")
	// ErrSuppressedWrite is returned when a write is skipped because it came from an autosave.
	ErrSuppressedWrite = errors.New("write skipped during automatic save")
	// ErrNotFound is returned when a content item or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRating is returned when a submitted rating is not an integer.
	ErrInvalidRating = errors.New("rating must be a whole number")
	// ErrRatingOutOfRange is returned when a submitted rating is outside the configured scale.
	ErrRatingOutOfRange = errors.New("rating is outside the configured scale")
	// ErrInvalidScale is returned when a rating scale other than 5 or 10 is submitted.
	ErrInvalidScale = errors.New("rating scale must be 5 or 10")
)
