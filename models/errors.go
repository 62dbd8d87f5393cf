// models/errors.go
package models

import "fmt"

// The error types below separate the failure classes handlers must map to
// distinct HTTP statuses: bad input (400), missing row (404), database
// failure (500), and the two post-commit side-effect failures that are
// reported on an otherwise successful response.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: database error: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

type UploadError struct {
	Store string
	Name  string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %q to %s store: %v", e.Name, e.Store, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

type DispatchError struct {
	To      string
	Subject string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("send mail %q to %s: %v", e.Subject, e.To, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
