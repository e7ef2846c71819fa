package core

import "errors"

// User errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailExists     = errors.New("email already registered")
	ErrUserInvalidArgs = errors.New("user invalid args")
)

// Task list errors
var (
	ErrTaskListNotFound    = errors.New("task list not found")
	ErrTaskListInvalidArgs = errors.New("task list invalid args")
	ErrLastTaskList        = errors.New("cannot delete the only task list")
)

// Task errors
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskInvalidArgs = errors.New("task invalid args")
)

// ErrForbidden marks an existing record owned by a different user. Distinct
// from a failed login, which ValidateCredentials reports as a plain false.
var ErrForbidden = errors.New("access denied")
