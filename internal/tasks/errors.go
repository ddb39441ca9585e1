package tasks

import "errors"

var (
	// ErrEmptyDescription is returned when a description is empty after trimming.
	ErrEmptyDescription = errors.New("task description cannot be empty")

	// ErrTaskNotFound is returned when no task has the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAlreadyComplete is returned when completing a task that is already complete.
	ErrAlreadyComplete = errors.New("task is already complete")

	// ErrCorruptData is returned when a snapshot exists but cannot be decoded.
	ErrCorruptData = errors.New("corrupt task snapshot")

	// ErrStorageWrite is returned when a snapshot could not be written.
	// The in-memory change that triggered the write is kept.
	ErrStorageWrite = errors.New("failed to write task snapshot")
)
