package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNoActiveSession  = errors.New("no active session")
	ErrSessionExists    = errors.New("a session is already active")
	ErrGoalCompleted    = errors.New("daily goal already completed")
	ErrNoSnapshot       = errors.New("no session snapshot")
	ErrNotPaused        = errors.New("session is not paused")
	ErrNotRunning       = errors.New("session is not running")
	ErrAlreadyDone      = errors.New("task is already done")
	ErrPluginDisabled   = errors.New("plugin is disabled")
	ErrChecksumMismatch = errors.New("plugin checksum mismatch")
)
