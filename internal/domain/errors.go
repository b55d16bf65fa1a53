package domain

import (
	"errors"
	"fmt"
)

// Playback error kinds, matched with errors.Is
var (
	ErrBackendUnavailable     = errors.New("playback backend unavailable")
	ErrCannotOpen             = errors.New("could not open sound")
	ErrControlCommand         = errors.New("control command failed")
	ErrDelegatedProcessFailed = errors.New("delegated playback process failed")
	ErrFileNotFound           = errors.New("file not found")
	ErrInvalidTarget          = errors.New("cannot find a sound with filename")
	ErrLoadFailed             = errors.New("could not load sound, although URL was good")
	ErrPipeline               = errors.New("pipeline error")
)

// PlaybackError is the single failure type returned by every backend.
// Kind is one of the Err* sentinels above.
type PlaybackError struct {
	Kind   error
	Target string
	Code   int
	Err    error
}

// NewPlaybackError creates a PlaybackError of the given kind for target
func NewPlaybackError(kind error, target string, cause error) *PlaybackError {
	return &PlaybackError{Kind: kind, Target: target, Err: cause}
}

func (e *PlaybackError) Error() string {
	msg := e.Kind.Error()
	if e.Target != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Target)
	}
	if e.Kind == ErrPipeline && e.Err == nil {
		msg = fmt.Sprintf("%s (state change returned %d)", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As
func (e *PlaybackError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// MCIError is a non-zero reply from the media control interface.
type MCIError struct {
	Code    uint32
	Message string
	Command string
}

func (e *MCIError) Error() string {
	return fmt.Sprintf("mciError(%d) %s [%s]", e.Code, e.Message, e.Command)
}
