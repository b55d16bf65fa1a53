package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaybackError_IsKind(t *testing.T) {
	kinds := []error{
		ErrBackendUnavailable,
		ErrCannotOpen,
		ErrControlCommand,
		ErrDelegatedProcessFailed,
		ErrFileNotFound,
		ErrInvalidTarget,
		ErrLoadFailed,
		ErrPipeline,
	}

	for _, kind := range kinds {
		t.Run(kind.Error(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", NewPlaybackError(kind, "a.wav", nil))

			assert.ErrorIs(t, err, kind)
			for _, other := range kinds {
				if other != kind {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestPlaybackError_UnwrapsMCIError(t *testing.T) {
	cause := &MCIError{Code: 275, Message: "The specified file cannot be found.", Command: `open "a.wav" alias 0`}
	err := NewPlaybackError(ErrCannotOpen, "a.wav", cause)

	var mciErr *MCIError
	require.True(t, errors.As(err, &mciErr))
	assert.Equal(t, uint32(275), mciErr.Code)
	assert.Equal(t, `open "a.wav" alias 0`, mciErr.Command)
	assert.ErrorIs(t, err, ErrCannotOpen)
}

func TestPlaybackError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *PlaybackError
		expected string
	}{
		{
			name:     "target only",
			err:      NewPlaybackError(ErrFileNotFound, "/tmp/missing.wav", nil),
			expected: "file not found: /tmp/missing.wav",
		},
		{
			name:     "pipeline state change code",
			err:      &PlaybackError{Kind: ErrPipeline, Target: "file:///a.wav", Code: 0},
			expected: "pipeline error: file:///a.wav (state change returned 0)",
		},
		{
			name:     "pipeline bus error",
			err:      NewPlaybackError(ErrPipeline, "file:///a.wav", errors.New("GstMessageError")),
			expected: "pipeline error: file:///a.wav: GstMessageError",
		},
		{
			name:     "with cause",
			err:      NewPlaybackError(ErrDelegatedProcessFailed, "a.wav", errors.New("exit status 1")),
			expected: "delegated playback process failed: a.wav: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestBackendSelection_String(t *testing.T) {
	sel := BackendSelection{OS: "darwin", Backend: BackendDelegate, Reason: "AppKit not loadable"}
	assert.Equal(t, "process-delegation on darwin (AppKit not loadable)", sel.String())

	sel = BackendSelection{OS: "windows", Backend: BackendControlString}
	assert.Equal(t, "control-string on windows", sel.String())
}
