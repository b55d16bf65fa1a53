package ports

import "time"

// ControlInterface is a text command media control interface (winmm MCI)
type ControlInterface interface {
	// SendString issues one command and returns the reply buffer.
	// Non-zero native codes are returned as *domain.MCIError.
	SendString(command string) (string, error)
}

// SoundURL is an opaque native URL value
type SoundURL interface {
	URI() string
}

// SoundObjectAPI is a native sound-object facility (AppKit NSSound)
type SoundObjectAPI interface {
	// URLWithString builds a native URL, reporting false when uri is rejected
	URLWithString(uri string) (SoundURL, bool)

	// LoadByReference loads a sound object from url, reporting false on failure
	LoadByReference(url SoundURL) (SoundObject, bool)
}

// SoundObject is a loaded native sound
type SoundObject interface {
	Play() bool
	Duration() time.Duration
	Release()
}

// PipelineState mirrors the native pipeline states used here
type PipelineState int

const (
	PipelineNull    PipelineState = 1
	PipelinePlaying PipelineState = 4
)

// StateChangeReturn mirrors the native state transition results
type StateChangeReturn int

const (
	StateChangeFailure   StateChangeReturn = 0
	StateChangeSuccess   StateChangeReturn = 1
	StateChangeAsync     StateChangeReturn = 2
	StateChangeNoPreroll StateChangeReturn = 3
)

// PipelineLibrary is a streaming media pipeline library (GStreamer)
type PipelineLibrary interface {
	// NewPlaybin constructs a playback pipeline element
	NewPlaybin() (Pipeline, error)
}

// Pipeline is one playback pipeline element
type Pipeline interface {
	SetURI(uri string)
	SetState(state PipelineState) StateChangeReturn

	// WaitEnd blocks until end-of-stream or an error message is posted on the
	// bus. There is no timeout. A non-nil error means the pipeline failed.
	WaitEnd() error

	// Close releases the native element; the pipeline must be in the null state
	Close()
}
