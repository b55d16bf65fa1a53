package domain

// PlaybackRequest is one call to play a sound
type PlaybackRequest struct {
	Target string
	Block  bool
}

// BackendKind identifies one of the native playback backends
type BackendKind string

const (
	BackendControlString BackendKind = "control-string"
	BackendNativeObject  BackendKind = "native-object"
	BackendPipeline      BackendKind = "streaming-pipeline"
	BackendDelegate      BackendKind = "process-delegation"
)

// BackendSelection records which backend serves every playback call of the process.
// It is computed once and never changes.
type BackendSelection struct {
	OS        string
	Backend   BackendKind
	Delegated bool   // true when running as a delegated child process
	Reason    string // why delegation was chosen, empty otherwise
}

// String formats the selection for display
func (s BackendSelection) String() string {
	if s.Reason != "" {
		return string(s.Backend) + " on " + s.OS + " (" + s.Reason + ")"
	}
	return string(s.Backend) + " on " + s.OS
}
