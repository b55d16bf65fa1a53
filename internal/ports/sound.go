package ports

// SoundPlayer plays a single sound, optionally waiting for it to finish
type SoundPlayer interface {
	// Play starts playback of target and, when block is true, returns only after
	// playback has ended
	Play(target string, block bool) error
}
