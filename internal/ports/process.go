package ports

// ProcessRunner runs a child process to completion
type ProcessRunner interface {
	// Run starts name with args, adding env to the inherited environment, and
	// waits for it to exit. A non-zero exit is returned as an error.
	Run(name string, args []string, env []string) error
}
