// Package harness provides utilities for integration testing the playsound CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - PLAYSOUND_*: Stripped from the parent environment
//   - PLAYSOUND_DEBUG: Disabled to reduce noise
//   - XDG_STATE_HOME: Isolated per test so log files stay in a temp directory
package harness
