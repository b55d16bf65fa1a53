// Package appkit binds the macOS NSSound API through the Objective-C runtime,
// without cgo.
package appkit
