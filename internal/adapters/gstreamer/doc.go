// Package gstreamer binds the small part of libgstreamer-1.0 needed to run a
// playbin, loading the library at runtime without cgo.
package gstreamer
