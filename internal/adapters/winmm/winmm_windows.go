//go:build windows

package winmm

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/ports"
)

const (
	replyBufferLen = 256
	errorBufferLen = 1024
)

var (
	modwinmm               = windows.NewLazySystemDLL("winmm.dll")
	procMciSendStringW     = modwinmm.NewProc("mciSendStringW")
	procMciGetErrorStringW = modwinmm.NewProc("mciGetErrorStringW")
)

// Client sends MCI command strings through winmm.dll
type Client struct{}

// Compile-time interface verification
var _ ports.ControlInterface = (*Client)(nil)

// Open loads winmm.dll and resolves the MCI entry points
func Open() (*Client, error) {
	if err := modwinmm.Load(); err != nil {
		return nil, fmt.Errorf("failed to load winmm.dll: %w", err)
	}
	for _, proc := range []*windows.LazyProc{procMciSendStringW, procMciGetErrorStringW} {
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", proc.Name, err)
		}
	}
	return &Client{}, nil
}

// SendString issues command and returns the reply buffer. The call blocks for
// commands with the wait flag.
func (c *Client) SendString(command string) (string, error) {
	cmd, err := windows.UTF16PtrFromString(command)
	if err != nil {
		return "", fmt.Errorf("invalid command %q: %w", command, err)
	}

	buf := make([]uint16, replyBufferLen)
	r, _, _ := procMciSendStringW.Call(
		uintptr(unsafe.Pointer(cmd)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
	)
	if code := uint32(r); code != 0 {
		return "", &domain.MCIError{Code: code, Message: errorString(code), Command: command}
	}

	return windows.UTF16ToString(buf), nil
}

// errorString resolves an MCI error code to its description
func errorString(code uint32) string {
	buf := make([]uint16, errorBufferLen)
	ok, _, _ := procMciGetErrorStringW.Call(
		uintptr(code),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ok == 0 {
		return "unknown MCI error"
	}
	return windows.UTF16ToString(buf)
}
