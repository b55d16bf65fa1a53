//go:build !windows

package winmm

import (
	"fmt"
	"runtime"

	"github.com/renato0307/playsound/internal/domain"
)

// Client is unavailable outside Windows
type Client struct{}

// Open always fails outside Windows
func Open() (*Client, error) {
	return nil, fmt.Errorf("%w: winmm is not available on %s", domain.ErrBackendUnavailable, runtime.GOOS)
}

// SendString always fails outside Windows
func (c *Client) SendString(command string) (string, error) {
	return "", fmt.Errorf("%w: winmm is not available on %s", domain.ErrBackendUnavailable, runtime.GOOS)
}
