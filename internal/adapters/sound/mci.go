package sound

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/logging"
	"github.com/renato0307/playsound/internal/ports"
)

// MCIPlayer plays sounds through a command-string media control interface
type MCIPlayer struct {
	mci      ports.ControlInterface
	aliasID  atomic.Uint64
	sessions *SessionTracker
	now      func() time.Time
}

// Compile-time interface verification
var _ ports.SoundPlayer = (*MCIPlayer)(nil)

// NewMCIPlayer creates a control-string backend over mci
func NewMCIPlayer(mci ports.ControlInterface) *MCIPlayer {
	p := &MCIPlayer{
		mci: mci,
		now: time.Now,
	}
	p.sessions = NewSessionTracker(p.closeAlias)
	return p
}

// Play opens target under a fresh alias and plays it. Blocking playback is
// closed before returning; non-blocking sessions are closed by a later sweep.
func (p *MCIPlayer) Play(target string, block bool) error {
	defer func() {
		if n := p.sessions.Sweep(p.now()); n > 0 {
			logging.Logger.Debug("Reclaimed expired sessions", "count", n)
		}
	}()

	alias := p.nextAlias()
	logging.Logger.Debug("Opening sound", "target", target, "alias", alias, "block", block)

	if _, err := p.send(`open "%s" alias %s`, target, alias); err != nil {
		return domain.NewPlaybackError(domain.ErrCannotOpen, target, err)
	}

	if block {
		if _, err := p.send("play %s wait", alias); err != nil {
			_ = p.closeAlias(alias)
			return domain.NewPlaybackError(domain.ErrControlCommand, target, err)
		}
		if err := p.closeAlias(alias); err != nil {
			return domain.NewPlaybackError(domain.ErrControlCommand, target, err)
		}
		return nil
	}

	duration, err := p.startAsync(alias)
	if err != nil {
		// Nothing tracks the alias yet, so close it here
		_ = p.closeAlias(alias)
		return domain.NewPlaybackError(domain.ErrControlCommand, target, err)
	}

	expiry := p.now().Add(duration)
	p.sessions.Track(alias, expiry)
	logging.Logger.Debug("Tracking session", "alias", alias, "expiry", expiry)

	return nil
}

// Sessions exposes the tracker of open non-blocking sessions
func (p *MCIPlayer) Sessions() *SessionTracker {
	return p.sessions
}

func (p *MCIPlayer) startAsync(alias string) (time.Duration, error) {
	if _, err := p.send("set %s time format milliseconds", alias); err != nil {
		return 0, err
	}

	reply, err := p.send("status %s length", alias)
	if err != nil {
		return 0, err
	}
	ms, err := parseNumber(reply)
	if err != nil {
		return 0, fmt.Errorf("invalid length reply %q for alias %s: %w", reply, alias, err)
	}

	if _, err := p.send("play %s", alias); err != nil {
		return 0, err
	}

	return time.Duration(ms) * time.Millisecond, nil
}

func (p *MCIPlayer) nextAlias() string {
	return strconv.FormatUint(p.aliasID.Add(1)-1, 10)
}

func (p *MCIPlayer) closeAlias(alias string) error {
	_, err := p.send("close %s", alias)
	return err
}

func (p *MCIPlayer) send(format string, args ...any) (string, error) {
	command := fmt.Sprintf(format, args...)
	reply, err := p.mci.SendString(command)
	if err != nil {
		logging.Logger.Debug("Control command failed", "command", command, "error", err)
		return "", err
	}
	return reply, nil
}

// parseNumber reads a numeric reply; an empty reply counts as zero
func parseNumber(reply string) (int64, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return 0, nil
	}
	return strconv.ParseInt(reply, 10, 64)
}
