package sound

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/ports"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeMCI records every command string
type fakeMCI struct {
	mu       sync.Mutex
	commands []string
	length   string
	fail     func(command string) error
}

func (f *fakeMCI) SendString(command string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, command)

	if f.fail != nil {
		if err := f.fail(command); err != nil {
			return "", err
		}
	}
	if strings.HasPrefix(command, "status ") {
		return f.length, nil
	}
	return "", nil
}

func (f *fakeMCI) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.commands...)
}

func (f *fakeMCI) CommandsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range f.Commands() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func mciFailure(command string) error {
	return &domain.MCIError{Code: 263, Message: "The specified device is not open or is not recognized by MCI.", Command: command}
}

// fakeSoundAPI simulates a native sound-object API
type fakeSoundAPI struct {
	rejectURL   bool
	failLoads   int // number of initial load attempts that fail
	loadCalls   int
	refusePlay  bool
	duration    time.Duration
	lastURI     string
	loadedSound *fakeSound
}

type fakeURL string

func (u fakeURL) URI() string { return string(u) }

func (f *fakeSoundAPI) URLWithString(uri string) (ports.SoundURL, bool) {
	f.lastURI = uri
	if f.rejectURL {
		return nil, false
	}
	return fakeURL(uri), true
}

func (f *fakeSoundAPI) LoadByReference(url ports.SoundURL) (ports.SoundObject, bool) {
	f.loadCalls++
	if f.loadCalls <= f.failLoads {
		return nil, false
	}
	f.loadedSound = &fakeSound{duration: f.duration, refusePlay: f.refusePlay}
	return f.loadedSound, true
}

type fakeSound struct {
	duration   time.Duration
	refusePlay bool
	played     bool
	released   bool
}

func (s *fakeSound) Play() bool {
	s.played = true
	return !s.refusePlay
}

func (s *fakeSound) Duration() time.Duration { return s.duration }

func (s *fakeSound) Release() { s.released = true }

// fakePipelineLib hands out fakePipelines
type fakePipelineLib struct {
	mu        sync.Mutex
	created   []*fakePipeline
	createErr error
	stateRet  ports.StateChangeReturn
	endErr    error
	hold      chan struct{} // WaitEnd blocks until closed, when set
}

func newFakePipelineLib() *fakePipelineLib {
	return &fakePipelineLib{stateRet: ports.StateChangeAsync}
}

func (f *fakePipelineLib) NewPlaybin() (ports.Pipeline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := &fakePipeline{stateRet: f.stateRet, endErr: f.endErr, hold: f.hold}
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePipelineLib) Created() []*fakePipeline {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakePipeline{}, f.created...)
}

type fakePipeline struct {
	mu       sync.Mutex
	uri      string
	states   []ports.PipelineState
	events   []string
	closed   bool
	stateRet ports.StateChangeReturn
	endErr   error
	hold     chan struct{}
}

func (p *fakePipeline) record(event string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *fakePipeline) SetURI(uri string) {
	p.mu.Lock()
	p.uri = uri
	p.mu.Unlock()
	p.record("uri")
}

func (p *fakePipeline) SetState(state ports.PipelineState) ports.StateChangeReturn {
	p.mu.Lock()
	p.states = append(p.states, state)
	p.mu.Unlock()
	if state == ports.PipelineNull {
		p.record("null")
		return ports.StateChangeSuccess
	}
	p.record("playing")
	return p.stateRet
}

func (p *fakePipeline) WaitEnd() error {
	p.record("wait")
	if p.hold != nil {
		<-p.hold
	}
	return p.endErr
}

func (p *fakePipeline) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.record("close")
}

func (p *fakePipeline) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.events...)
}

func (p *fakePipeline) URI() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.uri
}

// statRecorder records stat calls and fails with err when set
type statRecorder struct {
	calls []string
	err   error
}

func (s *statRecorder) Stat(path string) (os.FileInfo, error) {
	s.calls = append(s.calls, path)
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

var errNativeLoad = errors.New("native failure")
