//go:build darwin

package appkit

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/renato0307/playsound/internal/ports"
)

const appKitPath = "/System/Library/Frameworks/AppKit.framework/AppKit"

var (
	selAlloc                 = objc.RegisterName("alloc")
	selDuration              = objc.RegisterName("duration")
	selInitWithContentsOfURL = objc.RegisterName("initWithContentsOfURL:byReference:")
	selPlay                  = objc.RegisterName("play")
	selRelease               = objc.RegisterName("release")
	selStringWithUTF8String  = objc.RegisterName("stringWithUTF8String:")
	selURLWithString         = objc.RegisterName("URLWithString:")
)

var (
	openOnce sync.Once
	opened   *Library
	openErr  error
)

// Library gives access to NSURL and NSSound
type Library struct {
	nsSound  objc.Class
	nsString objc.Class
	nsURL    objc.Class
}

// Compile-time interface verification
var _ ports.SoundObjectAPI = (*Library)(nil)

// Open loads AppKit into the process. The framework is loaded once.
func Open() (*Library, error) {
	openOnce.Do(func() {
		if _, err := purego.Dlopen(appKitPath, purego.RTLD_NOW|purego.RTLD_GLOBAL); err != nil {
			openErr = fmt.Errorf("failed to load AppKit: %w", err)
			return
		}

		lib := &Library{
			nsSound:  objc.GetClass("NSSound"),
			nsString: objc.GetClass("NSString"),
			nsURL:    objc.GetClass("NSURL"),
		}
		if lib.nsSound == 0 || lib.nsString == 0 || lib.nsURL == 0 {
			openErr = errors.New("AppKit loaded but NSSound is missing")
			return
		}
		opened = lib
	})
	return opened, openErr
}

type soundURL struct {
	id  objc.ID
	uri string
}

func (u soundURL) URI() string { return u.uri }

// URLWithString builds an NSURL; it reports false for strings NSURL rejects
func (l *Library) URLWithString(uri string) (ports.SoundURL, bool) {
	cstr := append([]byte(uri), 0)
	str := objc.ID(l.nsString).Send(selStringWithUTF8String, &cstr[0])
	runtime.KeepAlive(cstr)
	if str == 0 {
		return nil, false
	}

	url := objc.ID(l.nsURL).Send(selURLWithString, str)
	if url == 0 {
		return nil, false
	}
	return soundURL{id: url, uri: uri}, true
}

// LoadByReference allocates an NSSound that reads url lazily
func (l *Library) LoadByReference(url ports.SoundURL) (ports.SoundObject, bool) {
	u, ok := url.(soundURL)
	if !ok {
		return nil, false
	}

	snd := objc.ID(l.nsSound).Send(selAlloc).Send(selInitWithContentsOfURL, u.id, true)
	if snd == 0 {
		return nil, false
	}
	return &sound{id: snd}, true
}

type sound struct {
	id objc.ID
}

func (s *sound) Play() bool {
	return objc.Send[bool](s.id, selPlay)
}

func (s *sound) Duration() time.Duration {
	seconds := objc.Send[float64](s.id, selDuration)
	return time.Duration(seconds * float64(time.Second))
}

func (s *sound) Release() {
	s.id.Send(selRelease)
}
