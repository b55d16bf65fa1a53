//go:build linux || freebsd

package gstreamer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/renato0307/playsound/internal/ports"
)

const (
	messageEOS   int32 = 1 << 0
	messageError int32 = 1 << 1

	clockTimeNone = ^uint64(0)

	errorStructureName = "GstMessageError"
)

var libraryNames = []string{"libgstreamer-1.0.so.0", "libgstreamer-1.0.so"}

var (
	openOnce sync.Once
	opened   *Library
	openErr  error
)

// Library holds the resolved GStreamer entry points
type Library struct {
	gstInit            func(argc, argv uintptr)
	elementFactoryMake func(factory, name string) uintptr
	utilSetObjectArg   func(object uintptr, name, value string)
	elementSetState    func(element uintptr, state int32) int32
	elementGetBus      func(element uintptr) uintptr
	busPoll            func(bus uintptr, events int32, timeout uint64) uintptr
	messageGetStruct   func(message uintptr) uintptr
	structureGetName   func(structure uintptr) string
	miniObjectUnref    func(object uintptr)
	objectRefSink      func(object uintptr) uintptr
	objectUnref        func(object uintptr)
}

// Compile-time interface verification
var _ ports.PipelineLibrary = (*Library)(nil)

// Open loads libgstreamer and initializes it. Loading happens once per process.
func Open() (*Library, error) {
	openOnce.Do(func() {
		opened, openErr = load()
	})
	return opened, openErr
}

func load() (*Library, error) {
	var (
		handle uintptr
		errs   []string
	)
	for _, name := range libraryNames {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			handle = h
			break
		}
		errs = append(errs, err.Error())
	}
	if handle == 0 {
		return nil, fmt.Errorf("failed to load gstreamer: %s", strings.Join(errs, "; "))
	}

	lib := &Library{}
	symbols := []struct {
		fptr any
		name string
	}{
		{&lib.gstInit, "gst_init"},
		{&lib.elementFactoryMake, "gst_element_factory_make"},
		{&lib.utilSetObjectArg, "gst_util_set_object_arg"},
		{&lib.elementSetState, "gst_element_set_state"},
		{&lib.elementGetBus, "gst_element_get_bus"},
		{&lib.busPoll, "gst_bus_poll"},
		{&lib.messageGetStruct, "gst_message_get_structure"},
		{&lib.structureGetName, "gst_structure_get_name"},
		{&lib.miniObjectUnref, "gst_mini_object_unref"},
		{&lib.objectRefSink, "gst_object_ref_sink"},
		{&lib.objectUnref, "gst_object_unref"},
	}
	for _, s := range symbols {
		sym, err := purego.Dlsym(handle, s.name)
		if err != nil {
			return nil, fmt.Errorf("gstreamer symbol %s: %w", s.name, err)
		}
		purego.RegisterFunc(s.fptr, sym)
	}

	lib.gstInit(0, 0)
	return lib, nil
}

// NewPlaybin creates a playbin element and takes ownership of its floating
// reference, which Close drops
func (l *Library) NewPlaybin() (ports.Pipeline, error) {
	element := l.elementFactoryMake("playbin", "playbin")
	if element == 0 {
		return nil, errors.New("failed to create playbin element")
	}
	l.objectRefSink(element)
	return &pipeline{lib: l, element: element}, nil
}

type pipeline struct {
	lib     *Library
	element uintptr
}

func (p *pipeline) SetURI(uri string) {
	p.lib.utilSetObjectArg(p.element, "uri", uri)
}

func (p *pipeline) SetState(state ports.PipelineState) ports.StateChangeReturn {
	return ports.StateChangeReturn(p.lib.elementSetState(p.element, int32(state)))
}

func (p *pipeline) WaitEnd() error {
	bus := p.lib.elementGetBus(p.element)
	if bus == 0 {
		return errors.New("pipeline has no bus")
	}
	defer p.lib.objectUnref(bus)

	msg := p.lib.busPoll(bus, messageEOS|messageError, clockTimeNone)
	if msg == 0 {
		return errors.New("bus poll returned no message")
	}
	defer p.lib.miniObjectUnref(msg)

	// End-of-stream messages carry no structure
	if st := p.lib.messageGetStruct(msg); st != 0 {
		if name := p.lib.structureGetName(st); name == errorStructureName {
			return errors.New("pipeline posted an error message")
		}
	}
	return nil
}

func (p *pipeline) Close() {
	p.lib.objectUnref(p.element)
}
