package sound

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/logging"
	"github.com/renato0307/playsound/internal/pathuri"
	"github.com/renato0307/playsound/internal/ports"
)

// PipelinePlayer plays sounds through a streaming media pipeline
type PipelinePlayer struct {
	lib  ports.PipelineLibrary
	stat func(string) (os.FileInfo, error)

	// reaped is notified after a non-blocking pipeline was torn down
	reaped func(uri string, err error)
}

// Compile-time interface verification
var _ ports.SoundPlayer = (*PipelinePlayer)(nil)

// NewPipelinePlayer creates a streaming-pipeline backend over lib
func NewPipelinePlayer(lib ports.PipelineLibrary) *PipelinePlayer {
	return &PipelinePlayer{
		lib:    lib,
		stat:   os.Stat,
		reaped: func(string, error) {},
	}
}

// Play builds a playbin for target and starts it. Non-blocking pipelines are
// torn down by a reaper goroutine once the stream ends.
func (p *PipelinePlayer) Play(target string, block bool) error {
	uri, err := p.sourceURI(target)
	if err != nil {
		return err
	}

	pipeline, err := p.lib.NewPlaybin()
	if err != nil {
		return domain.NewPlaybackError(domain.ErrPipeline, uri, err)
	}
	pipeline.SetURI(uri)

	if ret := pipeline.SetState(ports.PipelinePlaying); ret != ports.StateChangeAsync {
		teardown(pipeline)
		return &domain.PlaybackError{Kind: domain.ErrPipeline, Target: uri, Code: int(ret)}
	}

	logging.Logger.Debug("Starting play", "uri", uri, "block", block)

	if !block {
		go func() {
			err := pipeline.WaitEnd()
			teardown(pipeline)
			if err != nil {
				logging.Logger.Warn("Non-blocking pipeline failed", "uri", uri, "error", err)
			}
			logging.Logger.Debug("Finishing play", "uri", uri)
			p.reaped(uri, err)
		}()
		return nil
	}

	defer teardown(pipeline)
	if err := pipeline.WaitEnd(); err != nil {
		return domain.NewPlaybackError(domain.ErrPipeline, uri, err)
	}

	logging.Logger.Debug("Finishing play", "uri", uri)
	return nil
}

// sourceURI passes http(s) URLs through and turns anything else into a file
// URI after checking that the file exists
func (p *PipelinePlayer) sourceURI(target string) (string, error) {
	if pathuri.IsHTTP(target) {
		return target, nil
	}

	path, err := filepath.Abs(target)
	if err != nil {
		return "", domain.NewPlaybackError(domain.ErrFileNotFound, target, err)
	}
	if _, err := p.stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NewPlaybackError(domain.ErrFileNotFound, path, nil)
		}
		return "", domain.NewPlaybackError(domain.ErrFileNotFound, path, err)
	}

	return pathuri.FileURI(path), nil
}

func teardown(pipeline ports.Pipeline) {
	pipeline.SetState(ports.PipelineNull)
	pipeline.Close()
}
