package ffmpeg

import (
	"context"
	"time"

	"mediafx/ffprobe"
	"mediafx/filters"
	"mediafx/format"
	"mediafx/internal/timeutil"
	"mediafx/models"
)

// Media is a handle on one probed source file. It carries the per-operation
// state the caller accumulates before executing: clip window, filters, and
// progress callback.
//
// A Media value is owned by a single caller; it must not be mutated while
// an operation on it is in flight. Distinct Media values are independent.
type Media struct {
	engine   *Engine
	source   string
	probe    *ffprobe.Result
	clipArgs []string
	callback models.ProgressCallback
}

// Source returns the input file path.
func (m *Media) Source() string {
	return m.source
}

// Probe returns the metadata captured when the media was opened.
func (m *Media) Probe() *ffprobe.Result {
	return m.probe
}

// Duration returns the probed source duration in seconds, or 0 when
// unavailable.
func (m *Media) Duration() float64 {
	d, err := m.probe.Duration()
	if err != nil {
		return 0
	}
	return d
}

// OnProgress registers a callback invoked synchronously on the calling
// goroutine while an operation runs. Returns the media for chaining.
func (m *Media) OnProgress(callback models.ProgressCallback) *Media {
	m.callback = callback
	return m
}

// Clip restricts operations to a window of the source. Returns the media
// for chaining.
func (m *Media) Clip(start, duration time.Duration) *Media {
	end := start + duration
	m.clipArgs = []string{
		"-ss", timeutil.FormatSeconds(start.Seconds()),
		"-to", timeutil.FormatSeconds(end.Seconds()),
	}
	return m
}

// Save transcodes the media into the given format and writes it to dst.
//
// Token order is significant for ffmpeg's positional flag grammar:
// overwrite and input flags first, then the clip window, then each
// pipeline filter's tokens in registration order, then the format tokens,
// and the destination path always last.
//
// A nil pipeline is treated as empty. On failure any partial file at dst
// is removed and a *models.ExecutionError returned.
func (m *Media) Save(ctx context.Context, f format.Format, pipeline *filters.Pipeline, dst string) (*models.Artifact, error) {
	args := []string{"-y", "-i", m.source}
	args = append(args, m.clipArgs...)

	if pipeline != nil {
		args = append(args, pipeline.Apply(m.filterContext(0, 0))...)
	}

	args = append(args, f.Args()...)
	args = append(args, dst)

	return m.engine.execute(ctx, "transcode:"+f.Name(), args, dst, f.Kind(), m.Duration(), m.callback)
}

// Waveform prepares a waveform image operation at the given dimensions.
func (m *Media) Waveform(width, height int) *Waveform {
	return &Waveform{
		media:  m,
		width:  width,
		height: height,
		colors: filters.NewColorList(),
	}
}

// Frame prepares a still-image extraction at the given position.
func (m *Media) Frame(at time.Duration) *Frame {
	return &Frame{media: m, at: at}
}

func (m *Media) filterContext(width, height int) *filters.Context {
	return &filters.Context{
		Source:         m.source,
		Width:          width,
		Height:         height,
		SourceDuration: m.Duration(),
	}
}
