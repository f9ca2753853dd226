package ffmpeg

import (
	"context"
	"fmt"

	"mediafx/filters"
	"mediafx/models"
)

// Waveform is a pending waveform-image operation on a media source.
//
// Configure colors and extra filters, then call Save. The rendered image
// uses ffmpeg's showwavespic filter.
type Waveform struct {
	media    *Media
	width    int
	height   int
	colors   *filters.ColorList
	pipeline filters.Pipeline
}

// SetColors sets the waveform draw colors. Every entry must be '#' plus
// exactly 6 hex digits; a single invalid entry rejects the whole call and
// keeps the previous colors. An empty slice is a no-op.
func (w *Waveform) SetColors(colors []string) error {
	return w.colors.Set(colors)
}

// Colors returns the current color list. It is never empty.
func (w *Waveform) Colors() []string {
	return w.colors.Colors()
}

// AddFilter appends a filter applied after the waveform expression.
// Returns the waveform for chaining.
func (w *Waveform) AddFilter(f filters.Filter) *Waveform {
	w.pipeline.Add(f)
	return w
}

// Save renders the waveform image to dst.
//
// Assembled token order: overwrite flag, input, the showwavespic
// filter_complex expression, registered filter tokens in order, the
// single-frame limit, and the destination path last.
//
// Example for colors ["#FFFFFF"] at 640x120:
//
//	-y -i in.mp3 -filter_complex showwavespic=colors=#FFFFFF:s=640x120 -frames:v 1 out.png
func (w *Waveform) Save(ctx context.Context, dst string) (*models.Artifact, error) {
	if err := w.validateDimensions(); err != nil {
		return nil, err
	}

	args := []string{
		"-y",
		"-i", w.media.source,
		"-filter_complex",
		fmt.Sprintf("showwavespic=colors=%s:s=%dx%d", w.colors, w.width, w.height),
	}
	args = append(args, w.pipeline.Apply(w.media.filterContext(w.width, w.height))...)
	args = append(args, "-frames:v", "1", dst)

	return w.media.engine.execute(ctx, "waveform", args, dst, models.ArtifactImage, w.media.Duration(), w.media.callback)
}

func (w *Waveform) validateDimensions() error {
	if w.width < 1 {
		return models.NewInvalidConfiguration("width", w.width, "must be at least 1")
	}
	if w.height < 1 {
		return models.NewInvalidConfiguration("height", w.height, "must be at least 1")
	}
	return nil
}
