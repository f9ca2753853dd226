package ffmpeg

import (
	"context"
	"time"

	"mediafx/filters"
	"mediafx/internal/timeutil"
	"mediafx/models"
)

// Frame is a pending still-image extraction at a fixed position in the
// source.
type Frame struct {
	media    *Media
	at       time.Duration
	pipeline filters.Pipeline
}

// AddFilter appends a filter applied to the extracted frame (e.g.
// filters.Resize). Returns the frame for chaining.
func (f *Frame) AddFilter(filter filters.Filter) *Frame {
	f.pipeline.Add(filter)
	return f
}

// Save extracts the frame to dst. Seeking happens before the input is
// opened (-ss before -i) so extraction stays fast on long sources.
func (f *Frame) Save(ctx context.Context, dst string) (*models.Artifact, error) {
	if f.at < 0 {
		return nil, models.NewInvalidConfiguration("position", f.at, "must not be negative")
	}

	args := []string{
		"-y",
		"-ss", timeutil.FormatSeconds(f.at.Seconds()),
		"-i", f.media.source,
	}
	args = append(args, f.pipeline.Apply(f.media.filterContext(0, 0))...)
	args = append(args, "-frames:v", "1", dst)

	return f.media.engine.execute(ctx, "frame", args, dst, models.ArtifactImage, f.media.Duration(), f.media.callback)
}
