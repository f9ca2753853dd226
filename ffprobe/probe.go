// Package ffprobe extracts metadata from media files using the ffprobe
// command-line tool.
package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"mediafx/driver"
)

// Chapter represents a chapter marker in a media file.
type Chapter struct {
	ID        int    `json:"id"`
	TimeBase  string `json:"time_base"`
	Start     int64  `json:"start"`
	StartTime string `json:"start_time"`
	End       int64  `json:"end"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title,omitempty"`
}

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index         int    `json:"index"`
	CodecName     string `json:"codec_name"`
	CodecType     string `json:"codec_type"`
	CodecLongName string `json:"codec_long_name"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	SampleRate    string `json:"sample_rate,omitempty"`
	Channels      int    `json:"channels,omitempty"`
	Duration      string `json:"duration,omitempty"`
	BitRate       string `json:"bit_rate,omitempty"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// Result holds the complete metadata extracted from a media file.
type Result struct {
	Chapters []Chapter `json:"chapters"`
	Streams  []Stream  `json:"streams"`
	Format   Format    `json:"format"`
}

// Duration returns the container duration in seconds.
//
// Returns an error if ffprobe reported no parseable duration.
func (r *Result) Duration() (float64, error) {
	if r.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(r.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", r.Format.Duration, err)
	}

	return duration, nil
}

// VideoStreams returns all video streams from the media file.
func (r *Result) VideoStreams() []Stream {
	var streams []Stream
	for _, s := range r.Streams {
		if s.CodecType == "video" {
			streams = append(streams, s)
		}
	}
	return streams
}

// AudioStreams returns all audio streams from the media file.
func (r *Result) AudioStreams() []Stream {
	var streams []Stream
	for _, s := range r.Streams {
		if s.CodecType == "audio" {
			streams = append(streams, s)
		}
	}
	return streams
}

// HasChapters reports whether the file contains chapter markers.
func (r *Result) HasChapters() bool {
	return len(r.Chapters) > 0
}

// ChapterCount returns the number of chapters in the media file.
func (r *Result) ChapterCount() int {
	return len(r.Chapters)
}

// HasAudio reports whether the file contains at least one audio stream.
func (r *Result) HasAudio() bool {
	return len(r.AudioStreams()) > 0
}

// HasVideo reports whether the file contains at least one video stream.
func (r *Result) HasVideo() bool {
	return len(r.VideoStreams()) > 0
}

// Prober probes media files through a driver.Runner, so tests can stub the
// ffprobe binary.
type Prober struct {
	runner driver.Runner
}

// NewProber creates a prober backed by the given runner. The runner is
// expected to invoke the ffprobe binary.
func NewProber(runner driver.Runner) *Prober {
	return &Prober{runner: runner}
}

// Probe analyzes a media file and extracts its metadata.
//
// ffprobe is invoked with JSON output and the result decoded into duration,
// stream, and format information.
//
// Example:
//
//	result, err := prober.Probe(ctx, "/path/to/video.mp4")
//	if err != nil {
//	    return err
//	}
//	duration, _ := result.Duration()
func (p *Prober) Probe(ctx context.Context, sourcePath string) (*Result, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	// -v quiet: suppress log output so stdout is pure JSON
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_chapters",
		"-show_streams",
		"-show_format",
		sourcePath,
	}

	res, err := p.runner.Run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var result Result
	if err := json.Unmarshal(res.Stdout, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}

	return &result, nil
}
