package ffmpeg

import (
	"regexp"
	"strconv"
	"strings"

	"mediafx/models"
)

// ProgressParser parses ffmpeg stderr output for processing metrics.
type ProgressParser struct {
	frameRegex   *regexp.Regexp
	fpsRegex     *regexp.Regexp
	sizeRegex    *regexp.Regexp
	timeRegex    *regexp.Regexp
	bitrateRegex *regexp.Regexp
	speedRegex   *regexp.Regexp
}

// NewProgressParser creates a parser for ffmpeg progress output.
func NewProgressParser() *ProgressParser {
	return &ProgressParser{
		// Match both "frame=123" and "frame= 123" formats
		frameRegex:   regexp.MustCompile(`^frame=\s*(\d+)`),
		fpsRegex:     regexp.MustCompile(`^fps=\s*([0-9.]+)`),
		sizeRegex:    regexp.MustCompile(`^(?:out_time_)?size=\s*([0-9]+)`),
		timeRegex:    regexp.MustCompile(`(?:^|\s)time=\s*([0-9:\.]+)`),
		bitrateRegex: regexp.MustCompile(`(?:^|\s)bitrate=\s*([0-9.]+)`),
		// Match speed both at line start (-progress format) and embedded
		// in a stats line
		speedRegex: regexp.MustCompile(`(?:^|\s)speed=\s*([0-9.]+)x?`),
	}
}

// ParseLine parses a single line of ffmpeg stderr output and updates the
// progress. Handles both -stats format (all data on one line) and -progress
// format (key=value per line). Returns true when any field was updated.
func (pp *ProgressParser) ParseLine(line string, progress *models.EncodingProgress) bool {
	line = strings.TrimSpace(line)
	if line == "" || line == "progress=continue" || line == "progress=end" {
		return false
	}

	updated := false

	if matches := pp.frameRegex.FindStringSubmatch(line); len(matches) > 1 {
		if frame, err := strconv.ParseInt(matches[1], 10, 64); err == nil {
			progress.Frame = frame
			updated = true
		}
	}

	if matches := pp.fpsRegex.FindStringSubmatch(line); len(matches) > 1 {
		if fps, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.FPS = fps
			updated = true
		}
	}

	if matches := pp.sizeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Size = matches[1] + "kB"
		updated = true
	}

	if matches := pp.timeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.CurrentTime = matches[1]
		if seconds := timeToSeconds(matches[1]); seconds > 0 {
			progress.CalculateProgress(seconds)
		}
		updated = true
	}

	if matches := pp.bitrateRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Bitrate = matches[1] + "kbits/s"
		updated = true
	}

	if matches := pp.speedRegex.FindStringSubmatch(line); len(matches) > 1 {
		if speed, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.Speed = speed
			updated = true
		}
	}

	return updated
}

// timeToSeconds converts ffmpeg time format (HH:MM:SS.MS) to seconds.
func timeToSeconds(timeStr string) float64 {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err1 := strconv.ParseFloat(parts[0], 64)
	minutes, err2 := strconv.ParseFloat(parts[1], 64)
	seconds, err3 := strconv.ParseFloat(parts[2], 64)

	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}

	return hours*3600 + minutes*60 + seconds
}

// progressWriter adapts a ProgressParser to io.Writer so it can serve as
// the driver's stderr tap. ffmpeg rewrites its stats line using carriage
// returns, so both \r and \n are treated as line separators.
type progressWriter struct {
	parser   *ProgressParser
	progress *models.EncodingProgress
	callback models.ProgressCallback
	buf      []byte
}

func newProgressWriter(progress *models.EncodingProgress, callback models.ProgressCallback) *progressWriter {
	return &progressWriter{
		parser:   NewProgressParser(),
		progress: progress,
		callback: callback,
	}
}

// Write implements io.Writer. It never returns an error so a callback can
// not abort the underlying process.
func (w *progressWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		idx := strings.IndexAny(string(w.buf), "\r\n")
		if idx < 0 {
			break
		}
		line := string(w.buf[:idx])
		w.buf = w.buf[idx+1:]
		w.emit(line)
	}
	return len(p), nil
}

func (w *progressWriter) emit(line string) {
	if w.parser.ParseLine(line, w.progress) {
		w.progress.State = models.ProgressStateRunning
		if w.callback != nil {
			w.callback(w.progress)
		}
	}
}
