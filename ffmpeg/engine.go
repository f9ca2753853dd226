// Package ffmpeg orchestrates media operations: it assembles ordered
// argument vectors from format and filter configuration, delegates
// execution to a driver.Runner, reports progress, and maps failures into
// typed errors with best-effort cleanup of partial output.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mediafx/driver"
	"mediafx/ffprobe"
	"mediafx/models"
)

// Engine owns the execution and probing collaborators. Independent
// operations opened from the same engine may run concurrently; the engine
// itself holds no mutable state.
type Engine struct {
	runner driver.Runner
	prober *ffprobe.Prober
	log    zerolog.Logger
}

// New creates an engine backed by the ffmpeg and ffprobe binaries found on
// PATH.
func New(log zerolog.Logger) *Engine {
	return &Engine{
		runner: driver.NewExecRunner("ffmpeg", log),
		prober: ffprobe.NewProber(driver.NewExecRunner("ffprobe", log)),
		log:    log,
	}
}

// NewWithRunner creates an engine with explicit collaborators. Used by
// tests and by callers that need custom binary locations.
func NewWithRunner(runner driver.Runner, prober *ffprobe.Prober, log zerolog.Logger) *Engine {
	return &Engine{runner: runner, prober: prober, log: log}
}

// Open probes the source file and returns a Media handle for it.
func (e *Engine) Open(ctx context.Context, sourcePath string) (*Media, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	probe, err := e.prober.Probe(ctx, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", sourcePath, err)
	}

	return &Media{engine: e, source: sourcePath, probe: probe}, nil
}

// execute runs the assembled argument vector and translates the outcome.
//
// On failure, any partial file at dst is deleted best-effort (exactly one
// attempt, failure swallowed) before the typed error is returned, so
// callers never observe a half-written artifact alongside an error.
func (e *Engine) execute(ctx context.Context, opName string, args []string, dst string, kind models.ArtifactKind, sourceDuration float64, callback models.ProgressCallback) (*models.Artifact, error) {
	log := e.log.With().
		Str("op_id", uuid.NewString()).
		Str("operation", opName).
		Str("destination", dst).
		Logger()

	log.Debug().Strs("args", args).Msg("executing")
	start := time.Now()

	err := e.run(ctx, args, sourceDuration, callback)
	if err != nil {
		e.removePartialOutput(dst, log)

		var de *driver.Error
		if errors.As(err, &de) {
			log.Error().Int("exit_code", de.ExitCode).Msg("operation failed")
			return nil, models.NewExecutionError(de.ExitCode, de.Stderr, de)
		}
		log.Error().Err(err).Msg("operation failed")
		return nil, models.NewExecutionError(-1, err.Error(), err)
	}

	elapsed := time.Since(start)
	log.Info().Dur("elapsed", elapsed).Msg("operation completed")
	return models.NewArtifact(dst, kind, elapsed)
}

// run dispatches to the streaming path when a progress callback is set and
// the runner supports it. Callbacks fire on the calling goroutine.
func (e *Engine) run(ctx context.Context, args []string, sourceDuration float64, callback models.ProgressCallback) error {
	streamer, ok := e.runner.(driver.StreamRunner)
	if callback == nil || !ok {
		_, err := e.runner.Run(ctx, args)
		return err
	}

	progress := models.NewEncodingProgress(sourceDuration)
	callback(progress)

	_, err := streamer.RunStream(ctx, args, newProgressWriter(progress, callback))
	if err != nil {
		progress.State = models.ProgressStateFailed
	} else {
		progress.State = models.ProgressStateCompleted
		progress.Progress = 100
	}
	callback(progress)
	return err
}

// removePartialOutput deletes a partially written destination file. The
// delete is attempted once; failure is logged and swallowed so the
// execution error stays the visible one.
func (e *Engine) removePartialOutput(dst string, log zerolog.Logger) {
	if dst == "" {
		return
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		log.Debug().Err(err).Msg("failed to remove partial output")
	}
}
