package ffmpeg

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"mediafx/driver"
	"mediafx/ffprobe"
)

// fakeRunner records every invocation and optionally fails or scripts
// stderr output for the streaming path.
type fakeRunner struct {
	calls        [][]string
	err          error
	stderrScript []string
	streamCalls  int
}

func (f *fakeRunner) Run(_ context.Context, args []string) (driver.Result, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return driver.Result{ExitCode: 1}, f.err
	}
	return driver.Result{ExitCode: 0}, nil
}

func (f *fakeRunner) RunStream(ctx context.Context, args []string, tap io.Writer) (driver.Result, error) {
	f.streamCalls++
	for _, line := range f.stderrScript {
		_, _ = tap.Write([]byte(line + "\n"))
	}
	return f.Run(ctx, args)
}

// probeRunner serves canned ffprobe JSON.
type probeRunner struct {
	stdout string
}

func (p *probeRunner) Run(_ context.Context, _ []string) (driver.Result, error) {
	return driver.Result{ExitCode: 0, Stdout: []byte(p.stdout)}, nil
}

const audioProbeJSON = `{
	"streams": [{"index": 0, "codec_name": "mp3", "codec_type": "audio", "channels": 2}],
	"format": {"filename": "in.mp3", "format_name": "mp3", "duration": "30.0"}
}`

// testEngine wires an engine around the fake runner and returns an opened
// media for in.mp3.
func testEngine(t *testing.T, runner driver.Runner) (*Engine, *Media) {
	t.Helper()

	engine := NewWithRunner(runner, ffprobe.NewProber(&probeRunner{stdout: audioProbeJSON}), zerolog.Nop())
	media, err := engine.Open(context.Background(), "in.mp3")
	require.NoError(t, err)
	return engine, media
}

func TestOpen_EmptyPath(t *testing.T) {
	engine := NewWithRunner(&fakeRunner{}, ffprobe.NewProber(&probeRunner{stdout: audioProbeJSON}), zerolog.Nop())

	_, err := engine.Open(context.Background(), "")
	require.Error(t, err)
}

func TestOpen_ProbesSource(t *testing.T) {
	_, media := testEngine(t, &fakeRunner{})

	require.Equal(t, "in.mp3", media.Source())
	require.InDelta(t, 30.0, media.Duration(), 0.001)
	require.True(t, media.Probe().HasAudio())
}
