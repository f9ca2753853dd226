package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestExecRunner_DefaultBinary(t *testing.T) {
	r := NewExecRunner("", zerolog.Nop())
	if r.Binary() != "ffmpeg" {
		t.Errorf("Binary() = %s; want ffmpeg", r.Binary())
	}

	r = NewExecRunner("  ffprobe  ", zerolog.Nop())
	if r.Binary() != "ffprobe" {
		t.Errorf("Binary() = %s; want ffprobe", r.Binary())
	}
}

func TestExecRunner_EmptyArgs(t *testing.T) {
	r := NewExecRunner("sh", zerolog.Nop())

	_, err := r.Run(context.Background(), nil)
	if err == nil {
		t.Fatal("Expected error for empty argument list")
	}
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	r := NewExecRunner("sh", zerolog.Nop())

	res, err := r.Run(context.Background(), []string{"-c", "echo to-stdout; echo to-stderr 1>&2"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d; want 0", res.ExitCode)
	}
	if !strings.Contains(string(res.Stdout), "to-stdout") {
		t.Errorf("Stdout = %q; want to contain to-stdout", res.Stdout)
	}
	if !strings.Contains(string(res.Stderr), "to-stderr") {
		t.Errorf("Stderr = %q; want to contain to-stderr", res.Stderr)
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	r := NewExecRunner("sh", zerolog.Nop())

	_, err := r.Run(context.Background(), []string{"-c", "echo diagnostic 1>&2; exit 3"})
	if err == nil {
		t.Fatal("Expected error for non-zero exit")
	}

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("Expected *driver.Error, got %T", err)
	}
	if de.ExitCode != 3 {
		t.Errorf("ExitCode = %d; want 3", de.ExitCode)
	}
	if !strings.Contains(de.Stderr, "diagnostic") {
		t.Errorf("Stderr = %q; want to contain diagnostic", de.Stderr)
	}
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	r := NewExecRunner("mediafx-test-no-such-binary", zerolog.Nop())

	_, err := r.Run(context.Background(), []string{"--version"})
	if err == nil {
		t.Fatal("Expected error for missing binary")
	}

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("Expected *driver.Error, got %T", err)
	}
	if de.ExitCode != -1 {
		t.Errorf("ExitCode = %d; want -1 for spawn failure", de.ExitCode)
	}
}

func TestExecRunner_RunStream_TapsStderr(t *testing.T) {
	r := NewExecRunner("sh", zerolog.Nop())

	var tap bytes.Buffer
	res, err := r.RunStream(context.Background(), []string{"-c", "echo line-one 1>&2; echo line-two 1>&2"}, &tap)
	if err != nil {
		t.Fatalf("RunStream failed: %v", err)
	}

	// Stderr reaches both the captured result and the tap.
	for _, out := range []string{string(res.Stderr), tap.String()} {
		if !strings.Contains(out, "line-one") || !strings.Contains(out, "line-two") {
			t.Errorf("Expected both lines, got %q", out)
		}
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{ExitCode: 1, Stderr: "No such file"}
	if !strings.Contains(err.Error(), "code 1") || !strings.Contains(err.Error(), "No such file") {
		t.Errorf("Unexpected message: %q", err.Error())
	}

	bare := &Error{ExitCode: -1}
	if !strings.Contains(bare.Error(), "code -1") {
		t.Errorf("Unexpected message: %q", bare.Error())
	}
}
