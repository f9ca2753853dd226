package models

import (
	"fmt"
	"strings"
	"time"
)

// ArtifactKind identifies what a completed operation produced.
type ArtifactKind string

const (
	ArtifactAudio ArtifactKind = "audio" // transcoded audio file
	ArtifactVideo ArtifactKind = "video" // transcoded video file
	ArtifactImage ArtifactKind = "image" // waveform or extracted frame
)

// Artifact represents the output of one successful media operation.
//
// Use NewArtifact to create validated instances; the destination path must
// be non-empty since it is the only handle the caller has on the result.
type Artifact struct {
	Path    string        `json:"path"`    // destination path of the produced file
	Kind    ArtifactKind  `json:"kind"`    // what kind of output was produced
	Elapsed time.Duration `json:"elapsed"` // wall-clock duration of the operation
}

// NewArtifact creates an Artifact for the given destination path.
//
// Returns an error if path is empty or whitespace-only.
func NewArtifact(path string, kind ArtifactKind, elapsed time.Duration) (*Artifact, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("invalid artifact: path cannot be empty")
	}
	return &Artifact{Path: path, Kind: kind, Elapsed: elapsed}, nil
}

// String returns a short human-readable description of the artifact.
func (a *Artifact) String() string {
	return fmt.Sprintf("%s artifact at %s (%.2fs)", a.Kind, a.Path, a.Elapsed.Seconds())
}
