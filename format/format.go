// Package format provides typed ffmpeg output format configuration.
//
// A format owns the codec, bitrate, and channel settings for one operation
// and serializes itself to ordered command-line tokens. All setters validate
// eagerly: a rejected value returns models.InvalidConfigurationError and
// leaves the previous value untouched, so invalid state can never reach the
// assembled command.
package format

import (
	"fmt"
	"slices"

	"mediafx/models"
)

// Format is any output configuration that can serialize itself to ffmpeg
// command-line tokens. The returned slice is appended to the command after
// filter tokens and before the destination path.
type Format interface {
	// Name returns the format's short name (e.g., "mp3", "x264").
	Name() string

	// Args returns the ordered ffmpeg tokens for this configuration.
	Args() []string

	// Kind returns the artifact kind this format produces.
	Kind() models.ArtifactKind
}

// validateCodec checks membership in the format's allowed-codec set.
func validateCodec(codec string, allowed []string) error {
	if slices.Contains(allowed, codec) {
		return nil
	}
	return models.NewInvalidConfiguration("codec", codec,
		fmt.Sprintf("must be one of %v", allowed))
}

// validatePositive checks the >= 1 rule shared by bitrate, channel, and
// sample-rate setters.
func validatePositive(field string, value int) error {
	if value >= 1 {
		return nil
	}
	return models.NewInvalidConfiguration(field, value, "must be at least 1")
}
