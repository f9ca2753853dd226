package config

import (
	"fmt"
	"strings"

	"mediafx/filters"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.FFmpegBinary == "" {
		errs = append(errs, "ffmpeg_binary is required")
	}
	if c.FFprobeBinary == "" {
		errs = append(errs, "ffprobe_binary is required")
	}

	for name, preset := range c.Presets {
		if err := preset.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("preset %q: %v", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Validate checks if a preset is valid. It materializes the format, so
// codec and bitrate values are checked against the same rules the typed
// setters enforce.
func (p *Preset) Validate() error {
	if p.Format == "" {
		return fmt.Errorf("format is required")
	}
	if _, err := p.BuildFormat(); err != nil {
		return err
	}
	return p.Waveform.Validate()
}

// Validate checks waveform settings. A zero-value preset (no waveform
// rendering) is valid.
func (w *WaveformPreset) Validate() error {
	if w.Width == 0 && w.Height == 0 && len(w.Colors) == 0 {
		return nil
	}
	if w.Width < 1 {
		return fmt.Errorf("waveform width must be positive")
	}
	if w.Height < 1 {
		return fmt.Errorf("waveform height must be positive")
	}
	return filters.NewColorList().Set(w.Colors)
}
