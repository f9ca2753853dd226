// Package config holds the tool configuration: binary locations and named
// output presets loaded from YAML.
package config

import (
	"fmt"

	"mediafx/filters"
	"mediafx/format"
)

// Config holds all mediafx configuration options.
type Config struct {
	// Binary locations; bare names are resolved on PATH.
	FFmpegBinary  string `yaml:"ffmpeg_binary"`
	FFprobeBinary string `yaml:"ffprobe_binary"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// Presets maps preset names to output settings.
	Presets map[string]Preset `yaml:"presets"`
}

// Preset is a named output configuration usable from the command line.
type Preset struct {
	Format      string `yaml:"format"`      // mp3, aac, flac, vorbis, wav, x264, webm, ogg
	Codec       string `yaml:"codec"`       // empty = format default
	KiloBitrate int    `yaml:"kilobitrate"` // 0 = format default
	Channels    int    `yaml:"channels"`    // 0 = keep source layout
	SampleRate  int    `yaml:"sample_rate"` // 0 = keep source rate

	Waveform WaveformPreset `yaml:"waveform"`
}

// WaveformPreset holds waveform rendering settings.
type WaveformPreset struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Colors []string `yaml:"colors"`
}

// Fill resolves effective waveform parameters: explicit values win, preset
// values fill whatever was left unset (zero width/height, empty colors).
func (w *WaveformPreset) Fill(width, height int, colors []string) (int, int, []string) {
	if width == 0 {
		width = w.Width
	}
	if height == 0 {
		height = w.Height
	}
	if len(colors) == 0 {
		colors = w.Colors
	}
	return width, height, colors
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		FFmpegBinary:  "ffmpeg",
		FFprobeBinary: "ffprobe",
		Verbose:       false,

		Presets: map[string]Preset{
			"mp3": {
				Format:      "mp3",
				KiloBitrate: 192,
				Channels:    2,
			},
			"podcast": {
				Format:      "mp3",
				KiloBitrate: 96,
				Channels:    1,
				SampleRate:  44100,
			},
			"waveform": {
				Format: "mp3",
				Waveform: WaveformPreset{
					Width:  640,
					Height: 120,
					Colors: []string{filters.DefaultColor},
				},
			},
		},
	}
}

// audioFormats maps preset format names to their constructors.
var audioFormats = map[string]func() *format.Audio{
	"mp3":    format.MP3,
	"aac":    format.AAC,
	"flac":   format.FLAC,
	"vorbis": format.Vorbis,
	"wav":    format.WAV,
}

// videoFormats maps preset format names to their constructors.
var videoFormats = map[string]func() *format.Video{
	"x264": format.X264,
	"webm": format.WebM,
	"ogg":  format.Ogg,
}

// BuildFormat materializes the preset into a typed format configuration.
// Preset values pass through the same setters callers use, so out-of-range
// values fail with the usual typed validation errors.
func (p *Preset) BuildFormat() (format.Format, error) {
	if ctor, ok := audioFormats[p.Format]; ok {
		return p.buildAudio(ctor())
	}
	if ctor, ok := videoFormats[p.Format]; ok {
		return p.buildVideo(ctor())
	}
	return nil, fmt.Errorf("unknown format %q (valid: %s)", p.Format, formatNames())
}

// buildAudio applies the preset's non-zero values through the typed
// setters. Values are only skipped when zero (unset), so negative values
// from a config file or CLI override fail with the setters' validation
// errors rather than being silently dropped.
func (p *Preset) buildAudio(f *format.Audio) (format.Format, error) {
	if p.Codec != "" {
		if err := f.SetCodec(p.Codec); err != nil {
			return nil, err
		}
	}
	if p.KiloBitrate != 0 {
		if err := f.SetKiloBitrate(p.KiloBitrate); err != nil {
			return nil, err
		}
	}
	if p.Channels != 0 {
		if err := f.SetChannels(p.Channels); err != nil {
			return nil, err
		}
	}
	if p.SampleRate != 0 {
		if err := f.SetSampleRate(p.SampleRate); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// buildVideo applies the preset to a video format. The codec and bitrate
// configure the video track; channels and sample rate flow into the
// format's embedded audio configuration.
func (p *Preset) buildVideo(f *format.Video) (format.Format, error) {
	if p.Codec != "" {
		if err := f.SetCodec(p.Codec); err != nil {
			return nil, err
		}
	}
	if p.KiloBitrate != 0 {
		if err := f.SetKiloBitrate(p.KiloBitrate); err != nil {
			return nil, err
		}
	}
	if p.Channels != 0 {
		if err := f.Audio().SetChannels(p.Channels); err != nil {
			return nil, err
		}
	}
	if p.SampleRate != 0 {
		if err := f.Audio().SetSampleRate(p.SampleRate); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func formatNames() string {
	return "mp3, aac, flac, vorbis, wav, x264, webm, ogg"
}
