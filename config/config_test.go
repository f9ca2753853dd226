package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediafx/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ffmpeg", cfg.FFmpegBinary)
	assert.Equal(t, "ffprobe", cfg.FFprobeBinary)
	require.NoError(t, cfg.Validate())

	for _, name := range []string{"mp3", "podcast", "waveform"} {
		assert.Contains(t, cfg.Presets, name)
	}
}

func TestPreset_BuildFormat_Audio(t *testing.T) {
	p := Preset{Format: "mp3", KiloBitrate: 96, Channels: 1, SampleRate: 44100}

	f, err := p.BuildFormat()
	require.NoError(t, err)
	assert.Equal(t, "mp3", f.Name())
	assert.Equal(t, models.ArtifactAudio, f.Kind())
	assert.Equal(t,
		[]string{"-vn", "-c:a", "libmp3lame", "-b:a", "96k", "-ac", "1", "-ar", "44100"},
		f.Args())
}

func TestPreset_BuildFormat_Video(t *testing.T) {
	p := Preset{Format: "x264", KiloBitrate: 2500}

	f, err := p.BuildFormat()
	require.NoError(t, err)
	assert.Equal(t, models.ArtifactVideo, f.Kind())
	assert.Contains(t, f.Args(), "-b:v")
}

func TestPreset_BuildFormat_VideoAudioTrack(t *testing.T) {
	p := Preset{Format: "x264", Channels: 2, SampleRate: 48000}

	f, err := p.BuildFormat()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"-c:v", "libx264", "-c:a", "aac", "-b:a", "128k", "-ac", "2", "-ar", "48000"},
		f.Args())
}

func TestPreset_BuildFormat_Errors(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"Unknown format", Preset{Format: "mp5"}},
		{"Codec outside allowed set", Preset{Format: "mp3", Codec: "aac"}},
		{"Negative bitrate", Preset{Format: "mp3", KiloBitrate: -1}},
		{"Negative channels", Preset{Format: "mp3", Channels: -1}},
		{"Negative sample rate", Preset{Format: "mp3", SampleRate: -44100}},
		{"Negative video channels", Preset{Format: "x264", Channels: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.preset.BuildFormat()
			assert.Error(t, err)
		})
	}
}

func TestWaveformPreset_Fill(t *testing.T) {
	wp := WaveformPreset{Width: 800, Height: 200, Colors: []string{"#00FF00"}}

	tests := []struct {
		name       string
		width      int
		height     int
		colors     []string
		wantWidth  int
		wantHeight int
		wantColors []string
	}{
		{"All unset takes preset", 0, 0, nil, 800, 200, []string{"#00FF00"}},
		{"Explicit values win", 320, 90, []string{"#FF0000"}, 320, 90, []string{"#FF0000"}},
		{"Partial fill", 320, 0, nil, 320, 200, []string{"#00FF00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, c := wp.Fill(tt.width, tt.height, tt.colors)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
			assert.Equal(t, tt.wantColors, c)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults are valid", func(*Config) {}, false},
		{"Missing ffmpeg binary", func(c *Config) { c.FFmpegBinary = "" }, true},
		{"Missing ffprobe binary", func(c *Config) { c.FFprobeBinary = "" }, true},
		{"Preset without format", func(c *Config) {
			c.Presets["broken"] = Preset{}
		}, true},
		{"Preset with bad waveform color", func(c *Config) {
			c.Presets["broken"] = Preset{
				Format:   "mp3",
				Waveform: WaveformPreset{Width: 640, Height: 120, Colors: []string{"red"}},
			}
		}, true},
		{"Preset with zero waveform width", func(c *Config) {
			c.Presets["broken"] = Preset{
				Format:   "mp3",
				Waveform: WaveformPreset{Height: 120, Colors: []string{"#FFFFFF"}},
			}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
