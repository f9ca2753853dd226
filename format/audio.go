package format

import (
	"fmt"

	"mediafx/models"
)

// DefaultAudioKiloBitrate is applied to every audio format until overridden.
const DefaultAudioKiloBitrate = 128

// Audio is a mutable audio output configuration.
//
// The zero values of channels and sampleRate mean "unspecified": the
// corresponding flags are omitted and ffmpeg keeps the source layout. An
// empty codec means "let ffmpeg choose from the output extension".
type Audio struct {
	name          string
	allowedCodecs []string
	codec         string
	kiloBitrate   int
	channels      int
	sampleRate    int
}

// NewAudio creates an audio format with the given allowed-codec set and
// default codec. Exposed for custom formats; prefer the concrete
// constructors (MP3, AAC, FLAC, Vorbis, WAV) for the common cases.
func NewAudio(name, defaultCodec string, allowedCodecs []string) *Audio {
	return &Audio{
		name:          name,
		allowedCodecs: allowedCodecs,
		codec:         defaultCodec,
		kiloBitrate:   DefaultAudioKiloBitrate,
	}
}

// MP3 returns an MP3 format using the libmp3lame encoder.
func MP3() *Audio {
	return NewAudio("mp3", "libmp3lame", []string{"libmp3lame"})
}

// AAC returns an AAC format. The encoder defaults to ffmpeg's native aac;
// libfdk_aac is accepted for builds that ship it.
func AAC() *Audio {
	return NewAudio("aac", "aac", []string{"aac", "libfdk_aac"})
}

// FLAC returns a lossless FLAC format.
func FLAC() *Audio {
	return NewAudio("flac", "flac", []string{"flac"})
}

// Vorbis returns an Ogg Vorbis format.
func Vorbis() *Audio {
	return NewAudio("vorbis", "libvorbis", []string{"libvorbis"})
}

// WAV returns an uncompressed PCM WAV format.
func WAV() *Audio {
	return NewAudio("wav", "pcm_s16le", []string{"pcm_s16le"})
}

// Name returns the format's short name.
func (a *Audio) Name() string {
	return a.name
}

// Kind returns models.ArtifactAudio.
func (a *Audio) Kind() models.ArtifactKind {
	return models.ArtifactAudio
}

// SetCodec sets the audio codec. The codec must belong to the format's
// allowed set; otherwise the call fails and the previous codec is kept.
func (a *Audio) SetCodec(codec string) error {
	if err := validateCodec(codec, a.allowedCodecs); err != nil {
		return err
	}
	a.codec = codec
	return nil
}

// Codec returns the configured codec, or the empty string when unset.
// An unset codec is not an error: ffmpeg picks a default for the output.
func (a *Audio) Codec() string {
	return a.codec
}

// SetKiloBitrate sets the audio bitrate in kilobits per second (>= 1).
func (a *Audio) SetKiloBitrate(kiloBitrate int) error {
	if err := validatePositive("kilobitrate", kiloBitrate); err != nil {
		return err
	}
	a.kiloBitrate = kiloBitrate
	return nil
}

// KiloBitrate returns the configured bitrate in kilobits per second.
func (a *Audio) KiloBitrate() int {
	return a.kiloBitrate
}

// SetChannels sets the channel count (>= 1).
func (a *Audio) SetChannels(channels int) error {
	if err := validatePositive("channels", channels); err != nil {
		return err
	}
	a.channels = channels
	return nil
}

// Channels returns the configured channel count, or 0 when unspecified.
func (a *Audio) Channels() int {
	return a.channels
}

// SetSampleRate sets the sample rate in Hz (>= 1).
func (a *Audio) SetSampleRate(sampleRate int) error {
	if err := validatePositive("sample_rate", sampleRate); err != nil {
		return err
	}
	a.sampleRate = sampleRate
	return nil
}

// SampleRate returns the configured sample rate, or 0 when unspecified.
func (a *Audio) SampleRate() int {
	return a.sampleRate
}

// Args returns the ordered ffmpeg tokens for this configuration.
//
// Example for MP3 at 192 kbit/s stereo:
//
//	["-vn", "-c:a", "libmp3lame", "-b:a", "192k", "-ac", "2"]
func (a *Audio) Args() []string {
	args := []string{"-vn"}

	if a.codec != "" {
		args = append(args, "-c:a", a.codec)
	}
	args = append(args, "-b:a", fmt.Sprintf("%dk", a.kiloBitrate))

	if a.channels > 0 {
		args = append(args, "-ac", fmt.Sprintf("%d", a.channels))
	}
	if a.sampleRate > 0 {
		args = append(args, "-ar", fmt.Sprintf("%d", a.sampleRate))
	}

	return args
}
