package format

import (
	"fmt"

	"mediafx/models"
)

// Video is a mutable video output configuration. It wraps an audio
// configuration for the output's audio track and adds video codec and
// rate-control settings.
type Video struct {
	name          string
	allowedCodecs []string
	codec         string
	kiloBitrate   int // 0 means rate control by CRF only
	crf           int // -1 means unset
	extra         []string
	audio         *Audio
}

// NewVideo creates a video format with the given allowed video codec set,
// default video codec, and embedded audio configuration.
func NewVideo(name, defaultCodec string, allowedCodecs []string, audio *Audio) *Video {
	return &Video{
		name:          name,
		allowedCodecs: allowedCodecs,
		codec:         defaultCodec,
		crf:           -1,
		audio:         audio,
	}
}

// X264 returns an H.264 format with AAC audio.
func X264() *Video {
	return NewVideo("x264", "libx264", []string{"libx264"},
		NewAudio("aac", "aac", []string{"aac", "libfdk_aac", "libmp3lame"}))
}

// WebM returns a VP9 WebM format with Vorbis audio.
func WebM() *Video {
	return NewVideo("webm", "libvpx-vp9", []string{"libvpx", "libvpx-vp9"}, Vorbis())
}

// Ogg returns a Theora format with Vorbis audio.
func Ogg() *Video {
	return NewVideo("ogg", "libtheora", []string{"libtheora"}, Vorbis())
}

// Name returns the format's short name.
func (v *Video) Name() string {
	return v.name
}

// Kind returns models.ArtifactVideo.
func (v *Video) Kind() models.ArtifactKind {
	return models.ArtifactVideo
}

// SetCodec sets the video codec. The codec must belong to the format's
// allowed set; otherwise the call fails and the previous codec is kept.
func (v *Video) SetCodec(codec string) error {
	if err := validateCodec(codec, v.allowedCodecs); err != nil {
		return err
	}
	v.codec = codec
	return nil
}

// Codec returns the configured video codec.
func (v *Video) Codec() string {
	return v.codec
}

// SetKiloBitrate sets the video bitrate in kilobits per second (>= 1).
func (v *Video) SetKiloBitrate(kiloBitrate int) error {
	if err := validatePositive("kilobitrate", kiloBitrate); err != nil {
		return err
	}
	v.kiloBitrate = kiloBitrate
	return nil
}

// KiloBitrate returns the configured video bitrate, or 0 when rate control
// is left to CRF.
func (v *Video) KiloBitrate() int {
	return v.kiloBitrate
}

// SetConstantRateFactor sets CRF-based rate control (0-51 for x264; lower
// means better quality).
func (v *Video) SetConstantRateFactor(crf int) error {
	if crf < 0 || crf > 51 {
		return models.NewInvalidConfiguration("crf", crf, "must be between 0 and 51")
	}
	v.crf = crf
	return nil
}

// SetExtraParams appends raw encoder-specific tokens passed through to the
// command unchanged (e.g. "-preset", "fast"). Returns the format for
// chaining; no validation is applied.
func (v *Video) SetExtraParams(params ...string) *Video {
	v.extra = append(v.extra, params...)
	return v
}

// Audio returns the embedded audio configuration for the output's audio
// track. Mutations through the returned value are visible to Args.
func (v *Video) Audio() *Audio {
	return v.audio
}

// Args returns the ordered ffmpeg tokens for this configuration. Video
// tokens come first, then the audio track tokens without the leading "-vn".
func (v *Video) Args() []string {
	args := []string{}

	if v.codec != "" {
		args = append(args, "-c:v", v.codec)
	}
	if v.crf >= 0 {
		args = append(args, "-crf", fmt.Sprintf("%d", v.crf))
	}
	if v.kiloBitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", v.kiloBitrate))
	}
	args = append(args, v.extra...)

	if v.audio != nil {
		audioArgs := v.audio.Args()
		// Drop the "-vn" the audio format leads with; this output has video.
		if len(audioArgs) > 0 && audioArgs[0] == "-vn" {
			audioArgs = audioArgs[1:]
		}
		args = append(args, audioArgs...)
	}

	return args
}
