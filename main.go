package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mediafx/config"
	"mediafx/driver"
	"mediafx/ffmpeg"
	"mediafx/ffprobe"
	"mediafx/models"
)

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "mediafx",
		Short:         "Typed front end for ffmpeg media operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(probeCmd(), transcodeCmd(), waveformCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the engine shared by all commands.
func setup() (*config.Config, *ffmpeg.Engine, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	level := zerolog.InfoLevel
	if verbose || cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	engine := ffmpeg.NewWithRunner(
		driver.NewExecRunner(cfg.FFmpegBinary, log),
		ffprobe.NewProber(driver.NewExecRunner(cfg.FFprobeBinary, log)),
		log,
	)
	return cfg, engine, log, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Print media metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, _, err := setup()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			media, err := engine.Open(ctx, args[0])
			if err != nil {
				return err
			}

			probe := media.Probe()
			fmt.Printf("File:     %s\n", probe.Format.Filename)
			fmt.Printf("Format:   %s\n", probe.Format.FormatLongName)
			fmt.Printf("Duration: %.2f seconds\n", media.Duration())
			fmt.Printf("Streams:  %d audio, %d video\n",
				len(probe.AudioStreams()), len(probe.VideoStreams()))
			for _, s := range probe.Streams {
				fmt.Printf("  #%d %s (%s)\n", s.Index, s.CodecName, s.CodecType)
			}
			return nil
		},
	}
}

func transcodeCmd() *cobra.Command {
	var (
		input    string
		output   string
		preset   string
		codec    string
		bitrate  int
		channels int
	)

	cmd := &cobra.Command{
		Use:   "transcode",
		Short: "Transcode media using a named preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, log, err := setup()
			if err != nil {
				return err
			}

			p, ok := cfg.Presets[preset]
			if !ok {
				return fmt.Errorf("unknown preset %q", preset)
			}
			// Flag overrides feed BuildFormat, so out-of-range values fail
			// with the same typed errors the setters raise.
			if codec != "" {
				p.Codec = codec
			}
			if bitrate != 0 {
				p.KiloBitrate = bitrate
			}
			if channels != 0 {
				p.Channels = channels
			}
			f, err := p.BuildFormat()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			media, err := engine.Open(ctx, input)
			if err != nil {
				return err
			}
			media.OnProgress(func(p *models.EncodingProgress) {
				if p.State == models.ProgressStateRunning {
					log.Info().Msg(p.FormatSummary())
				}
			})

			artifact, err := media.Save(ctx, f, nil, output)
			if err != nil {
				return err
			}
			log.Info().Str("path", artifact.Path).Msg("done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVarP(&preset, "preset", "p", "mp3", "preset name")
	cmd.Flags().StringVar(&codec, "codec", "", "override codec")
	cmd.Flags().IntVarP(&bitrate, "bitrate", "b", 0, "override bitrate in kbit/s")
	cmd.Flags().IntVar(&channels, "channels", 0, "override channel count")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func waveformCmd() *cobra.Command {
	var (
		input  string
		output string
		preset string
		width  int
		height int
		colors []string
	)

	cmd := &cobra.Command{
		Use:   "waveform",
		Short: "Render a waveform image from an audio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, log, err := setup()
			if err != nil {
				return err
			}

			// Explicit flags win, then the preset fills the gaps, then
			// the built-in 640x120 fallback covers whatever remains.
			var wp config.WaveformPreset
			if preset != "" {
				p, ok := cfg.Presets[preset]
				if !ok {
					return fmt.Errorf("unknown preset %q", preset)
				}
				wp = p.Waveform
			}
			width, height, colors = wp.Fill(width, height, colors)
			fallback := config.WaveformPreset{Width: 640, Height: 120}
			width, height, colors = fallback.Fill(width, height, colors)

			ctx, cancel := signalContext()
			defer cancel()

			media, err := engine.Open(ctx, input)
			if err != nil {
				return err
			}

			wf := media.Waveform(width, height)
			if err := wf.SetColors(colors); err != nil {
				return err
			}

			artifact, err := wf.Save(ctx, output)
			if err != nil {
				return err
			}
			log.Info().Str("path", artifact.Path).Msg("waveform rendered")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (required)")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "seed width/height/colors from a preset")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "image width (default 640 or preset)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "image height (default 120 or preset)")
	cmd.Flags().StringSliceVarP(&colors, "color", "c", nil, "waveform color (#RRGGBB, repeatable)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
