// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audplay"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startMs int64

// playCmd decodes a file and plays it
var playCmd = &cobra.Command{
	Use:   "play FILE",
	Short: "Play an audio file",
	Long: `Play decodes FILE and writes it to the selected backend.

The decoder is chosen from the file extension unless --decoder is given.
Use --decoder passthrough to forward Ogg pages without decoding.`,
	Example: `  audplay play song.ogg
  audplay play -b pipe -f S24_3 song.mp3 > out.raw
  audplay play -b subprocess -d 'aplay -f S16_LE -c 2 -r 44100' take.wav
  audplay play -b wav -d copy.wav --start-ms 30000 song.ogg`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("backend", "b", "", "backend name (default is the first listed by 'audplay backends')")
	playCmd.Flags().StringP("device", "d", "", "backend device: file, command, or empty")
	playCmd.Flags().StringP("format", "f", "S16", "sample format (F32, S32, S24, S24_3, S16)")
	playCmd.Flags().String("decoder", "", "decoder (vorbis, passthrough, mp3, wav, aiff)")
	playCmd.Flags().Int64Var(&startMs, "start-ms", 0, "start position in milliseconds")

	viper.BindPFlag("backend.name", playCmd.Flags().Lookup("backend"))
	viper.BindPFlag("backend.device", playCmd.Flags().Lookup("device"))
	viper.BindPFlag("backend.format", playCmd.Flags().Lookup("format"))
	viper.BindPFlag("decoder.kind", playCmd.Flags().Lookup("decoder"))
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dec, err := audplay.OpenFile(args[0], cfg.Decoder.Kind)
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer dec.Close()

	if startMs > 0 {
		if err := dec.Seek(startMs); err != nil {
			return fmt.Errorf("seek to %dms: %w", startMs, err)
		}
	}

	sink, err := audplay.OpenSink(cfg.Backend.Name, cfg.Backend.Device, cfg.Backend.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Playing",
		slog.String("file", args[0]),
		slog.String("backend", cfg.Backend.Name),
		slog.String("format", cfg.Backend.Format))

	err = audplay.Play(ctx, dec, sink, nil)
	if errors.Is(err, context.Canceled) {
		slog.Info("Playback interrupted")
		return nil
	}
	return err
}
