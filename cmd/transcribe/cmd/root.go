package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yt-transcribe/cmd/transcribe/cmd/config"
	"yt-transcribe/cmd/transcribe/cmd/export"
	"yt-transcribe/cmd/transcribe/cmd/history"
	"yt-transcribe/cmd/transcribe/cmd/shared"
	"yt-transcribe/cmd/transcribe/cmd/version"
	"yt-transcribe/internal/app"
	"yt-transcribe/internal/app/converter"
	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/transcript"
)

// exitInterrupted is the conventional status for a run stopped by SIGINT.
const exitInterrupted = 130

var (
	timestamps bool
	perSegment bool
	kebab      bool
	output     string
	force      bool
	gap        float64
	engine     string
	noProgress bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcribe URL",
	Short: "Transcribe a YouTube video into a markdown document",
	Long: `Transcribe a YouTube video into a markdown document

- Download the audio track with yt-dlp
- Run speech recognition (parakeet-mlx, whisper.cpp or the OpenAI API)
- Group the segments into paragraphs and save "<Title> Transcript.md"`,
	Example: `  transcribe "https://www.youtube.com/watch?v=VIDEO_ID"
  transcribe -t URL                  # paragraph timestamps
  transcribe -k URL                  # kebab-case filename
  transcribe URL -o notes/talk.md    # custom output path`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// exitError carries a process exit status out of RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&shared.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&shared.ConfigPath, "config", "", "settings file (default is $XDG_CONFIG_HOME/transcribe/config.yaml)")

	rootCmd.Flags().BoolVarP(&timestamps, "timestamps", "t", false, "prefix each paragraph with [MM:SS]")
	rootCmd.Flags().BoolVar(&perSegment, "per-segment", false, "one timestamped line per recognized segment (implies -t)")
	rootCmd.Flags().BoolVarP(&kebab, "kebab", "k", false, "use a kebab-case filename (my-video-transcript.md)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output markdown file path (default: <video-title> Transcript.md)")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file without asking")
	rootCmd.Flags().Float64Var(&gap, "gap", transcript.DefaultParagraphGapSeconds, "silence in seconds that starts a new paragraph")
	rootCmd.Flags().StringVar(&engine, "engine", "", "speech recognition engine: parakeet, whisper_cpp or openai")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not draw the progress spinner")
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := shared.LoadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("engine") {
		settings.Engine = engine
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	req := converter.Request{
		URL:        args[0],
		Output:     output,
		Timestamps: timestampMode(timestamps, perSegment),
		Kebab:      kebab,
		Force:      force,
	}
	if cmd.Flags().Changed("gap") {
		if gap < 0 {
			return apperrors.Wrapf(apperrors.ErrInvalidConfig, "--gap must be at least 0, got %g", gap)
		}
		req.GapSeconds = &gap
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		req.Prompt = newCollisionPrompter(os.Stdin, cmd.ErrOrStderr())
	}

	logger := shared.NewLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv, err := app.InitializeConverter(settings, logger, converter.ProgressConfig{
		Enabled: converter.ShouldShowProgress(noProgress),
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer conv.Close()

	fmt.Fprintf(cmd.ErrOrStderr(), "Fetching %s\n", req.URL)
	result, err := conv.Do(ctx, req)
	return report(ctx, cmd, logger, result, err)
}

func report(ctx context.Context, cmd *cobra.Command, logger *zap.Logger, result *converter.Result, err error) error {
	if err != nil {
		if !errors.Is(err, apperrors.ErrCancelled) {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		if ctx.Err() != nil {
			return &exitError{code: exitInterrupted}
		}
		return nil
	}

	logger.Debug("transcription finished", zap.String("title", result.Title), zap.Float64("duration", result.Duration))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved to: %s (%d paragraphs)\n", result.OutputPath, result.Paragraphs)
	return nil
}

func timestampMode(timestamps, perSegment bool) transcript.TimestampMode {
	switch {
	case perSegment:
		return transcript.SegmentTimestamps
	case timestamps:
		return transcript.GroupTimestamps
	default:
		return transcript.NoTimestamps
	}
}
