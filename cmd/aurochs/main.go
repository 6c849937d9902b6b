package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/internal/config"
	"github.com/aurochs-dev/aurochs/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┬ ┬┬─┐┌─┐┌─┐┬ ┬┌─┐
  ╠═╣│ │├┬┘│ ││  ├─┤└─┐
  ╩ ╩└─┘┴└─└─┘└─┘┴ ┴└─┘
`

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !isatty.IsTerminal(os.Stderr.Fd()) {
			errors.DisableColors()
		}
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "aurochs",
		Short: "Build HTML element trees and render them to markup",
		Long: `Aurochs renders HTML element trees described in YAML tree documents.

Commands cover the whole workflow:

  • render a tree document to markup
  • preview pages with live reload
  • publish rendered pages to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), flags.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to "+config.ConfigFileName+" (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd(flags),
		exampleCmd(),
		serveCmd(flags),
		publishCmd(flags),
		initCmd(),
		explainCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setupLogging installs a tint handler as the default slog logger.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}

// loadConfig loads the file named by --config, or the nearest
// aurochs.yaml above the working directory.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.LoadFile(flags.configPath)
	}
	return config.LoadFromWorkingDir()
}

// printBanner prints the Aurochs ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
