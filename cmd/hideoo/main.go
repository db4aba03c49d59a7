package main

import (
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/config"
	"github.com/HiDeoo/hideoo.dev/internal/utils/colors"
	"github.com/HiDeoo/hideoo.dev/internal/utils/errutils"
	"github.com/HiDeoo/hideoo.dev/internal/utils/stringutils"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug      bool
	ConfigDirs []string
}

var rootCmd = &cobra.Command{
	Use:   "hideoo",
	Short: "build the content of hideoo.dev",

	// Don't automatically print errors or usage information (we handle that ourselves).
	// Cobra still prints usage if you return cmd.Usage() from RunE.
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	// Run setup before invoking any child commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		colors.SetupBackgroundColorTypeFromEnv()
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("hideoo_version", config.Version).Debug("enabled debug logging")
		}

		// Note: this only returns an error if config exists and it can't be
		// read/parsed. It doesn't return an error if no config file exists.
		didLoadConfig, err := config.Load(rootFlags.ConfigDirs)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	rootCmd.PersistentFlags().StringSliceVar(
		&rootFlags.ConfigDirs, "config-dir", nil,
		"additional directory to look for a config file in",
	)
	rootCmd.AddCommand(
		buildCmd,
		contributionsCmd,
		languagesCmd,
		notesCmd,
		reposCmd,
		versionCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := errutils.As[errExitSilently](err); ok {
			os.Exit(exitErr.ExitCode)
		}

		// In debug mode, show more detailed information about the error
		// (including the stack trace).
		if rootFlags.Debug {
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, stringutils.Indent(stackTrace, "\t"))
		} else {
			_, _ = fmt.Fprint(os.Stderr, renderError(err, isatty.IsTerminal(os.Stderr.Fd())))
		}

		os.Exit(1)
	}
}

// errExitSilently exits with the given code without printing anything.
type errExitSilently struct {
	ExitCode int
}

func (e errExitSilently) Error() string {
	return "<exit silently>"
}
