package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"addline/internal/editor"
	"addline/internal/logging"
	"addline/internal/report"
)

// Options holds the values bound from the command line.
type Options struct {
	Input    string
	Search   string
	Text     string
	Replace  bool
	LogLevel string
}

// newRootCmd builds the addline command. Every edit goes through fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "addline",
		Short: "Insert a line before a matching line, or replace a pattern, in a text file",
		Long: `addline edits a text file in place.

By default it inserts --text as a new line immediately before the first line
that contains --string. With --replace, --string is a regular expression and
every match in the file is replaced by --text, taken literally.`,
		Example: `  addline -i pubspec.yaml -s "dependencies:" -t "  foo: ^1.0.0"
  addline -i build.gradle -s "minSdkVersion [0-9]+" -t "minSdkVersion 21" -r`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("unexpected argument %q", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fs, opts)
		},
	}

	flags := pflag.NewFlagSet("addline", pflag.ContinueOnError)
	flags.StringVarP(&opts.Input, "input", "i", "", "file to edit")
	flags.StringVarP(&opts.Search, "string", "s", "", "substring to search for (a regular expression with --replace)")
	flags.StringVarP(&opts.Text, "text", "t", "", "line to insert, or replacement text with --replace")
	flags.BoolVarP(&opts.Replace, "replace", "r", false, "replace every match of --string with --text")
	flags.StringVar(&opts.LogLevel, "log-level", logging.DefaultLevel, "diagnostic log level: debug, info, warn or error")
	rootCmd.Flags().AddFlagSet(flags)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	return rootCmd
}

func run(cmd *cobra.Command, fs afero.Fs, opts *Options) error {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return usageError(err)
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	ed := editor.New(fs, logger)
	rep := report.New(cmd.OutOrStdout())

	if opts.Replace {
		if _, err := ed.Replace(opts.Input, opts.Search, opts.Text); err != nil {
			return err
		}
		rep.Replaced(opts.Search, opts.Text)
		return nil
	}

	res, err := ed.InsertBefore(opts.Input, opts.Search, opts.Text)
	if errors.Is(err, editor.ErrPatternNotFound) {
		rep.NotFound(opts.Search)
		return nil
	}
	if err != nil {
		return err
	}
	rep.Inserted(opts.Text, res.Line)
	return nil
}

// Run executes the command with args and returns the process exit code.
// Usage errors print the usage to stdout and return 2, any other failure
// returns 1.
func Run(args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(fs)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, "Error:", exitErr.Message)
		if exitErr.Code == exitUsage {
			fmt.Fprint(stdout, rootCmd.UsageString())
		}
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitFailure
}

// Execute runs the root command against the real file system and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}
