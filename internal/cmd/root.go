// Package cmd implements the gostratus command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/3leaps/gostratus/internal/observability"
)

// versionInfo holds build metadata injected at link time.
var versionInfo = struct {
	Version   string
	Commit    string
	BuildDate string
}{
	Version:   "dev",
	Commit:    "HEAD",
	BuildDate: "unknown",
}

// SetVersionInfo records build metadata for the version command.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var (
	flagLogLevel string
	flagDialect  string
)

var rootCmd = &cobra.Command{
	Use:   "gostratus",
	Short: "Object-store wire format translator",
	Long: `gostratus translates between provider wire formats and a
provider-neutral object model: listing payloads, tagging documents, and
multipart completion requests.

Documents are read from files or stdin and results are written to stdout,
so the commands compose with curl, aws-cli debug output, and capture
files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zapcore.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
		}
		observability.SetCLILevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&flagDialect, "dialect", "s3", "Wire dialect (s3|azure)")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if coded, ok := err.(*codedError); ok {
			return coded.code
		}
		return 1
	}
	return 0
}

// codedError carries a process exit code alongside the cause.
type codedError struct {
	code    int
	message string
	err     error
}

func (e *codedError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *codedError) Unwrap() error {
	return e.err
}

// exitError creates an error that causes the CLI to exit with the given code.
func exitError(code int, message string, err error) error {
	return &codedError{code: code, message: message, err: err}
}
