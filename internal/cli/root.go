// Package cli wires the prettierstep command line.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/prettierstep/internal/runner"
)

// BuildInfo holds values set via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// exitError carries a non-zero exit code out of Execute.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// NewRootCommand returns the root command. Flags can also be set through
// PRETTIERSTEP_* environment variables.
func NewRootCommand(info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "prettierstep [flags] [steps...]",
		Short: "Resolve Prettier formatter steps from a pipeline config",
		Long: `prettierstep reads a pipeline config (prettierstep.yml), resolves each
declared Prettier step into a ready-to-run step, and prepares its npm
package manifest under the build directory.

With no step names, every declared step is resolved.`,
		Version:       fmt.Sprintf("%s (%s) %s", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := runner.Run(&runner.Options{
				Steps:      args,
				ConfigPath: v.GetString("config"),
				Check:      v.GetBool("check"),
				Format:     v.GetString("format"),
				LogLevel:   v.GetString("log-level"),
				LogFormat:  v.GetString("log-format"),
				Quiet:      v.GetBool("quiet"),
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			if code != runner.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "path to config file (default: discover prettierstep.yml)")
	flags.Bool("check", false, "resolve steps without writing to the build directory")
	flags.String("format", runner.FormatText, "report format: text or json")
	flags.String("log-level", "", "log level: debug, info, warn or error (default from config)")
	flags.String("log-format", "", "log format: text or json (default from config)")
	flags.BoolP("quiet", "q", false, "only log errors")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("PRETTIERSTEP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(info BuildInfo, args []string) int {
	cmd := NewRootCommand(info)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return runner.ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "prettierstep: %v\n", err)
	return runner.ExitError
}
