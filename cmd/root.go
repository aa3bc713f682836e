package cmd

import (
	"io"
	"time"

	"concatjson/pkg/logging"
	"concatjson/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "concatjson"

// cli carries the state shared by the commands of one invocation.
type cli struct {
	logger *zap.Logger
	now    func() time.Time
	debug  bool
}

// NewRootCommand builds the root command with its subcommands attached.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &cli{logger: logger, now: time.Now}
	return c.rootCommand()
}

func (c *cli) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " <directory>",
		Short: "Concatenate the text files of a directory tree into one JSON document",
		Long: `concatjson walks a directory, skips anything matched by the patterns in its
.gitignore (and any .git directory), and writes every remaining UTF-8 text file
into <directory>/concatenated_<unix_timestamp>.json as an array of
{"path", "content", "filename"} objects.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !c.debug {
				return nil
			}
			if err := logging.Setup(true, appName, version.Get().Version); err != nil {
				return err
			}
			c.logger = logging.Logger
			return nil
		},
		RunE: c.runCombine,
	}

	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable development logging")
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the root command with args, writing notices and results to out.
func Execute(logger *zap.Logger, args []string, out io.Writer) error {
	rootCmd := NewRootCommand(logger)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	return rootCmd.Execute()
}
