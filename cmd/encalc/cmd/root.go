package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/encalc/pkg/config/env"
)

func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "encalc",
		Short: "Evaluate letter-encoded arithmetic expressions",
		Long: `encalc evaluates arithmetic written with digits and the letters a-f:

  a  add          d  divide (truncates toward zero)
  b  subtract     e  open group
  c  multiply     f  close group

Operators have no precedence and are applied left to right, so
3a2c4 is (3 + 2) * 4 = 20. Groups override the order: 3ae2c4f = 11.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := env.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			slog.SetLogLoggerLevel(lvl)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newEvalCmd(),
		newRPNCmd(),
		newTokensCmd(),
		newBenchCmd(),
		newSchemaCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
