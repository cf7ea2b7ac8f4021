package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

func newRPNCmd() *cobra.Command {
	var encoded bool

	cmd := &cobra.Command{
		Use:     "rpn <expression>",
		Short:   "Print the postfix form of an expression",
		Example: "  encalc rpn 3ae4c66fb32\n  encalc rpn --encoded 3a2c4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postfix, err := rpn.Convert(args[0])
			if err != nil {
				return err
			}

			if encoded {
				fmt.Fprintln(cmd.OutOrStdout(), rpn.FormatEncoded(postfix))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), rpn.FormatPostfix(postfix))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&encoded, "encoded", false, "print operators as letters")
	return cmd
}
