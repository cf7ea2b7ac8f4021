package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/encalc/internal/token"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>",
		Short: "List the tokens of an expression with their positions",
		Long: `List the tokens of an expression. Tokens before an invalid
character are still printed, followed by the error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer tw.Flush()

			fmt.Fprintln(tw, "POS\tTYPE\tVALUE\tOPERATOR")

			tz := token.NewEncodedTokenizer()
			tz.Reset(args[0])
			for {
				tok, err := tz.Next()
				if err != nil {
					tw.Flush()
					return err
				}
				if tok.Type == token.EOF {
					return nil
				}

				op := "-"
				if tok.IsOperator() {
					op = tok.Op.String()
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", tok.Pos, tok.Type, tok.Encoded(), op)
			}
		},
	}
}
