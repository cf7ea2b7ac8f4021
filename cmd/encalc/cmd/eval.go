package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

func newEvalCmd() *cobra.Command {
	var showPostfix bool

	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each expression and print one result per line.
Without arguments, expressions are read from stdin, one per line.`,
		Example: `  encalc eval 3a2c4 3ae4c66fb32
  printf '1a2\n7d2\n' | encalc eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			if len(exprs) == 0 {
				var err error
				if exprs, err = readLines(cmd); err != nil {
					return err
				}
			}

			failed := 0
			for _, expr := range exprs {
				ev, err := rpn.Run(expr)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expr, err)
					continue
				}
				if showPostfix {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", ev.Result, rpn.FormatPostfix(ev.Postfix))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\n", ev.Result)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showPostfix, "postfix", "p", false, "also print the postfix form")
	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
