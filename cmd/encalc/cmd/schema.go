package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/encalc/internal/bench/spec"
	"github.com/DjordjeVuckovic/encalc/internal/bench/suite"
	"github.com/DjordjeVuckovic/encalc/pkg/schema"
)

const schemaBaseID = "https://schemas.encalc.dev/bench"

var schemaTargets = map[string]any{
	"suite": suite.TestSuite{},
	"spec":  spec.BenchSpec{},
}

func newSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "schema <suite|spec>",
		Short:     "Print the JSON schema of a bench suite or spec file",
		Example:   "  encalc schema suite -o configs/bench/suite.schema.json",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"suite", "spec"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := schema.NewGenerator(schemaBaseID).GenerateJSON(schemaTargets[args[0]])
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated JSON schema: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the schema to this file")
	return cmd
}
