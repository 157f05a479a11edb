package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <input>",
		Short: "Parse and expand an SST document and print its AST as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, doc, err := parseAndEval(args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadInput, err)
			}

			_, err = fmt.Fprintln(os.Stdout, string(out))

			return err
		},
	}
}
