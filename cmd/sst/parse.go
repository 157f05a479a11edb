package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse an SST document and print its raw AST as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, doc, err := parseFile(args[0])
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
