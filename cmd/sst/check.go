package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sstlang/sst/schema/builtin"
	"github.com/sstlang/sst/validate"
)

func newCheckCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check <input>",
		Short: "Validate an SST document against the built-in schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			filename, doc, err := parseAndEval(args[0])
			if err != nil {
				return err
			}

			inst, err := validate.Validate(builtin.Schema(), doc, filename)
			if err != nil {
				return err
			}

			if !asJSON {
				return nil
			}

			out, err := json.MarshalIndent(inst, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadInput, err)
			}

			_, err = fmt.Fprintln(os.Stdout, string(out))

			return err
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print the instance tree as JSON")

	return cmd
}
