package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sstlang/sst/wireschema"
)

// ErrUnknownWireSchema indicates `sst schema-json` was given a name other
// than "doc" or "instance".
var ErrUnknownWireSchema = errors.New("unknown wire schema")

func newSchemaJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema-json {doc|instance}",
		Short:     "Print the JSON Schema for sst's doc or instance wire format",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"doc", "instance"},
		RunE: func(_ *cobra.Command, args []string) error {
			var schema any

			switch args[0] {
			case "doc":
				schema = wireschema.DocSchema()
			case "instance":
				schema = wireschema.InstanceSchema()
			default:
				return fmt.Errorf("%w: %q", ErrUnknownWireSchema, args[0])
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(os.Stdout, string(out))

			return err
		},
	}
}
