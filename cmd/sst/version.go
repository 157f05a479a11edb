package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sstlang/sst/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(os.Stdout, "sst %s (%s, %s/%s, built %s by %s)\n",
				versionString(), version.Revision, version.GoOS, version.GoArch, version.BuildDate, version.BuildUser)

			return err
		},
	}
}

func versionString() string {
	if version.Version != "" {
		return version.Version
	}

	return "dev"
}
