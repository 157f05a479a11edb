// Command sst parses, expands, validates, and renders SST (Simple
// Structured Text) documents.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sstlang/sst/config"
	sstlog "github.com/sstlang/sst/log"
	"github.com/sstlang/sst/profile"
	"github.com/sstlang/sst/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaultCfg := config.Default()
	if path, pathErr := config.DefaultPath(); pathErr == nil {
		if loaded, loadErr := config.Load(path); loadErr == nil {
			defaultCfg = loaded
		}
	}

	logCfg := sstlog.NewConfig()
	logCfg.Level = defaultCfg.LogLevel
	logCfg.Format = defaultCfg.LogFormat

	profCfg := profile.NewConfig()
	prof := profCfg.NewProfiler()

	rootCmd := &cobra.Command{
		Use:           "sst",
		Short:         "Parse, expand, validate, and render SST documents",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return prof.Stop()
		},
	}

	flags := rootCmd.PersistentFlags()
	logCfg.RegisterFlags(flags)
	profCfg.RegisterFlags(flags)

	for _, regFn := range []func(*cobra.Command) error{logCfg.RegisterCompletions, profCfg.RegisterCompletions} {
		if err := regFn(rootCmd); err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newEvalCmd(),
		newCheckCmd(),
		newReadCmd(defaultCfg),
		newSchemaJSONCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sst: %v\n", err)

		return 1
	}

	return 0
}
