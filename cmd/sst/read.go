package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sstlang/sst/config"
	"github.com/sstlang/sst/render"
	"github.com/sstlang/sst/schema/builtin"
	"github.com/sstlang/sst/validate"
)

func newReadCmd(cfg *config.Config) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "read <input>",
		Short: "Validate and render an SST document, paging it if stdout is a terminal",
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

			text := render.ToText(inst, width)

			return page(text, cfg.Pager)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", cfg.Width, "render width in columns")

	return cmd
}

// page writes text to stdout directly when stdout is not a terminal (§5,
// §6.1), matching main.rs's libc::isatty check with golang.org/x/term.
// When stdout is a terminal, it spawns pagerCmd (the first element is the
// executable, the rest its arguments), pipes text to its stdin, and waits
// for it to exit before returning.
func page(text string, pagerCmd []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || len(pagerCmd) == 0 {
		_, err := fmt.Fprint(os.Stdout, text)

		return err
	}

	pager := exec.Command(pagerCmd[0], pagerCmd[1:]...) //nolint:gosec // Pager command comes from trusted config/defaults.
	pager.Stdout = os.Stdout
	pager.Stderr = os.Stderr

	stdin, err := pager.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening pager stdin: %w", err)
	}

	if err := pager.Start(); err != nil {
		return fmt.Errorf("starting pager: %w", err)
	}

	_, writeErr := fmt.Fprint(stdin, text)
	closeErr := stdin.Close()

	waitErr := pager.Wait()
	if waitErr != nil {
		return fmt.Errorf("pager: %w", waitErr)
	}

	if writeErr != nil {
		return fmt.Errorf("writing to pager: %w", writeErr)
	}

	return closeErr
}
