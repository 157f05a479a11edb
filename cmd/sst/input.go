package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sstlang/sst/ast"
	"github.com/sstlang/sst/eval"
	"github.com/sstlang/sst/parser"
)

// ErrReadInput indicates the source file named on the command line could
// not be read.
var ErrReadInput = errors.New("reading input")

// readInput reads the named source: "-" reads stdin (with no filename, so
// \include/\includeraw fail with UnknownBase per spec.md §6.3), anything
// else reads that file and records its name in every resulting Pos.
func readInput(name string) (filename, src string, err error) {
	if name == "-" {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return "", "", fmt.Errorf("%w: stdin: %w", ErrReadInput, readErr)
		}

		return "", string(data), nil
	}

	data, readErr := os.ReadFile(name) //nolint:gosec // Input path is a CLI argument.
	if readErr != nil {
		return "", "", fmt.Errorf("%w: %s: %w", ErrReadInput, name, readErr)
	}

	return name, string(data), nil
}

// parseFile reads and parses the named source into a raw [ast.Doc],
// returning the filename recorded in its positions (empty for stdin).
func parseFile(name string) (filename string, doc ast.Doc, err error) {
	filename, src, err := readInput(name)
	if err != nil {
		return "", ast.Doc{}, err
	}

	doc, err = parser.ParseString(filename, src)

	return filename, doc, err
}

// parseAndEval reads, parses, and expands the named source into an
// expanded [ast.Doc], returning the filename recorded in its positions.
func parseAndEval(name string) (filename string, doc ast.Doc, err error) {
	filename, doc, err = parseFile(name)
	if err != nil {
		return "", ast.Doc{}, err
	}

	doc, err = eval.Eval(doc)

	return filename, doc, err
}
