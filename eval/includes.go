package eval

import (
	"os"
	"path/filepath"

	"github.com/sstlang/sst/ast"
)

// readIncludeFile resolves and reads the file named by an \include or
// \includeraw element's single positional argument, relative to the
// directory of the file the element itself appeared in.
func readIncludeFile(it ast.Item) (path, content string, err error) {
	if len(it.PosArgs) != 1 {
		return "", "", &Error{Kind: BadInclude, Pos: it.ElementPos}
	}

	filename, ok := exactText(it.PosArgs[0])
	if !ok {
		return "", "", &Error{Kind: BadInclude, Pos: it.ElementPos}
	}

	if !it.ElementPos.HasFilename() {
		return "", "", &Error{Kind: UnknownBase, Pos: it.ElementPos}
	}

	path = filepath.Join(filepath.Dir(it.ElementPos.FilenameString()), filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", &Error{Kind: IOError, Pos: it.ElementPos, Path: path, Err: err}
	}

	return path, string(data), nil
}
