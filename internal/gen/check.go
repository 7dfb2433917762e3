package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Check verifies that the files on disk match freshly generated content.
// It is the guard behind "tuplegen check": any drift between the committed
// files and what the generator would emit today is reported with a diff.
func Check(files []GeneratedFile, outputDir string) error {
	var stale []string

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)

		existing, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			stale = append(stale, fmt.Sprintf("%s: missing (run tuplegen gen)", file.Filename))
			continue
		}

		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if !bytes.Equal(existing, file.Content) {
			diff := cmp.Diff(string(existing), string(file.Content))
			stale = append(stale, fmt.Sprintf("%s: stale (-on disk +generated):\n%s", file.Filename, diff))
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("generated files are out of date:\n%s", strings.Join(stale, "\n"))
	}

	return nil
}
