package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/msartiano/finder/internal/dom"
)

// StdinArg is the file argument that reads from standard input.
const StdinArg = "-"

const outputDirPermissions = 0o755

// ReadDocument parses the HTML file at path, or stdin when path is "-".
func ReadDocument(path string, stdin io.Reader) (*goquery.Document, error) {
	if path == StdinArg {
		return dom.Parse(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return dom.Parse(f)
}

// PrepareOutputFile creates the parent directory of path if needed.
func PrepareOutputFile(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, outputDirPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
