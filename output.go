package figmacodegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Output file names written by [WriteFiles].
const (
	StylesheetFile = "styles.css"
	MarkupFile     = "markup.html"
	ComponentFile  = "component.jsx"
	IndexFile      = "classes.json"
	ReportFile     = "FIGMA_CODEGEN.md"
)

// OutputFile is one generated file.
type OutputFile struct {
	Name string
	Data []byte
}

// Files returns the generated files in a stable order.
func (r *Result) Files() ([]OutputFile, error) {
	index, err := r.Index.ToJSON()
	if err != nil {
		return nil, err
	}

	return []OutputFile{
		{Name: StylesheetFile, Data: []byte(r.CSS)},
		{Name: MarkupFile, Data: []byte(r.HTML)},
		{Name: ComponentFile, Data: []byte(r.JSX)},
		{Name: IndexFile, Data: index},
		{Name: ReportFile, Data: []byte(r.Markdown)},
	}, nil
}

// WriteFiles writes the generated files into dir, creating it when missing,
// and returns the written paths.
func WriteFiles(r *Result, dir string) ([]string, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", f.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Drift describes a generated file that no longer matches the one on disk.
type Drift struct {
	File    string
	Missing bool
	// Patch turns the file on disk into the generated one, in unidiff-like
	// patch text.
	Patch string
}

// Check compares r with the files an earlier [WriteFiles] left in dir and
// returns one Drift per changed or missing file. An up-to-date directory
// yields no drifts.
func Check(r *Result, dir string) ([]Drift, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	var drifts []Drift
	for _, f := range files {
		existing, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				drifts = append(drifts, Drift{File: f.Name, Missing: true})
				continue
			}
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}

		before, after := string(existing), string(f.Data)
		if before == after {
			continue
		}
		diffs := dmp.DiffMain(before, after, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		patches := dmp.PatchMake(before, diffs)
		drifts = append(drifts, Drift{File: f.Name, Patch: dmp.PatchToText(patches)})
	}
	return drifts, nil
}
