package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/multicursor/internal/engine/buffer"
)

// ErrNoPath indicates a save of a document without a file path.
var ErrNoPath = errors.New("document has no path")

// Document is the file being edited.
type Document struct {
	// Path is the file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// Buffer holds the document text.
	Buffer *buffer.Buffer

	saved buffer.RevisionID
}

// OpenDocument reads path into a new document. A missing file opens an
// empty document that is created on save. Text without line breaks takes
// the given line ending.
func OpenDocument(path string, le buffer.LineEnding, tabWidth int) (*Document, error) {
	if path == "" {
		buf := buffer.NewBuffer(buffer.WithLineEnding(le), buffer.WithTabWidth(tabWidth))
		return &Document{Name: "Untitled", Buffer: buf, saved: buf.RevisionID()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, NewOperationError("open", path, err)
	}
	text := string(data)
	if strings.ContainsAny(text, "\r\n") {
		le = buffer.DetectLineEnding(text)
	}

	buf := buffer.NewBufferFromString(text, buffer.WithLineEnding(le), buffer.WithTabWidth(tabWidth))
	return &Document{
		Path:   path,
		Name:   filepath.Base(path),
		Buffer: buf,
		saved:  buf.RevisionID(),
	}, nil
}

// IsScratch reports whether the document has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified reports whether the text changed since it was opened or saved.
func (d *Document) IsModified() bool {
	return d.Buffer.RevisionID() != d.saved
}

// Save writes the text with the document's line ending.
func (d *Document) Save() error {
	if d.IsScratch() {
		return NewOperationError("save", d.Name, ErrNoPath)
	}
	text := d.Buffer.ExternalText(0, d.Buffer.Len())
	if err := os.WriteFile(d.Path, []byte(text), 0o644); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.saved = d.Buffer.RevisionID()
	return nil
}

// Title returns the name with a marker when modified.
func (d *Document) Title() string {
	if d.IsModified() {
		return fmt.Sprintf("%s *", d.Name)
	}
	return d.Name
}
