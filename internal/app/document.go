package app

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/nanox/internal/config/loader"
	"github.com/dshills/nanox/internal/renderer/highlight"
)

// Document is an open file: its lines and the lexical state carried
// between them.
type Document struct {
	id uuid.UUID

	// Path is the file path (empty for scratch buffers).
	Path string

	// name is the display name (filename or "Untitled").
	name string

	lines    []*highlight.Line
	modified bool
}

// NewDocument creates a document from file content. A trailing newline
// does not start an extra line.
func NewDocument(path string, content []byte) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}
	d := &Document{id: uuid.New(), Path: path, name: name}

	content = bytes.TrimSuffix(content, []byte{'\n'})
	for _, text := range bytes.Split(content, []byte{'\n'}) {
		text = bytes.TrimSuffix(text, []byte{'\r'})
		d.lines = append(d.lines, &highlight.Line{Text: text})
	}
	return d
}

// NewScratchDocument creates an empty, unnamed document.
func NewScratchDocument() *Document {
	return NewDocument("", nil)
}

// OpenDocument reads path through fsys.
func OpenDocument(fsys loader.FileSystem, path string) (*Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	return NewDocument(path, data), nil
}

func (d *Document) Len() int                  { return len(d.lines) }
func (d *Document) At(i int) *highlight.Line { return d.lines[i] }
func (d *Document) ID() uuid.UUID            { return d.id }
func (d *Document) Name() string             { return d.name }
func (d *Document) Filename() string         { return d.Path }
func (d *Document) Modified() bool           { return d.modified }

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) {
	d.modified = modified
}

// InsertLine inserts a line before index i (i == Len appends). The new
// line enters in the state its predecessor leaves in.
func (d *Document) InsertLine(i int, text string) error {
	if i < 0 || i > len(d.lines) {
		return fmt.Errorf("insert line %d: out of range [0,%d]", i, len(d.lines))
	}
	line := &highlight.Line{Text: []byte(text)}
	if i > 0 {
		line.Start = d.lines[i-1].End
	}
	d.lines = append(d.lines, nil)
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = line
	d.modified = true
	return nil
}

// ReplaceLine replaces the text of line i, keeping its entering state.
func (d *Document) ReplaceLine(i int, text string) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("replace line %d: out of range [0,%d)", i, len(d.lines))
	}
	d.lines[i].Text = []byte(text)
	d.modified = true
	return nil
}

// DeleteLine removes line i. The following line takes over the entering
// state of the removed one.
func (d *Document) DeleteLine(i int) error {
	if i < 0 || i >= len(d.lines) || len(d.lines) == 1 {
		return fmt.Errorf("delete line %d: out of range [0,%d)", i, len(d.lines))
	}
	start := d.lines[i].Start
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	if i < len(d.lines) {
		d.lines[i].Start = start
	}
	d.modified = true
	return nil
}

// ResetStates forgets every line's lexical state, as after a change of
// highlight rules.
func (d *Document) ResetStates() {
	for _, l := range d.lines {
		l.Start, l.End = highlight.Normal(), highlight.Normal()
	}
}

// Content returns the document text with a trailing newline.
func (d *Document) Content() []byte {
	var b bytes.Buffer
	for _, l := range d.lines {
		b.Write(l.Text)
		b.WriteByte('\n')
	}
	return b.Bytes()
}
