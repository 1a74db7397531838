package editor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/engine/history"
	"github.com/dshills/multicursor/internal/engine/syntax"
)

// Logger is the logging interface used by the editor.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Editor is a document with its cursors, history and editing behaviour.
type Editor struct {
	buf     *buffer.Buffer
	cursors *cursor.CursorSet
	history *history.History
	syntax  *syntax.Analyzer
	opts    Options
	logger  Logger

	overwrite bool

	mu                sync.Mutex
	onPositionChanged []func()
	onWillPaste       []func(text string)
	onTextInserted    []func()
}

// Option configures an Editor.
type Option func(*Editor)

// WithOptions sets the editing options.
func WithOptions(opts Options) Option {
	return func(ed *Editor) {
		ed.opts = opts.normalize()
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(ed *Editor) {
		if l != nil {
			ed.logger = l
		}
	}
}

// WithSyntax sets the language analyzer.
func WithSyntax(a *syntax.Analyzer) Option {
	return func(ed *Editor) {
		ed.syntax = a
	}
}

// New creates an editor over buf with a single caret at offset 0.
func New(buf *buffer.Buffer, opts ...Option) *Editor {
	ed := &Editor{
		buf:     buf,
		cursors: cursor.NewCursorSet(cursor.NewCursor(0)),
		history: history.NewHistory(DefaultMaxUndo),
		opts:    DefaultOptions(),
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(ed)
	}
	if ed.syntax == nil {
		ed.syntax = syntax.NewAnalyzer("text")
	}
	buf.SetTabWidth(ed.opts.TabWidth)
	return ed
}

// Buffer returns the document.
func (ed *Editor) Buffer() *buffer.Buffer { return ed.buf }

// Cursors returns the cursor set.
func (ed *Editor) Cursors() *cursor.CursorSet { return ed.cursors }

// History returns the undo history.
func (ed *Editor) History() *history.History { return ed.history }

// Syntax returns the language analyzer.
func (ed *Editor) Syntax() *syntax.Analyzer { return ed.syntax }

// Options returns the editing options.
func (ed *Editor) Options() Options { return ed.opts }

// SetOptions replaces the editing options.
func (ed *Editor) SetOptions(opts Options) {
	ed.opts = opts.normalize()
	ed.buf.SetTabWidth(ed.opts.TabWidth)
}

// Logger returns the editor's logger.
func (ed *Editor) Logger() Logger { return ed.logger }

// Overwrite reports whether typed text replaces the characters after the
// caret.
func (ed *Editor) Overwrite() bool { return ed.overwrite }

// SetOverwrite sets overwrite mode.
func (ed *Editor) SetOverwrite(on bool) { ed.overwrite = on }

// ToggleOverwrite flips overwrite mode.
func (ed *Editor) ToggleOverwrite() {
	ed.overwrite = !ed.overwrite
	ed.logger.Debug("overwrite mode: %v", ed.overwrite)
}

// BeginEditBlock opens an undo group, or joins the open one.
// Returns the group's transaction ID.
func (ed *Editor) BeginEditBlock(name string) uuid.UUID {
	return ed.history.BeginGroup(name, ed.cursors)
}

// EndEditBlock closes one level of edit block.
func (ed *Editor) EndEditBlock() {
	if ed.history.EndGroup(ed.cursors) {
		if info, ok := ed.history.PeekUndo(); ok {
			ed.logger.Debug("recorded %q tx=%s", info.Description, info.TxID)
		}
	}
}

// Undo reverts the last undo step and restores its cursors.
func (ed *Editor) Undo() bool {
	if err := ed.history.Undo(ed.buf, ed.cursors); err != nil {
		ed.logger.Debug("undo: %v", err)
		return false
	}
	ed.EmitCursorPositionChanged()
	return true
}

// Redo re-applies the last undone step.
func (ed *Editor) Redo() bool {
	if err := ed.history.Redo(ed.buf, ed.cursors); err != nil {
		ed.logger.Debug("redo: %v", err)
		return false
	}
	ed.EmitCursorPositionChanged()
	return true
}

// Replace replaces r with text, recording the edit in the history and
// shifting every cursor in the set. It returns c shifted across the edit
// with its target column cleared: a caret at the end of r ends up after the
// new text.
func (ed *Editor) Replace(c cursor.Cursor, r buffer.Range, text string) cursor.Cursor {
	if r.IsEmpty() && text == "" {
		return c
	}
	cmd := history.NewReplaceCommand(r, text)
	if err := ed.history.Execute(cmd, ed.buf, ed.cursors); err != nil {
		ed.logger.Warn("replace %s: %v", r, err)
		return c
	}
	return cursor.TransformCursor(c, cmd.Operation().Edit()).WithVerticalX(cursor.NoVerticalX)
}

// OnCursorPositionChanged registers a callback fired after cursors move.
func (ed *Editor) OnCursorPositionChanged(fn func()) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.onPositionChanged = append(ed.onPositionChanged, fn)
}

// OnWillPaste registers a callback fired before pasted text is inserted.
func (ed *Editor) OnWillPaste(fn func(text string)) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.onWillPaste = append(ed.onWillPaste, fn)
}

// OnTextInserted registers a callback fired after pasted text is inserted.
func (ed *Editor) OnTextInserted(fn func()) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.onTextInserted = append(ed.onTextInserted, fn)
}

// EmitCursorPositionChanged notifies position listeners.
func (ed *Editor) EmitCursorPositionChanged() {
	ed.mu.Lock()
	fns := append([]func(){}, ed.onPositionChanged...)
	ed.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// EmitWillPaste notifies paste listeners before insertion.
func (ed *Editor) EmitWillPaste(text string) {
	ed.mu.Lock()
	fns := append([]func(string){}, ed.onWillPaste...)
	ed.mu.Unlock()
	for _, fn := range fns {
		fn(text)
	}
}

// EmitTextInserted notifies listeners after pasted text is inserted.
func (ed *Editor) EmitTextInserted() {
	ed.mu.Lock()
	fns := append([]func(){}, ed.onTextInserted...)
	ed.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// InCommentOrString reports whether the character before offset lies in a
// comment or string literal.
func (ed *Editor) InCommentOrString(offset buffer.Offset) bool {
	return ed.syntax.InCommentOrString(ed.buf, offset)
}

// IndentSensitive reports whether the document's language is python-like.
func (ed *Editor) IndentSensitive() bool {
	return ed.syntax.IndentSensitive()
}
