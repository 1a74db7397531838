package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/renderer/backend"
	"github.com/dshills/multicursor/internal/renderer/cursor"
	"github.com/dshills/multicursor/internal/renderer/selection"
)

// Options configures the renderer.
type Options struct {
	// CaretWidth is the width in cells of extra carets outside overwrite mode.
	CaretWidth int

	// ScrollMargin is the number of lines kept above and below the primary
	// caret.
	ScrollMargin int

	// TextStyle is the style of plain text.
	TextStyle tcell.Style

	// SelectionStyle is the style of the primary selection.
	SelectionStyle tcell.Style
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		CaretWidth:     1,
		ScrollMargin:   2,
		TextStyle:      tcell.StyleDefault,
		SelectionStyle: tcell.StyleDefault.Reverse(true),
	}
}

// Renderer paints an editor onto a backend.
type Renderer struct {
	mu sync.Mutex

	opts        Options
	backend     backend.Backend
	ed          *editor.Editor
	decorations *selection.Decorations
	blinker     *cursor.Blinker

	top  uint32
	left int
}

// New creates a renderer.
func New(b backend.Backend, ed *editor.Editor, decorations *selection.Decorations, blinker *cursor.Blinker, opts Options) *Renderer {
	return &Renderer{
		opts:        opts,
		backend:     b,
		ed:          ed,
		decorations: decorations,
		blinker:     blinker,
	}
}

// SetOptions replaces the renderer options.
func (r *Renderer) SetOptions(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts = opts
}

// Scroll returns the first visible line and the horizontal scroll column.
func (r *Renderer) Scroll() (top uint32, left int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.top, r.left
}

// Render paints the editor and flushes the backend.
func (r *Renderer) Render() {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	buf := r.ed.Buffer()
	primary := r.ed.Cursors().Primary()
	r.scrollTo(primary.Position, width, height)

	r.backend.Clear()
	primarySel := primary.Range()
	for y := 0; y < height; y++ {
		line := r.top + uint32(y)
		if line >= buf.LineCount() {
			break
		}
		r.paintLine(line, y, width, primarySel)
	}

	r.paintCarets(width, height)
	r.backend.Show()
}

func (r *Renderer) scrollTo(pos buffer.Offset, width, height int) {
	line := r.ed.Buffer().LineOf(pos)
	margin := uint32(r.opts.ScrollMargin)
	if int(2*margin) >= height {
		margin = 0
	}
	if line < r.top+margin {
		if line < margin {
			r.top = 0
		} else {
			r.top = line - margin
		}
	}
	if bottom := r.top + uint32(height) - 1; line+margin > bottom {
		r.top = line + margin - uint32(height) + 1
	}

	col := r.ed.ScreenColumn(pos)
	if col < r.left {
		r.left = col
	}
	if col >= r.left+width {
		r.left = col - width + 1
	}
}

func (r *Renderer) paintLine(line uint32, y, width int, primarySel buffer.Range) {
	buf := r.ed.Buffer()
	tabWidth := r.ed.Options().TabWidth
	offset := buf.LineStartOffset(line)
	col := 0

	for _, ch := range buf.LineText(line) {
		style := r.styleAt(offset, primarySel)
		w := runewidth.RuneWidth(ch)
		glyph := ch
		if ch == '\t' {
			w = tabWidth - col%tabWidth
			glyph = ' '
		}
		for i := 0; i < w; i++ {
			x := col + i - r.left
			if x >= width {
				return
			}
			if x < 0 {
				continue
			}
			if i == 0 || ch == '\t' {
				r.backend.SetContent(x, y, glyph, style)
			}
		}
		col += w
		offset++
	}
}

func (r *Renderer) styleAt(offset buffer.Offset, primarySel buffer.Range) tcell.Style {
	if primarySel.Contains(offset) {
		return r.opts.SelectionStyle
	}
	if r.decorations != nil {
		if d, ok := r.decorations.At(offset); ok {
			return r.opts.TextStyle.
				Foreground(tcell.GetColor(d.Foreground)).
				Background(tcell.GetColor(d.Background))
		}
	}
	return r.opts.TextStyle
}

func (r *Renderer) paintCarets(width, height int) {
	if r.blinker != nil && !r.blinker.Visible() {
		r.backend.HideCursor()
		return
	}

	overwrite := r.ed.Overwrite()
	if overwrite {
		r.backend.SetCursorStyle(backend.CursorBlock)
	} else {
		r.backend.SetCursorStyle(backend.CursorBar)
	}

	if x, y, ok := r.screenPos(r.ed.Cursors().Primary().Position, width, height); ok {
		r.backend.ShowCursor(x, y)
	} else {
		r.backend.HideCursor()
	}

	if r.decorations == nil {
		return
	}
	caretWidth := cursor.CaretWidth(overwrite, r.opts.CaretWidth)
	buf := r.ed.Buffer()
	for _, pos := range r.decorations.Carets() {
		x, y, ok := r.screenPos(pos, width, height)
		if !ok {
			continue
		}
		ch, has := buf.RuneAt(pos)
		if !has || ch == '\n' || ch == '\t' {
			ch = ' '
		}
		style := r.styleAt(pos, r.ed.Cursors().Primary().Range()).Reverse(true)
		for i := 0; i < caretWidth && x+i < width; i++ {
			if i > 0 {
				ch = ' '
			}
			r.backend.SetContent(x+i, y, ch, style)
		}
	}
}

func (r *Renderer) screenPos(offset buffer.Offset, width, height int) (x, y int, ok bool) {
	line := r.ed.Buffer().LineOf(offset)
	if line < r.top || int(line-r.top) >= height {
		return 0, 0, false
	}
	x = r.ed.ScreenColumn(offset) - r.left
	if x < 0 || x >= width {
		return 0, 0, false
	}
	return x, int(line - r.top), true
}

// OffsetAt maps a screen cell to the nearest document offset.
func (r *Renderer) OffsetAt(x, y int) buffer.Offset {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := r.ed.Buffer()
	line := r.top + uint32(max(y, 0))
	if last := buf.LineCount() - 1; line > last {
		return buf.Len()
	}
	return r.ed.OffsetForColumn(line, x+r.left)
}
