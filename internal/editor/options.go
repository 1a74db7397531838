package editor

import (
	"runtime"
	"strings"
)

// Default option values.
const (
	DefaultTabWidth    = 4
	DefaultIndentChars = "    "
	DefaultPageLines   = 20
	DefaultMaxUndo     = 1000
)

// Options configures editing behaviour.
type Options struct {
	// TabWidth is the display width of a tab character.
	TabWidth int

	// IndentChars is one indentation unit, such as four spaces or "\t".
	IndentChars string

	// IntelligentBackspace enables outdenting, trailing-space and
	// bracket-pair deletion on Backspace.
	IntelligentBackspace bool

	// AddColons inserts a missing colon before Enter on block statements of
	// indentation-sensitive languages.
	AddColons bool

	// StripTrailingSpacesOnModify strips the indentation left behind on the
	// previous line when Enter reflows indentation.
	StripTrailingSpacesOnModify bool

	// TabMode makes Tab and Backtab always indent and outdent.
	TabMode bool

	// HomeEndDocument makes Home and End jump to the document bounds.
	HomeEndDocument bool

	// PageLines is the number of lines PageUp and PageDown move.
	PageLines int
}

// DefaultOptions returns the default options for the current platform.
func DefaultOptions() Options {
	return Options{
		TabWidth:             DefaultTabWidth,
		IndentChars:          DefaultIndentChars,
		IntelligentBackspace: true,
		AddColons:            true,
		HomeEndDocument:      runtime.GOOS == "darwin",
		PageLines:            DefaultPageLines,
	}
}

// normalize fills in zero values.
func (o Options) normalize() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = DefaultTabWidth
	}
	if o.IndentChars == "" || strings.Trim(o.IndentChars, " \t") != "" {
		o.IndentChars = DefaultIndentChars
	}
	if o.PageLines <= 0 {
		o.PageLines = DefaultPageLines
	}
	return o
}
