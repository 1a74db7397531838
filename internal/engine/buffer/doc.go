// Package buffer provides the thread-safe document buffer the multi-cursor
// engine edits.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Character (rune) offsets as the ordered position type
//   - Coordinate conversion between offsets and line/column positions
//   - Line ending normalization on the way in and out of the buffer
//   - Revision tracking so collaborators can cache derived data
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//	buf.Delete(0, 7)             // "Beautiful World!"
//
// Position Types:
//
//   - Offset: character position in the buffer, totally ordered
//   - Point: line and column position (0-indexed, column in characters)
//   - Range: half-open span [Start, End) between two offsets
//
// Line Endings:
//
// Text is always stored with "\n" as the paragraph separator. The buffer's
// LineEnding is the external convention; ExternalText converts stored text
// to it, and all inserted text is normalized back to "\n".
package buffer
