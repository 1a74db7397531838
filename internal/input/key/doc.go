// Package key provides the key event model fed to the multi-cursor
// dispatcher.
//
//   - Key: a closed set of special keys plus KeyRune for characters
//   - Modifier: a bit set of Ctrl, Alt, Shift and Meta
//   - Event: a single key press with modifiers and timestamp
//
// FromTcell converts terminal key events into Events.
package key
