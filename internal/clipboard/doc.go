// Package clipboard is the plain-text clipboard boundary.
//
// System talks to the operating system clipboard through
// github.com/atotto/clipboard. Memory keeps the text in process and is used
// for tests and for terminals without a clipboard utility.
package clipboard
