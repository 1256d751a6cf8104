// Package stroke canonicalizes host key events and human-authored key
// specifications into a single comparable form: a Stroke. Two key presses
// that a user would consider "the same shortcut key" always canonicalize to
// the same Stroke string, regardless of whether they arrived as a live
// document.Event from a terminal host or were typed by a person into a
// binding file as "Ctrl+S" or "<C-s>".
package stroke
