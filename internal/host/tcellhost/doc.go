// Package tcellhost delivers terminal key-press events to a dispatch.Engine
// over a tcell screen. The dispatcher installs no listeners of its own: the
// host owns the terminal's event loop, hands each key to Engine.Process
// first, and only forwards it to the document's ordinary listener bus if
// the engine left it untouched.
package tcellhost
