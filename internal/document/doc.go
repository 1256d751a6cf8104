// Package document models the tree-shaped host document the dispatcher
// walks when scoping a binding, and the key-press event the host forwards
// to the dispatcher.
//
// Neither the tree implementation nor the event implementation here is
// mandated by the dispatcher: internal/dispatch depends only on the Node and
// Event interfaces. TreeNode and KeyPressEvent are the reference
// implementations used by this module's tests, demo, and terminal host.
package document
