// Package printer renders printable documents (internal/doc) into text
// within a maximum line width.
//
// The engine is a single forward pass over an explicit work list: no
// recursion on document depth, no backtracking. Every group's flat-or-broken
// decision is made exactly once, using a bounded fits scan that stops at the
// first line boundary, which keeps the total cost linear in the document
// size across a whole layout run.
package printer
