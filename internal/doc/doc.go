// Package doc defines the printable-document model consumed by the layout
// engine in internal/printer.
//
// # Purpose
//
//   - Provide an immutable algebra of formatting primitives (text, line
//     breaks, indentation, grouping, conditional breaking, fill lists,
//     line suffixes) that frontends build from syntax trees.
//   - Carry enough precomputed structure (display widths, forced-break
//     flags) that layout can run in a single pass without re-scanning.
//
// # Scope
//
// Package doc has no rendering logic and performs no IO. Layout decisions
// (flat versus broken, fill packing, width budgets) live in internal/printer;
// serialization of documents lives in internal/ir.
//
// # Data model
//
// A Doc is an acyclic, side-effect-free value. Constructors are the only way
// to build one, which keeps the following invariants:
//
//   - Text never contains a newline; explicit Line nodes are the only way to
//     end a line.
//   - Every node records whether its subtree forces enclosing groups into
//     broken mode (hard lines, BreakParent). The printer reads this flag
//     instead of re-walking subtrees.
//   - Docs may be shared between trees and between concurrent layout runs;
//     nothing mutates a Doc after construction.
//
// Group identifiers come from an IDAllocator so that IfBreak nodes elsewhere
// in the tree can ask "did that group break" through the printer's side
// table. Identifiers are small sequential integers; zero means "no id".
package doc
