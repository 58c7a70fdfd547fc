// Package inspect defines the contract between the stage driver and
// caller-supplied inspection logic: one inspector interface per pipeline
// stage, plus the borrowed views those inspectors receive.
//
// # Lifetimes
//
// Every view (TokenStream, SyntaxTree, SemanticUnit, QueryEngine)
// borrows from the live session and is scoped to the stage callback
// that received it. The driver invalidates the view when the callback
// returns; any later use panics with an explicit message rather than
// reading freed-by-contract state. Do not store views, nodes obtained
// through them, or the query handle beyond the callback.
//
// # Traversal
//
// SyntaxTree.Walk performs a pre-order traversal with per-kind dispatch:
// top-level items first (with name, kind, and exportedness), compiler
// directives as attributes, then expressions. Item and expression
// callbacks may prune their subtree by returning false. Embed NopVisitor
// to implement only the methods a tool cares about.
package inspect
