// Package lox implements a tree-walking interpreter for a small
// dynamically-typed scripting language with C-like syntax:
//   - Variables via `var`, functions via `fun`, classes with methods and an
//     `init` constructor, and instance fields created on first assignment.
//   - Numbers (IEEE 754 doubles), strings, booleans, and nil; functions,
//     classes, instances, and bound methods are first-class values.
//   - Arithmetic, comparison, equality, ternary, and short-circuiting
//     `and`/`or` that yield operand values rather than coerced booleans.
//   - Blocks, if/else, while, C-style for (desugared to while), break, and
//     return; `print` writes to the configured output.
//
// Comments run from `//` to end of line. Errors are reported in three
// disjoint kinds: LexError for malformed tokens, ParseError for grammar
// violations, and RuntimeError, which carries a call stack, for failures
// during evaluation. A program with lex or parse errors is never run.
package lox
