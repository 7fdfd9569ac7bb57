// Package csskit is your in-memory toolbox for composing CSS text —
// from single selectors to whole stylesheets — without ever parsing a
// byte of CSS.
//
// 🚀 What is csskit?
//
//	A small, zero-dependency library that brings together:
//		• Selector builder: fluent element/#id/.class/[attr]/:pseudo chains
//		  with ordering and uniqueness rules enforced as you build
//		• Combinators: join selectors with ' ', '>', '+', '~'
//		• Stylesheet rendering: deterministic rule/declaration output
//		• Typed decode helpers: rebuild concrete values from generic JSON
//
// ✨ Why choose csskit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, never panics at runtime
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – identical inputs always render identical CSS text
//
// Everything is organized under three subpackages:
//
//	selector/   — the fluent selector builder and combinators
//	stylesheet/ — Decl, Rule and Stylesheet rendering (generation only)
//	shape/      — Rectangle value and JSON encode/typed-decode helpers
//
// Quick ASCII example:
//
//	    div#main.draggable + span:hover
//
//	reads as: a div with id "main" and class "draggable", immediately
//	followed by a span in its hover state.
//
// Dive into each package's doc.go and example_test.go for full
// walkthroughs, rule tables, and error-handling guidance.
//
//	go get github.com/katalvlaran/csskit
package csskit
