// SPDX-License-Identifier: MIT
// Package: csskit/selector
//
// api.go - thin public entry-points for the selector package.
//
// Design contract (strict):
//   - One entry point per part kind; each creates a fresh Selector, applies
//     the initial part and returns the handle for further chaining. There is
//     no shared state between independent chains.
//   - Combine renders both operands eagerly and wraps the joined text in a
//     fresh handle, so combined selectors are themselves combinable.
//   - Safety: never panic; rule violations ride on the handle and surface
//     from Err()/Build() as sentinel errors (errors.go).

package selector

// Element starts a new selector chain with a type selector part, e.g.
// Element("div"). Rank 0, singleton.
func Element(v string) *Selector {
	return new(Selector).Element(v)
}

// ID starts a new selector chain with an id part, e.g. ID("main") → "#main".
// Rank 1, singleton.
func ID(v string) *Selector {
	return new(Selector).ID(v)
}

// Class starts a new selector chain with a class part, e.g.
// Class("container") → ".container". Rank 2, repeatable.
func Class(v string) *Selector {
	return new(Selector).Class(v)
}

// Attr starts a new selector chain with an attribute part, e.g.
// Attr(`href$=".png"`) → `[href$=".png"]`. Rank 3, repeatable.
func Attr(v string) *Selector {
	return new(Selector).Attr(v)
}

// PseudoClass starts a new selector chain with a pseudo-class part, e.g.
// PseudoClass("hover") → ":hover". Rank 4, repeatable.
func PseudoClass(v string) *Selector {
	return new(Selector).PseudoClass(v)
}

// PseudoElement starts a new selector chain with a pseudo-element part, e.g.
// PseudoElement("before") → "::before". Rank 5, singleton.
func PseudoElement(v string) *Selector {
	return new(Selector).PseudoElement(v)
}

// Combine joins two selectors with combinator c, padding the token with
// single spaces: Combine(Element("div"), Adjacent, Element("span")) renders
// "div + span". The result is a fresh handle wrapping the combined text, so
// nested combinations compose left-to-right. Operand errors (or a nil
// operand) propagate to the returned handle.
func Combine(a *Selector, c Combinator, b *Selector) *Selector {
	return new(Selector).combine(a, c, b)
}
