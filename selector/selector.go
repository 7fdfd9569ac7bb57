// SPDX-License-Identifier: MIT
// Package: csskit/selector
//
// selector.go — the Selector handle: builder state, rule checks, fragment
// append methods and rendering.
//
// Design contract (strict):
//   - Validate first, mutate second: a failing call leaves the handle exactly
//     as it was before the call.
//   - Sticky errors: the first violation is recorded and makes the handle
//     inert; subsequent appends are no-ops returning the same handle so a
//     broken chain stays fluent but never grows.
//   - Rendering is pure concatenation of committed fragments; String() never
//     fails, Build() surfaces the recorded violation.

package selector

import "strings"

// Selector accumulates the ordered textual fragments of one CSS complex
// selector (or of a combinator join produced by Combine). The zero value is
// an empty, valid selector; entry points in api.go are the intended way to
// start a chain.
//
// A Selector is mutated only by the caller holding its reference; nothing in
// this package shares handles between chains.
type Selector struct {
	fragments []string       // rendering buffer; insertion order = call order
	seen      [numKinds]bool // singleton kinds already appended
	last      Kind           // rank of the most recent successful append
	started   bool           // last is meaningful only after the first append
	err       error          // first rule violation; the handle is inert once set
}

// append validates kind k against the uniqueness and ordering rules, then
// commits fragment and advances the rank cursor. On violation it records the
// wrapped sentinel and commits nothing.
//
// Rule evaluation order: uniqueness first (singleton kinds only), ordering
// second. Ordering compares k against the rank of the immediately preceding
// successful call; equal ranks pass, lower ranks fail. Because every
// successful append satisfies k >= last, the stored rank is also the maximum
// seen so far.
func (s *Selector) append(k Kind, fragment, method string) *Selector {
	// Inert after the first violation: keep the chain fluent, never grow it.
	if s.err != nil {
		return s
	}

	// Uniqueness: element, id and pseudo-element occur at most once.
	if k.singleton() && s.seen[k] {
		s.err = selectorErrorf(method, ErrDuplicateSingleton, "second %s part", k)

		return s
	}

	// Ordering: rank may repeat but never move backward.
	if s.started && k < s.last {
		s.err = selectorErrorf(method, ErrOutOfOrder, "%s part after %s", k, s.last)

		return s
	}

	// Commit: fragment, singleton mark, rank cursor.
	s.fragments = append(s.fragments, fragment)
	s.seen[k] = true
	s.last, s.started = k, true

	return s
}

// Element appends a type selector part rendered as v (rank 0, singleton).
func (s *Selector) Element(v string) *Selector {
	return s.append(KindElement, v, MethodElement)
}

// ID appends an id part rendered as "#v" (rank 1, singleton).
func (s *Selector) ID(v string) *Selector {
	return s.append(KindID, prefixID+v, MethodID)
}

// Class appends a class part rendered as ".v" (rank 2, repeatable).
func (s *Selector) Class(v string) *Selector {
	return s.append(KindClass, prefixClass+v, MethodClass)
}

// Attr appends an attribute part rendered as "[v]" (rank 3, repeatable).
// The value is not inspected: `href$=".png"` is emitted verbatim.
func (s *Selector) Attr(v string) *Selector {
	return s.append(KindAttr, attrOpen+v+attrClose, MethodAttr)
}

// PseudoClass appends a pseudo-class part rendered as ":v" (rank 4, repeatable).
func (s *Selector) PseudoClass(v string) *Selector {
	return s.append(KindPseudoClass, prefixPseudoClass+v, MethodPseudoClass)
}

// PseudoElement appends a pseudo-element part rendered as "::v" (rank 5, singleton).
func (s *Selector) PseudoElement(v string) *Selector {
	return s.append(KindPseudoElement, prefixPseudoElement+v, MethodPseudoElement)
}

// combine appends three fragments to s: the rendering of a, the combinator
// token padded with single spaces, and the rendering of b. Operand errors
// propagate into s (a first, then b), as does a nil operand. The rank cursor
// is left untouched: appending parts after a combine is not part of the
// supported usage, though it is not structurally prevented.
func (s *Selector) combine(a *Selector, c Combinator, b *Selector) *Selector {
	if s.err != nil {
		return s
	}

	if a == nil || b == nil {
		s.err = selectorErrorf(MethodCombine, ErrNilOperand, "")

		return s
	}

	// A broken operand poisons the combination; its violation wins.
	if a.err != nil {
		s.err = a.err

		return s
	}
	if b.err != nil {
		s.err = b.err

		return s
	}

	s.fragments = append(s.fragments,
		a.String(),
		combinatorPad+string(c)+combinatorPad,
		b.String(),
	)

	return s
}

// String returns the concatenation (no separator) of all committed fragments
// in append order. Fragments committed before a violation are still
// rendered; an empty selector renders "". Implements fmt.Stringer.
func (s *Selector) String() string {
	return strings.Join(s.fragments, "")
}

// Build returns the rendered selector text, or the first rule violation
// recorded on this handle. On error the text is empty: a broken handle is
// meant to be discarded, not partially consumed.
func (s *Selector) Build() (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.String(), nil
}

// Err returns the first rule violation recorded on this handle, or nil when
// the whole chain was valid. Branch with errors.Is against
// ErrDuplicateSingleton / ErrOutOfOrder / ErrNilOperand.
func (s *Selector) Err() error {
	return s.err
}
