// Package selector provides a fluent builder for CSS complex selectors:
// element, #id, .class, [attribute], :pseudo-class and ::pseudo-element
// parts, plus combinators (' ', '>', '+', '~') for joining two selectors.
//
// The package offers the following key components:
//
//   - Entry points (one per part kind, each starts a fresh chain):
//     – Element(v), ID(v), Class(v), Attr(v), PseudoClass(v), PseudoElement(v).
//   - Combinator composition:
//     – Combine(a, c, b): renders a and b and joins them with " c ".
//   - The Selector handle:
//     – chainable part-append methods mirroring the entry points,
//     – String():        rendered text (fmt.Stringer),
//     – Build():         rendered text or the first rule violation,
//     – Err():           the first rule violation, nil when the chain is valid.
//
// Rules enforced while building (validation happens before any mutation):
//
//   - Ordering: parts must be appended in non-decreasing rank order
//     element(0) → id(1) → class(2) → attribute(3) → pseudo-class(4) →
//     pseudo-element(5). Repeating the rank of the previous call is fine
//     (e.g. several .class parts in a row); moving backward is not.
//   - Uniqueness: element, id and pseudo-element may occur at most once
//     per selector. Class, attribute and pseudo-class parts may repeat.
//
// Guarantees:
//
//   - Never panics at runtime: every violation surfaces as a sentinel
//     error (ErrOutOfOrder, ErrDuplicateSingleton) via errors.Is.
//   - A failing call commits nothing: the handle keeps exactly the parts
//     appended before the violation, and later calls become no-ops.
//   - Part values are passed through verbatim; the builder adds only the
//     kind prefix characters (#, ., [, ], :, ::). No CSS syntax validation
//     of the values themselves is performed.
//   - Deterministic: the rendered string is the concatenation of the
//     appended fragments in call order, nothing more.
//
// See individual function documentation for detailed contracts and
// example_test.go for worked chains, including nested combinators.
package selector
