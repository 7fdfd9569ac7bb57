// Package selector defines the part-kind ranks and combinator tokens used
// by the builder.
package selector

// Kind identifies a selector part kind. Its numeric value is the ordering
// rank: parts must be appended to a Selector in non-decreasing Kind order.
//
//   - KindElement(0) → KindID(1) → KindClass(2) → KindAttr(3) →
//     KindPseudoClass(4) → KindPseudoElement(5).
//   - KindElement, KindID and KindPseudoElement are singletons: at most one
//     occurrence per selector.
type Kind uint8

const (
	// KindElement is a type selector part, e.g. "div". Singleton.
	KindElement Kind = iota
	// KindID is an id part, rendered "#v". Singleton.
	KindID
	// KindClass is a class part, rendered ".v". May repeat.
	KindClass
	// KindAttr is an attribute part, rendered "[v]". May repeat.
	KindAttr
	// KindPseudoClass is a pseudo-class part, rendered ":v". May repeat.
	KindPseudoClass
	// KindPseudoElement is a pseudo-element part, rendered "::v". Singleton.
	KindPseudoElement

	// numKinds bounds the per-kind bookkeeping arrays.
	numKinds
)

// singleton reports whether k may occur at most once per selector.
func (k Kind) singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// String returns the human-readable kind name used in error context.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttr:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// Combinator is the token expressing a structural relationship between two
// selectors. Combine pads it with single spaces on both sides; the value
// itself is used verbatim, so any token is accepted — the constants below
// cover the standard CSS set.
type Combinator string

const (
	// Descendant matches any descendant: "div span".
	Descendant Combinator = " "
	// Child matches a direct child: "ul > li".
	Child Combinator = ">"
	// Adjacent matches the immediately following sibling: "h1 + p".
	Adjacent Combinator = "+"
	// Sibling matches any following sibling: "img ~ figcaption".
	Sibling Combinator = "~"
)
