// Package selector defines shared constants used by the selector builder,
// ensuring consistent prefixes and error context across all part kinds.
package selector

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the method name for context.
//-----------------------------------------------------------------------------

const (
	// MethodElement is the canonical name of the Element part method.
	MethodElement = "Element"
	// MethodID is the canonical name of the ID part method.
	MethodID = "ID"
	// MethodClass is the canonical name of the Class part method.
	MethodClass = "Class"
	// MethodAttr is the canonical name of the Attr part method.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name of the PseudoClass part method.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name of the PseudoElement part method.
	MethodPseudoElement = "PseudoElement"
	// MethodCombine is the canonical name of the Combine operation.
	MethodCombine = "Combine"
)

//-----------------------------------------------------------------------------
// Fragment prefix/suffix tokens
//   the only characters the builder ever adds around a part value.
//-----------------------------------------------------------------------------

const (
	// prefixID marks an id part: "#main".
	prefixID = "#"
	// prefixClass marks a class part: ".container".
	prefixClass = "."
	// attrOpen and attrClose bracket an attribute part: `[href$=".png"]`.
	attrOpen  = "["
	attrClose = "]"
	// prefixPseudoClass marks a pseudo-class part: ":hover".
	prefixPseudoClass = ":"
	// prefixPseudoElement marks a pseudo-element part: "::before".
	prefixPseudoElement = "::"
)

// combinatorPad is the single space surrounding a combinator token when two
// selectors are joined: "a" + " + " + "b".
const combinatorPad = " "
