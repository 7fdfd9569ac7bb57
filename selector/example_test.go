package selector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/csskit/selector"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleID
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Style the main editable container of a page: one id followed by two
//	class parts. Ranks never move backward (1 → 2 → 2), so the chain is
//	valid and renders as plain concatenation.
func ExampleID() {
	sel := selector.ID("main").Class("container").Class("editable")
	fmt.Println(sel)
	// Output:
	// #main.container.editable
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleElement
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Match focused links to PNG images. The attribute value is passed
//	through verbatim — the builder only adds the surrounding brackets.
func ExampleElement() {
	css, err := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Build()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(css)
	// Output:
	// a[href$=".png"]:focus
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCombine
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A span immediately following a div. Combine pads the combinator token
//	with a single space on each side.
func ExampleCombine() {
	fmt.Println(selector.Combine(selector.Element("div"), selector.Adjacent, selector.Element("span")))
	// Output:
	// div + span
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCombine_nested
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Combined selectors are themselves combinable. Both combinator tokens
//	appear left-to-right, each surrounded by single spaces; the descendant
//	combinator is itself a space, hence three spaces in a row.
func ExampleCombine_nested() {
	sel := selector.Combine(
		selector.Combine(
			selector.Element("div").ID("main").Class("container").Class("draggable"),
			selector.Adjacent,
			selector.Element("table").ID("data"),
		),
		selector.Sibling,
		selector.Combine(
			selector.Element("tr").PseudoClass("nth-of-type(even)"),
			selector.Descendant,
			selector.Element("td").PseudoClass("nth-of-type(even)"),
		),
	)
	fmt.Println(sel)
	// Output:
	// div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSelector_Err
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Rule violations do not abort the program: they ride on the handle and
//	are branched on with errors.Is. Here an id arrives after a class, which
//	moves the rank backward.
func ExampleSelector_Err() {
	sel := selector.Class("container").ID("main")
	if errors.Is(sel.Err(), selector.ErrOutOfOrder) {
		fmt.Println("out of order: id must precede class")
	}
	// Output:
	// out of order: id must precede class
}
