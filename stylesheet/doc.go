// Package stylesheet renders CSS rules and stylesheets as text, with
// deterministic output and no parsing whatsoever.
//
// 🚀 What is stylesheet?
//
//	The generation-side companion to the selector package:
//	  • Decl — a single "property: value" declaration
//	  • Rule — a selector (anything with a String method) plus declarations
//	  • Stylesheet — an ordered list of rules, written via io.WriterTo
//
// ✨ Key guarantees:
//   - deterministic: declarations render sorted by property name,
//     rules render in insertion order, identical input ⇒ identical text
//   - one value per property: Rule.Set upserts instead of appending twice
//   - generation only: nothing here reads CSS, computes specificity,
//     or matches a DOM
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/csskit/selector"
//	  "github.com/katalvlaran/csskit/stylesheet"
//	)
//
//	var sheet stylesheet.Stylesheet
//	sheet.Add(stylesheet.NewRule(selector.ID("main").Class("container")).
//	  Set("margin", "0 auto").
//	  Set("max-width", "60rem"))
//	fmt.Print(sheet.String())
//
// See examples in example_test.go for full rule and multi-rule output.
package stylesheet
