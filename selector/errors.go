// SPDX-License-Identifier: MIT
// Package: csskit/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` (see selectorErrorf).
//   • The builder MUST NOT panic at runtime; every violation is an error
//     carried by the handle and reported from Err()/Build().

package selector

import (
	"errors"
	"fmt"
)

// ErrDuplicateSingleton indicates that a singleton part kind (element, id
// or pseudo-element) was appended a second time to the same selector.
// Classification: Validation error (uniqueness).
// Typical origins: Element/ID/PseudoElement called twice on one handle.
// Usage: if errors.Is(err, ErrDuplicateSingleton) { /* discard the handle */ }.
var ErrDuplicateSingleton = errors.New(
	"selector: element, id and pseudo-element may occur at most once inside the selector")

// ErrOutOfOrder indicates that a part was appended whose rank is lower than
// the rank of the previously appended part on the same handle.
// Classification: Validation error (ordering).
// Typical origins: ID after Class, Element after anything, etc.
// Usage: if errors.Is(err, ErrOutOfOrder) { /* rebuild the chain in order */ }.
var ErrOutOfOrder = errors.New(
	"selector: parts must follow element, id, class, attribute, pseudo-class, pseudo-element order")

// ErrNilOperand indicates that Combine received a nil selector operand.
// Usage: if errors.Is(err, ErrNilOperand) { /* construct both operands first */ }.
var ErrNilOperand = errors.New("selector: nil combine operand")

// selectorErrorf wraps sentinel err with the given method context, producing
// "<Method>: <formatted message>: <sentinel>". The sentinel stays reachable
// through errors.Is.
//
// Parameters:
//   - method: canonical method name, e.g. MethodClass.
//   - err:    the sentinel being wrapped.
//   - format: format string for the inner message (may be empty).
//   - args:   values for the format placeholders.
func selectorErrorf(method string, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority (when one call violates both rules):
//    • ErrDuplicateSingleton — uniqueness is checked first,
//    • ErrOutOfOrder         — then ordering.
//    A second Element after a Class therefore reports the duplicate.
//
// 2) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error
//    strings. Provide edge cases: double element, double id, double
//    pseudo-element, every backward rank transition, violation mid-chain.
//
// 3) Compatibility:
//    These names and messages are stable and form part of the public
//    contract. Do not rename or change messages.
