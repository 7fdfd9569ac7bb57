// Package shape holds small geometric values and JSON helpers for
// reconstructing them from generic parsed data.
//
// Two concerns live here:
//
//   - Rectangle — a plain width × height value with an Area accessor.
//   - JSON round-trip — ToJSON encodes any value; RectangleFromJSON decodes
//     a generic key-value document and copies the recognized fields into
//     the explicit Rectangle type, failing on missing or mistyped required
//     fields instead of silently defaulting.
//
// The typed-decode shape (generic map → explicit struct via a factory) is
// the pattern to copy when adding further value types: one factory per
// target type, sentinel errors for absent and mistyped fields.
package shape
