package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrNilSelector indicates a rule was rendered without a selector.
var ErrNilSelector = errors.New("stylesheet: rule has no selector")

// Decl is a single CSS declaration. Property and value are emitted verbatim;
// no syntax validation is performed.
type Decl struct {
	Property string
	Value    string
}

// Raw adapts a literal selector string to the fmt.Stringer a Rule expects,
// for rules whose selector is not built with the selector package.
type Raw string

// String returns the literal selector text.
func (r Raw) String() string { return string(r) }

// Rule is one CSS rule: a selector plus its declarations. Selector is any
// fmt.Stringer — typically a *selector.Selector or a Raw literal.
type Rule struct {
	Selector fmt.Stringer
	Decls    []Decl
}

// NewRule starts a rule for the given selector. Declarations are attached
// with Set.
func NewRule(sel fmt.Stringer) *Rule {
	return &Rule{Selector: sel}
}

// Set records a declaration, replacing any earlier value for the same
// property. It returns the rule for chaining.
func (r *Rule) Set(property, value string) *Rule {
	for i := range r.Decls {
		if r.Decls[i].Property == property {
			r.Decls[i].Value = value

			return r
		}
	}
	r.Decls = append(r.Decls, Decl{Property: property, Value: value})

	return r
}

// writeTo writes the rule as "<sel> {\n  prop: value;\n}\n" with the
// declarations sorted by property name for deterministic output.
func (r *Rule) writeTo(w io.Writer) (int, error) {
	if r.Selector == nil {
		return 0, ErrNilSelector
	}

	var total int
	n, err := fmt.Fprintf(w, "%s {\n", r.Selector.String())
	total += n
	if err != nil {
		return total, err
	}

	decls := make([]Decl, len(r.Decls))
	copy(decls, r.Decls)
	sort.Slice(decls, func(i, j int) bool { return decls[i].Property < decls[j].Property })

	for _, d := range decls {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n

	return total, err
}

// Stylesheet is an ordered list of rules. The zero value is an empty,
// usable stylesheet.
type Stylesheet struct {
	Rules []*Rule
}

// Add appends rules in render order and returns the stylesheet for chaining.
func (s *Stylesheet) Add(rules ...*Rule) *Stylesheet {
	s.Rules = append(s.Rules, rules...)

	return s
}

// WriteTo writes all rules in insertion order, separated by blank lines,
// implementing io.WriterTo. A rule without a selector aborts the write with
// ErrNilSelector; bytes already written stay written.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		n, err := rule.writeTo(w)
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Blank line between rules (none after the last).
		if i < len(s.Rules)-1 {
			m, err := fmt.Fprint(w, "\n")
			total += int64(m)
			if err != nil {
				return total, err
			}
		}
	}

	return total, nil
}

// String returns the CSS text of the stylesheet. Rules without a selector
// are rendered up to the offending rule, matching WriteTo.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck

	return sb.String()
}
