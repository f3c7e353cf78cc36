// SPDX-License-Identifier: MIT

// Package polyhedron - constraint rows.
//
// Purpose:
//   - Define Kind (equality or inequality) and Constraint (coefficients plus
//     the trailing constant).
//   - Render rows as "2*x0 - x1 + 3 >= 0" for diagnostics.

package polyhedron

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells how a constraint row compares against zero.
type Kind int

const (
	// Equality rows read coeffs·x + c = 0.
	Equality Kind = iota
	// Inequality rows read coeffs·x + c >= 0.
	Inequality
)

// String returns "==" or ">=".
func (k Kind) String() string {
	switch k {
	case Equality:
		return "=="
	case Inequality:
		return ">="
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether k is Equality or Inequality.
func (k Kind) Valid() bool { return k == Equality || k == Inequality }

// Constraint is one row of a constraint system. Coeffs holds the variable
// coefficients followed by the constant term.
type Constraint struct {
	Kind   Kind
	Coeffs []int64
}

// NumVars returns the number of variable coefficients (len(Coeffs)-1).
// The zero Constraint has no coefficients and reports 0.
func (c Constraint) NumVars() int { return max(len(c.Coeffs)-1, 0) }

// Constant returns the trailing constant term, or 0 when Coeffs is empty.
func (c Constraint) Constant() int64 {
	if len(c.Coeffs) == 0 {
		return 0
	}

	return c.Coeffs[len(c.Coeffs)-1]
}

// Vars returns a copy of the variable coefficients without the constant.
func (c Constraint) Vars() []int64 {
	out := make([]int64, c.NumVars())
	copy(out, c.Coeffs)

	return out
}

// clone returns a deep copy of c.
func (c Constraint) clone() Constraint {
	out := Constraint{Kind: c.Kind, Coeffs: make([]int64, len(c.Coeffs))}
	copy(out.Coeffs, c.Coeffs)

	return out
}

// String renders the row as "2*x0 - x1 + 3 >= 0".
func (c Constraint) String() string {
	var b strings.Builder
	first := true
	for i, a := range c.Coeffs[:c.NumVars()] {
		if a == 0 {
			continue
		}
		writeTerm(&b, a, "x"+strconv.Itoa(i), first)
		first = false
	}
	if k := c.Constant(); k != 0 || first {
		writeTerm(&b, k, "", first)
	}
	fmt.Fprintf(&b, " %s 0", c.Kind)

	return b.String()
}

// writeTerm appends one signed term; unit coefficients on variables are elided.
func writeTerm(b *strings.Builder, a int64, name string, first bool) {
	neg := a < 0
	mag := strconv.FormatInt(a, 10)
	if neg {
		mag = mag[1:]
	}
	switch {
	case first && neg:
		b.WriteString("-")
	case !first && neg:
		b.WriteString(" - ")
	case !first:
		b.WriteString(" + ")
	}
	if name == "" {
		b.WriteString(mag)
		return
	}
	if mag != "1" {
		b.WriteString(mag)
		b.WriteString("*")
	}
	b.WriteString(name)
}
