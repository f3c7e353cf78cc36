// SPDX-License-Identifier: MIT

// Package polyhedron - the constraint system.
//
// Purpose:
//   - Hold an ordered list of rows over a fixed variable count.
//   - Validate every row on insertion; hand out copies only.
//   - Evaluate integer points exactly (ContainsPoint).

package polyhedron

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/presburger/matrix"
)

// Polyhedron is an ordered system of equality and inequality constraints over
// a fixed number of integer variables. The zero value is a system over zero
// variables with no constraints.
type Polyhedron struct {
	numVars     int
	constraints []Constraint
}

// New returns an empty (unconstrained) system over numVars variables.
func New(numVars int) (*Polyhedron, error) {
	if numVars < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Polyhedron{numVars: numVars}, nil
}

// FromMatrices builds a system from an equality matrix and an inequality
// matrix, each with numVars+1 columns. Equalities come first, then
// inequalities, both in row order. Either matrix may be nil; when both are
// nil the system has zero variables.
func FromMatrices(eqs, ineqs *matrix.Dense) (*Polyhedron, error) {
	cols := -1
	for _, m := range []*matrix.Dense{eqs, ineqs} {
		if m == nil {
			continue
		}
		if cols >= 0 && m.Cols() != cols {
			return nil, fmt.Errorf("FromMatrices: %d vs %d columns: %w", cols, m.Cols(), ErrDimensionMismatch)
		}
		cols = m.Cols()
	}
	if cols == 0 {
		return nil, fmt.Errorf("FromMatrices: rows need a constant column: %w", ErrDimensionMismatch)
	}
	if cols < 0 {
		cols = 1
	}
	p := &Polyhedron{numVars: cols - 1}
	for _, part := range []struct {
		kind Kind
		m    *matrix.Dense
	}{{Equality, eqs}, {Inequality, ineqs}} {
		if part.m == nil {
			continue
		}
		for i := 0; i < part.m.Rows(); i++ {
			row, err := part.m.Row(i)
			if err != nil {
				return nil, err
			}
			p.constraints = append(p.constraints, Constraint{Kind: part.kind, Coeffs: row})
		}
	}

	return p, nil
}

// NumVars returns the number of variables.
func (p *Polyhedron) NumVars() int { return p.numVars }

// NumConstraints returns the total number of rows.
func (p *Polyhedron) NumConstraints() int { return len(p.constraints) }

// NumEqualities returns the number of equality rows.
func (p *Polyhedron) NumEqualities() int { return p.count(Equality) }

// NumInequalities returns the number of inequality rows.
func (p *Polyhedron) NumInequalities() int { return p.count(Inequality) }

func (p *Polyhedron) count(k Kind) int {
	n := 0
	for _, c := range p.constraints {
		if c.Kind == k {
			n++
		}
	}

	return n
}

// AddEquality appends the row coeffs·x + c = 0. The row is copied.
func (p *Polyhedron) AddEquality(coeffs []int64) error {
	return p.AddConstraint(Constraint{Kind: Equality, Coeffs: coeffs})
}

// AddInequality appends the row coeffs·x + c >= 0. The row is copied.
func (p *Polyhedron) AddInequality(coeffs []int64) error {
	return p.AddConstraint(Constraint{Kind: Inequality, Coeffs: coeffs})
}

// AddConstraint appends a copy of c after validating its kind and length.
func (p *Polyhedron) AddConstraint(c Constraint) error {
	if !c.Kind.Valid() {
		return fmt.Errorf("AddConstraint: %v: %w", c.Kind, ErrUnknownKind)
	}
	if len(c.Coeffs) != p.numVars+1 {
		return fmt.Errorf("AddConstraint: row of length %d over %d vars: %w", len(c.Coeffs), p.numVars, ErrDimensionMismatch)
	}
	p.constraints = append(p.constraints, c.clone())

	return nil
}

// Constraint returns a copy of row i.
func (p *Polyhedron) Constraint(i int) (Constraint, error) {
	if i < 0 || i >= len(p.constraints) {
		return Constraint{}, fmt.Errorf("Constraint(%d): %w", i, ErrOutOfRange)
	}

	return p.constraints[i].clone(), nil
}

// Constraints returns a deep copy of all rows in order.
func (p *Polyhedron) Constraints() []Constraint {
	out := make([]Constraint, len(p.constraints))
	for i, c := range p.constraints {
		out[i] = c.clone()
	}

	return out
}

// Equalities returns the equality rows as a matrix with NumVars()+1 columns.
func (p *Polyhedron) Equalities() *matrix.Dense { return p.rowsOf(Equality) }

// Inequalities returns the inequality rows as a matrix with NumVars()+1 columns.
func (p *Polyhedron) Inequalities() *matrix.Dense { return p.rowsOf(Inequality) }

func (p *Polyhedron) rowsOf(k Kind) *matrix.Dense {
	var rows [][]int64
	for _, c := range p.constraints {
		if c.Kind == k {
			rows = append(rows, c.Coeffs)
		}
	}
	m, err := matrix.NewDense(len(rows), p.numVars+1)
	if err != nil {
		// numVars >= 0 is a construction invariant.
		panic(err)
	}
	for i, row := range rows {
		for j, v := range row {
			_ = m.Set(i, j, v)
		}
	}

	return m
}

// Clone returns a deep copy.
func (p *Polyhedron) Clone() *Polyhedron {
	return &Polyhedron{numVars: p.numVars, constraints: p.Constraints()}
}

// Equal reports whether both systems have the same variable count and the
// same rows in the same order. It compares representations, not solution sets.
func (p *Polyhedron) Equal(o *Polyhedron) bool {
	if o == nil || p.numVars != o.numVars || len(p.constraints) != len(o.constraints) {
		return false
	}
	for i, c := range p.constraints {
		d := o.constraints[i]
		if c.Kind != d.Kind {
			return false
		}
		for k := range c.Coeffs {
			if c.Coeffs[k] != d.Coeffs[k] {
				return false
			}
		}
	}

	return true
}

// ContainsPoint reports whether the integer point x satisfies every row.
// Evaluation is exact; an unrepresentable intermediate value returns
// matrix.ErrOverflow rather than a guess.
func (p *Polyhedron) ContainsPoint(x []int64) (bool, error) {
	if len(x) != p.numVars {
		return false, fmt.Errorf("ContainsPoint: point of length %d over %d vars: %w", len(x), p.numVars, ErrDimensionMismatch)
	}
	for i, c := range p.constraints {
		v, err := matrix.Dot(c.Coeffs[:p.numVars], x)
		if err != nil {
			return false, fmt.Errorf("ContainsPoint: row %d: %w", i, err)
		}
		if v, err = matrix.CheckedAdd(v, c.Constant()); err != nil {
			return false, fmt.Errorf("ContainsPoint: row %d: %w", i, err)
		}
		if (c.Kind == Equality && v != 0) || (c.Kind == Inequality && v < 0) {
			return false, nil
		}
	}

	return true, nil
}

// String renders one constraint per line, prefixed by the variable count.
func (p *Polyhedron) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "vars: %d\n", p.numVars)
	for _, c := range p.constraints {
		b.WriteString(c.String())
		b.WriteString("\n")
	}

	return b.String()
}
