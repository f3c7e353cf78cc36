package main

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/presburger/matrix"
	"github.com/katalvlaran/presburger/polyhedron"
)

// inputDoc is the YAML request.
type inputDoc struct {
	Matrix     [][]int64      `yaml:"matrix"`
	Polyhedron *polyhedronDoc `yaml:"polyhedron,omitempty"`
	Points     [][]int64      `yaml:"points,omitempty"`
}

// outputDoc is the YAML response. Points are the inputs mapped through T·y.
type outputDoc struct {
	Rank         int            `yaml:"rank"`
	Transform    [][]int64      `yaml:"transform"`
	Reduced      [][]int64      `yaml:"reduced"`
	Inverse      [][]int64      `yaml:"inverse,omitempty"`
	InverseError string         `yaml:"inverse_error,omitempty"` // set instead of Inverse when T⁻¹ fails
	Polyhedron   *polyhedronDoc `yaml:"polyhedron,omitempty"`
	Points       [][]int64      `yaml:"points,omitempty"`
}

// polyhedronDoc lists rows as coefficients followed by the constant term.
type polyhedronDoc struct {
	Vars         int       `yaml:"vars"`
	Equalities   [][]int64 `yaml:"equalities,omitempty"`
	Inequalities [][]int64 `yaml:"inequalities,omitempty"`
}

func (d *polyhedronDoc) build() (*polyhedron.Polyhedron, error) {
	p, err := polyhedron.New(d.Vars)
	if err != nil {
		return nil, errors.Wrapf(err, "polyhedron with %d vars", d.Vars)
	}
	for i, row := range d.Equalities {
		if err = p.AddEquality(row); err != nil {
			return nil, errors.Wrapf(err, "equality %d", i)
		}
	}
	for i, row := range d.Inequalities {
		if err = p.AddInequality(row); err != nil {
			return nil, errors.Wrapf(err, "inequality %d", i)
		}
	}

	return p, nil
}

func polyhedronDocOf(p *polyhedron.Polyhedron) *polyhedronDoc {
	return &polyhedronDoc{
		Vars:         p.NumVars(),
		Equalities:   rowsOrNil(p.Equalities()),
		Inequalities: rowsOrNil(p.Inequalities()),
	}
}

func rowsOrNil(m *matrix.Dense) [][]int64 {
	if m.Rows() == 0 {
		return nil
	}

	return m.ToRows()
}
