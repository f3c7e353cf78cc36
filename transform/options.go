// SPDX-License-Identifier: MIT

// Package transform: functional configuration for the column-echelon factory.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package transform

import (
	"fmt"
	"strings"
)

// PivotPolicy selects the pivot column among the candidates at a pivot row.
// Every policy is deterministic; they differ only in which valid T is returned.
type PivotPolicy int

const (
	// PivotLeftmost takes the leftmost unfixed column with a non-zero entry.
	PivotLeftmost PivotPolicy = iota

	// PivotSmallestMagnitude takes the unfixed column whose entry has the
	// smallest absolute value; ties go to the leftmost column. Fewer Euclidean
	// rounds usually mean smaller intermediate entries.
	PivotSmallestMagnitude
)

// DefaultPivotPolicy is the policy used when no option is given.
const DefaultPivotPolicy = PivotLeftmost

const panicPivotPolicyInvalid = "transform: WithPivotPolicy: unknown pivot policy"

var pivotPolicyNames = map[PivotPolicy]string{
	PivotLeftmost:          "leftmost",
	PivotSmallestMagnitude: "smallest",
}

// String returns the policy name accepted by ParsePivotPolicy.
func (p PivotPolicy) String() string {
	if s, ok := pivotPolicyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("PivotPolicy(%d)", int(p))
}

func (p PivotPolicy) valid() bool {
	_, ok := pivotPolicyNames[p]
	return ok
}

// ParsePivotPolicy maps "leftmost" or "smallest" (case-insensitive) to a policy.
func ParsePivotPolicy(s string) (PivotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leftmost":
		return PivotLeftmost, nil
	case "smallest":
		return PivotSmallestMagnitude, nil
	default:
		return 0, fmt.Errorf("transform: unknown pivot policy %q", s)
	}
}

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivot PivotPolicy // DefaultPivotPolicy
}

// WithPivotPolicy selects the pivot-column tie-break rule.
// Panics with a stable message when p is not a known policy.
func WithPivotPolicy(p PivotPolicy) Option {
	if !p.valid() {
		panic(panicPivotPolicyInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// PivotPolicy returns the resolved pivot policy.
func (o Options) PivotPolicy() PivotPolicy { return o.pivot }

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(opts ...Option) Options {
	o := Options{pivot: DefaultPivotPolicy}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
