// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the debug printer.
// This file defines:
//   - PrintOption (functional options over an unexported struct),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherPrintOptions helper that resolves defaults then applies options.
//
// Design goals:
//   - No global state; every call resolves its own options.
//   - Panic only on invalid parameters (programmer error).
package linalg

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision of -1 prints each value in its shortest form (%g).
	DefaultPrecision = -1

	// DefaultSeparator goes between cells of one row.
	DefaultSeparator = ", "

	// DefaultRowOpen and DefaultRowClose wrap each printed row.
	DefaultRowOpen  = "["
	DefaultRowClose = "]"
)

const panicPrecisionInvalid = "linalg: WithPrecision: precision must be >= -1"

// PrintOption mutates printer configuration. Safe to apply repeatedly.
type PrintOption func(*printOptions)

// printOptions is the effective printer configuration.
type printOptions struct {
	precision int    // -1 => %g; otherwise %.<precision>f
	sep       string // between cells
	open      string // before the first cell
	close     string // after the last cell
}

// WithPrecision fixes the number of digits after the decimal point.
// Pass -1 for the shortest representation. Panics when p < -1.
func WithPrecision(p int) PrintOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *printOptions) { o.precision = p }
}

// WithSeparator sets the string written between two cells of a row.
func WithSeparator(sep string) PrintOption {
	return func(o *printOptions) { o.sep = sep }
}

// WithBrackets sets the strings written before and after every row.
func WithBrackets(left, right string) PrintOption {
	return func(o *printOptions) {
		o.open = left
		o.close = right
	}
}

// gatherPrintOptions resolves defaults and applies opts in order; nil
// entries are skipped.
func gatherPrintOptions(opts ...PrintOption) printOptions {
	o := printOptions{
		precision: DefaultPrecision,
		sep:       DefaultSeparator,
		open:      DefaultRowOpen,
		close:     DefaultRowClose,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// format renders one cell according to the resolved precision.
func (o printOptions) format(x float64) string {
	if o.precision < 0 {
		return fmt.Sprintf("%g", x)
	}

	return fmt.Sprintf("%.*f", o.precision, x)
}
