// Package calculator implements the Calculator capability.
package calculator

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/versten1uk/new-arch-spike/internal/capability"
)

// Core is stateless arithmetic
type Core struct{}

var _ capability.Calculator = (*Core)(nil)

// NewCore creates a calculator
func NewCore() *Core {
	return &Core{}
}

// Add returns a + b
func (c *Core) Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b
func (c *Core) Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b
func (c *Core) Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or ErrDivisionByZero when b is zero
func (c *Core) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, capability.ErrDivisionByZero
	}
	return a / b, nil
}

// Sum adds every value
func (c *Core) Sum(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, capability.ErrEmptyInput
	}
	return floats.Sum(values), nil
}

// Mean returns the arithmetic mean
func (c *Core) Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, capability.ErrEmptyInput
	}
	return stat.Mean(values, nil), nil
}
