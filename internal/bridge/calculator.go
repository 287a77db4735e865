package bridge

import (
	"context"
	"fmt"

	"github.com/versten1uk/new-arch-spike/internal/capability"
	"github.com/versten1uk/new-arch-spike/internal/interop"
)

// CalculatorModule exposes the Calculator capability as TurboCalculator
type CalculatorModule struct {
	calc  capability.Calculator
	peers *interop.Registry
}

// NewCalculatorModule creates the TurboCalculator adapter. Additions are
// reported to the Logger capability resolved from peers.
func NewCalculatorModule(calc capability.Calculator, peers *interop.Registry) *CalculatorModule {
	return &CalculatorModule{calc: calc, peers: peers}
}

// Definition returns module metadata
func (m *CalculatorModule) Definition() Definition {
	pair := []Parameter{
		{Name: "a", Type: "number", Description: "First operand", Required: true},
		{Name: "b", Type: "number", Description: "Second operand", Required: true},
	}
	values := []Parameter{
		{Name: "values", Type: "array", Description: "Numbers", Required: true},
	}
	return Definition{
		Name:        "TurboCalculator",
		Description: "Arithmetic",
		Capability:  capability.CalculatorName,
		Methods: []Method{
			{Name: "add", Description: "a + b", Parameters: pair, Returns: "number"},
			{Name: "subtract", Description: "a - b", Parameters: pair, Returns: "number"},
			{Name: "multiply", Description: "a * b", Parameters: pair, Returns: "number"},
			{Name: "divide", Description: "a / b", Parameters: pair, Returns: "number"},
			{Name: "sum", Description: "Sum of values", Parameters: values, Returns: "number"},
			{Name: "mean", Description: "Mean of values", Parameters: values, Returns: "number"},
		},
	}
}

// Invoke dispatches a method call
func (m *CalculatorModule) Invoke(ctx context.Context, method string, args map[string]interface{}) (*Result, error) {
	switch method {
	case "add", "subtract", "multiply", "divide":
		a, fail := requiredNumber(args, "a")
		if fail != nil {
			return fail, nil
		}
		b, fail := requiredNumber(args, "b")
		if fail != nil {
			return fail, nil
		}
		return m.binary(method, a, b)
	case "sum", "mean":
		values, ok := getNumbers(args, "values")
		if !ok {
			return failure("values must be an array of numbers")
		}
		op := m.calc.Sum
		if method == "mean" {
			op = m.calc.Mean
		}
		result, err := op(values)
		if err != nil {
			return failure(err.Error())
		}
		return success(result)
	default:
		return unknownMethod("TurboCalculator", method)
	}
}

func (m *CalculatorModule) binary(method string, a, b float64) (*Result, error) {
	switch method {
	case "add":
		logger, err := capability.LoggerKey.Resolve(m.peers)
		if err != nil {
			res, _ := failure(err.Error())
			return res, err
		}
		result := m.calc.Add(a, b)
		logger.LogInfo(fmt.Sprintf("[TurboCalculator] add: %g + %g = %g", a, b, result))
		return success(result)
	case "subtract":
		return success(m.calc.Subtract(a, b))
	case "multiply":
		return success(m.calc.Multiply(a, b))
	default:
		result, err := m.calc.Divide(a, b)
		if err != nil {
			return failure(err.Error())
		}
		return success(result)
	}
}
