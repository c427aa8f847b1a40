package evaluator

import (
	"fmt"
	"math"
)

// A hostFunction backs an extern declaration with a Go implementation.
type hostFunction struct {
	arity int
	fn    func(c *Context, args []float64) float64
}

var hostFunctions = map[string]hostFunction{
	"putchard": {1, func(c *Context, args []float64) float64 {
		fmt.Fprintf(c.Output, "%c", rune(args[0]))
		return 0
	}},
	"printd": {1, func(c *Context, args []float64) float64 {
		fmt.Fprintf(c.Output, "%g\n", args[0])
		return 0
	}},
	"sin": {1, func(c *Context, args []float64) float64 {
		return math.Sin(args[0])
	}},
	"cos": {1, func(c *Context, args []float64) float64 {
		return math.Cos(args[0])
	}},
	"sqrt": {1, func(c *Context, args []float64) float64 {
		return math.Sqrt(args[0])
	}},
	"pow": {2, func(c *Context, args []float64) float64 {
		return math.Pow(args[0], args[1])
	}},
}
