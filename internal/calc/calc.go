// Package calc evaluates one-line ratio expressions for the ratio command.
//
//	mul 3/4 10     -> 7
//	ceil ntsc 1001 -> 30000
//	cmp 1/2 2/4    -> =
package calc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/uptrace/ratio"
	"github.com/uptrace/ratio/registry"
)

var (
	ErrUnknownCommand = errors.New("calc: unknown command")
	ErrUsage          = errors.New("calc: wrong number of arguments")
	ErrOperand        = errors.New("calc: invalid operand")
)

type command struct {
	usage string
	nargs int
	fn    func(e *Evaluator, args []string) (string, error)
}

var commands = map[string]command{
	"mul":   {usage: "mul R X", nargs: 2, fn: (*Evaluator).scaleFloor},
	"floor": {usage: "floor R X", nargs: 2, fn: (*Evaluator).scaleFloor},
	"ceil":  {usage: "ceil R X", nargs: 2, fn: (*Evaluator).scaleCeil},
	"quo":   {usage: "quo X R", nargs: 2, fn: (*Evaluator).quo},
	"fmul":  {usage: "fmul R F", nargs: 2, fn: (*Evaluator).fmul},
	"fquo":  {usage: "fquo F R", nargs: 2, fn: (*Evaluator).fquo},
	"mulr":  {usage: "mulr R R", nargs: 2, fn: (*Evaluator).mulr},
	"rcp":   {usage: "rcp R", nargs: 1, fn: (*Evaluator).rcp},
	"float": {usage: "float R", nargs: 1, fn: (*Evaluator).float},
	"cmp":   {usage: "cmp R R", nargs: 2, fn: (*Evaluator).cmp},
	"eq":    {usage: "eq R R", nargs: 2, fn: (*Evaluator).eq},
}

// Usage returns one usage line per command, sorted.
func Usage() []string {
	lines := make([]string, 0, len(commands))
	for _, cmd := range commands {
		lines = append(lines, cmd.usage)
	}
	sort.Strings(lines)
	return lines
}

// Evaluator resolves ratio operands through a registry, so registered names
// can be used wherever a literal is accepted.
type Evaluator struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Evaluator {
	if reg == nil {
		reg = registry.New()
	}
	return &Evaluator{reg: reg}
}

// Eval evaluates a single command line and returns the formatted result.
// Arithmetic faults are returned as errors wrapping ratio.ErrDivideByZero or
// ratio.ErrOverflow.
func (e *Evaluator) Eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if len(args) != cmd.nargs {
		return "", fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}
	return cmd.fn(e, args)
}

func (e *Evaluator) operand(s string) (ratio.Ratio, error) {
	r, err := e.reg.Resolve(s)
	if err != nil {
		return ratio.Ratio{}, fmt.Errorf("%w: %q is neither a ratio nor a registered name", ErrOperand, s)
	}
	return r, nil
}

func (e *Evaluator) operands(a, b string) (ratio.Ratio, ratio.Ratio, error) {
	x, err := e.operand(a)
	if err != nil {
		return x, ratio.Ratio{}, err
	}
	y, err := e.operand(b)
	return x, y, err
}

// parseInt parses s as an int32 when negative and as a uint32 otherwise.
func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < -1<<31 || n > 1<<32-1 {
		return 0, fmt.Errorf("%w: %q is not an int32 or uint32", ErrOperand, s)
	}
	return n, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float", ErrOperand, s)
	}
	return float32(f), nil
}

func (e *Evaluator) scale(args []string, unsigned func(ratio.Ratio, uint32) uint32,
	signed func(ratio.Ratio, int32) int32,
) (string, error) {
	r, err := e.operand(args[0])
	if err != nil {
		return "", err
	}
	x, err := parseInt(args[1])
	if err != nil {
		return "", err
	}
	return ratio.Try(func() string {
		if x < 0 {
			return strconv.FormatInt(int64(signed(r, int32(x))), 10)
		}
		return strconv.FormatUint(uint64(unsigned(r, uint32(x))), 10)
	})
}

func (e *Evaluator) scaleFloor(args []string) (string, error) {
	return e.scale(args, ratio.Ratio.Mul, ratio.Ratio.IFloor)
}

func (e *Evaluator) scaleCeil(args []string) (string, error) {
	return e.scale(args, ratio.Ratio.Ceil, ratio.Ratio.ICeil)
}

func (e *Evaluator) quo(args []string) (string, error) {
	return e.scale([]string{args[1], args[0]}, ratio.Ratio.Quo, ratio.Ratio.IQuo)
}

func (e *Evaluator) fmul(args []string) (string, error) {
	r, err := e.operand(args[0])
	if err != nil {
		return "", err
	}
	f, err := parseFloat(args[1])
	if err != nil {
		return "", err
	}
	return formatFloat(r.MulFloat32(f)), nil
}

func (e *Evaluator) fquo(args []string) (string, error) {
	f, err := parseFloat(args[0])
	if err != nil {
		return "", err
	}
	r, err := e.operand(args[1])
	if err != nil {
		return "", err
	}
	return formatFloat(r.QuoFloat32(f)), nil
}

func (e *Evaluator) mulr(args []string) (string, error) {
	a, b, err := e.operands(args[0], args[1])
	if err != nil {
		return "", err
	}
	return ratio.Try(func() string {
		return a.MulRatio(b).String()
	})
}

func (e *Evaluator) rcp(args []string) (string, error) {
	r, err := e.operand(args[0])
	if err != nil {
		return "", err
	}
	return r.Rcp().String(), nil
}

func (e *Evaluator) float(args []string) (string, error) {
	r, err := e.operand(args[0])
	if err != nil {
		return "", err
	}
	return formatFloat(r.Float32()), nil
}

func (e *Evaluator) cmp(args []string) (string, error) {
	a, b, err := e.operands(args[0], args[1])
	if err != nil {
		return "", err
	}
	return a.Cmp(b).String(), nil
}

func (e *Evaluator) eq(args []string) (string, error) {
	a, b, err := e.operands(args[0], args[1])
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(a.Equal(b)), nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
