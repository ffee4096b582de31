package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
	"github.com/ironsheep/fotoflex-mcp/internal/operation"
)

// maxExactInt is the largest integer a JSON number decoded as float64 can
// hold without rounding.
const maxExactInt = 1 << 53

// argsPrompter answers operation.Prompter questions from tools/call
// arguments. A missing or null argument counts as a cancelled prompt.
type argsPrompter struct {
	op   string
	args map[string]json.RawMessage
}

func newArgsPrompter(op string, raw json.RawMessage) (*argsPrompter, error) {
	p := &argsPrompter{op: op, args: map[string]json.RawMessage{}}
	if len(raw) == 0 || string(raw) == "null" {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p.args); err != nil {
		return nil, fmt.Errorf("arguments must be an object: %w", err)
	}
	return p, nil
}

func (p *argsPrompter) lookup(name string) (json.RawMessage, bool) {
	raw, ok := p.args[name]
	if !ok || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

// Int implements operation.Prompter.
func (p *argsPrompter) Int(param operation.Param) (int, bool, error) {
	raw, ok := p.lookup(param.Name)
	if !ok {
		return 0, false, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false, p.invalid(param, "must be an integer, got %s", raw)
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return 0, false, p.invalid(param, "must be an integer, got %s", raw)
	}
	return int(f), true, nil
}

// Float implements operation.Prompter.
func (p *argsPrompter) Float(param operation.Param) (float64, bool, error) {
	raw, ok := p.lookup(param.Name)
	if !ok {
		return 0, false, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false, p.invalid(param, "must be a number, got %s", raw)
	}
	return f, true, nil
}

func (p *argsPrompter) invalid(param operation.Param, format string, args ...interface{}) error {
	return &imaging.ValidationError{Op: p.op, Param: param.Name, Reason: fmt.Sprintf(format, args...)}
}
