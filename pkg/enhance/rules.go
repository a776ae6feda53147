package enhance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrNoRules is returned when ModeRules is selected without any rules.
var ErrNoRules = errors.New("rules enhancer requires at least one rule")

// RuleEnhancer rewrites individual fields with expr expressions evaluated
// against the base record. Expressions are compiled once at construction.
type RuleEnhancer struct {
	programs map[string]*vm.Program
}

// NewRuleEnhancer compiles the given field -> expression rules.
func NewRuleEnhancer(rules map[string]string) (*RuleEnhancer, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	programs := make(map[string]*vm.Program, len(rules))
	for field, src := range rules {
		program, err := expr.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("compile rule for field %q: %w", field, err)
		}
		programs[field] = program
	}
	return &RuleEnhancer{programs: programs}, nil
}

// Enhance evaluates each rule against the base record and overlays the
// results. Fields without a rule, and rules naming fields absent from the
// base record, are left verbatim.
func (e *RuleEnhancer) Enhance(base map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}

	// Evaluate in sorted field order so failures are reported consistently.
	fields := make([]string, 0, len(e.programs))
	for field := range e.programs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if _, ok := base[field]; !ok {
			continue
		}
		val, err := expr.Run(e.programs[field], base)
		if err != nil {
			return nil, fmt.Errorf("eval rule for field %q: %w", field, err)
		}
		out[field] = val
	}
	return out, nil
}

// Name returns "rules".
func (e *RuleEnhancer) Name() string { return "rules" }

var _ Enhancer = (*RuleEnhancer)(nil)
