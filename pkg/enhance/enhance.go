// Package enhance provides the optional field enhancement capability:
// a post-processing step that may adjust a generated record's fields
// without changing its field set. The default is a pass-through.
package enhance

import (
	"fmt"
)

// Enhancer post-processes a generated record's base fields. Implementations
// must preserve every key present in the base record; a caller treats any
// returned error as "use the base record unchanged".
type Enhancer interface {
	// Enhance returns a possibly-modified copy of base. The base map must
	// not be mutated.
	Enhance(base map[string]any) (map[string]any, error)

	// Name returns the enhancer identifier (e.g. "noop", "rules").
	Name() string
}

// Mode selects an enhancer implementation.
type Mode string

// Enhancer modes.
const (
	ModeNone  Mode = "none"
	ModeRules Mode = "rules"
)

// Config selects and configures an enhancer. The zero value selects the
// pass-through Noop enhancer.
type Config struct {
	// Mode is the enhancer implementation to use.
	Mode Mode `json:"mode" yaml:"mode"`

	// Rules maps a field name to an expression evaluated against the base
	// record. Only used by ModeRules.
	Rules map[string]string `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// New creates an enhancer from configuration. Selection happens here, by
// configuration, never by runtime type inspection.
func New(cfg *Config) (Enhancer, error) {
	if cfg == nil || cfg.Mode == "" || cfg.Mode == ModeNone {
		return Noop{}, nil
	}
	switch cfg.Mode {
	case ModeRules:
		return NewRuleEnhancer(cfg.Rules)
	default:
		return nil, fmt.Errorf("unknown enhancer mode %q", cfg.Mode)
	}
}

// Noop is the identity enhancer used when no enhancement is configured.
type Noop struct{}

// Enhance returns the base record unchanged.
func (Noop) Enhance(base map[string]any) (map[string]any, error) {
	return base, nil
}

// Name returns "noop".
func (Noop) Name() string { return "noop" }
