package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Execution modes
const (
	ModeAsk  = "ask"  // ask user before every step
	ModeAuto = "auto" // execute automatically (default)
	ModeDeny = "deny" // block execution
)

// ErrRejected is returned when a step was not approved
var ErrRejected = errors.New("step rejected by policy")

// AskFunc is invoked when Mode==ask. Returning true approves the step. Implementations MAY
// mutate the policy (for example, switching to ModeAuto after "all").
type AskFunc func(ctx context.Context, step string, p *Policy) bool

// Policy represents approval settings for the current task run.
//
// A nil *Policy means "execute everything automatically".
type Policy struct {
	Mode      string   // ask / auto / deny      (default = auto)
	AllowList []string // whitelist of step names (empty => all)
	BlockList []string // blacklist of step names
	Ask       AskFunc  // used only when Mode==ask
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty" mapstructure:"allow"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty" mapstructure:"block"`
}

// FromConfig converts a stored Config to a runtime Policy (without AskFunc).
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// Validate checks mode value
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "", ModeAsk, ModeAuto, ModeDeny:
		return nil
	}
	return fmt.Errorf("unsupported policy mode: %v", c.Mode)
}

// IsAllowed evaluates AllowList / BlockList with case-insensitive exact match of the step
// name; an entry ending with "." matches every step under that prefix (e.g. "python.").
func (p *Policy) IsAllowed(step string) bool {
	if p == nil {
		return true
	}
	normalized := strings.ToLower(step)
	for _, b := range p.BlockList {
		if matches(normalized, b) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if matches(normalized, a) {
			return true
		}
	}
	return false
}

func matches(step, entry string) bool {
	entry = strings.ToLower(entry)
	if strings.HasSuffix(entry, ".") {
		return strings.HasPrefix(step, entry)
	}
	return step == entry
}

// Approve returns nil if step can run
func (p *Policy) Approve(ctx context.Context, step string) error {
	if p == nil {
		return nil
	}
	if !p.IsAllowed(step) {
		return fmt.Errorf("%w: %v is not allowed", ErrRejected, step)
	}
	switch strings.ToLower(p.Mode) {
	case ModeDeny:
		return fmt.Errorf("%w: %v denied", ErrRejected, step)
	case ModeAsk:
		if p.Ask == nil || !p.Ask(ctx, step, p) {
			return fmt.Errorf("%w: %v was not approved", ErrRejected, step)
		}
	}
	return nil
}

// ParseBool converts a yes/no answer; unrecognised input yields defaultValue.
func ParseBool(choice string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "yes", "y", "ye":
		return true
	case "no", "n":
		return false
	}
	return defaultValue
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts *Policy or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(ctxKey).(*Policy)
	return p
}
