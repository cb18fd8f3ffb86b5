package domain

import "fmt"

// EngineConfig is the immutable per-run configuration of the analysis engine.
type EngineConfig struct {
	CheckComponents  bool   `yaml:"check_components" json:"checkComponents"`
	CheckTokens      bool   `yaml:"check_tokens" json:"checkTokens"`
	CheckStyles      bool   `yaml:"check_styles" json:"checkStyles"`
	AllowLocalStyles bool   `yaml:"allow_local_styles" json:"allowLocalStyles"`
	IgnoredKinds     []Kind `yaml:"ignored_kinds" json:"ignoredKinds,omitempty"`
}

// DefaultConfig enables every check and accepts document-local styles.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		CheckComponents:  true,
		CheckTokens:      true,
		CheckStyles:      true,
		AllowLocalStyles: true,
	}
}

// IgnoresKind reports whether nodes of kind k are excluded from evaluation.
// Children of ignored nodes are still visited.
func (c EngineConfig) IgnoresKind(k Kind) bool {
	for _, ik := range c.IgnoredKinds {
		if ik == k {
			return true
		}
	}
	return false
}

// AnyCheckEnabled reports whether at least one rule family is active.
func (c EngineConfig) AnyCheckEnabled() bool {
	return c.CheckComponents || c.CheckTokens || c.CheckStyles
}

// Validate catches typos in user-provided configuration.
func (c EngineConfig) Validate() error {
	for _, k := range c.IgnoredKinds {
		if !IsKnownKind(k) {
			return fmt.Errorf("unknown node kind %q in ignored_kinds", k)
		}
	}
	return nil
}
