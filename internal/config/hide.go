package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// HidePatterns matches entry names against the configured globs.
type HidePatterns struct {
	globs []glob.Glob
}

// CompileHidePatterns compiles shell-style globs such as "*.pyc".
func CompileHidePatterns(patterns []string) (*HidePatterns, error) {
	hp := &HidePatterns{}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", p, err)
		}
		hp.globs = append(hp.globs, g)
	}
	return hp, nil
}

// Match reports whether name is hidden by any pattern.
func (h *HidePatterns) Match(name string) bool {
	if h == nil {
		return false
	}
	for _, g := range h.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
