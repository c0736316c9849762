package logger

import (
	"strings"

	"logge/facade"
)

// Policy decides whether an event is rendered.
type Policy interface {
	Enabled(md facade.Metadata) bool
}

// MaxLevelPolicy admits events at or above the facade's process-wide
// maximum level. It is the default policy.
type MaxLevelPolicy struct{}

func (MaxLevelPolicy) Enabled(md facade.Metadata) bool {
	return facade.MaxLevel().Allows(md.Level)
}

// LevelPolicy admits events at or above a fixed threshold.
type LevelPolicy struct {
	Max facade.LevelFilter
}

func (p LevelPolicy) Enabled(md facade.Metadata) bool {
	return p.Max.Allows(md.Level)
}

// PredicatePolicy adapts a plain function to a Policy.
type PredicatePolicy func(md facade.Metadata) bool

func (p PredicatePolicy) Enabled(md facade.Metadata) bool {
	return p(md)
}

// TargetPolicy admits events whose target starts with one of Prefixes and
// that Next admits. No prefixes means every target; a nil Next means
// MaxLevelPolicy.
type TargetPolicy struct {
	Prefixes []string
	Next     Policy
}

func (p TargetPolicy) Enabled(md facade.Metadata) bool {
	if len(p.Prefixes) > 0 && !hasAnyPrefix(md.Target, p.Prefixes) {
		return false
	}
	next := p.Next
	if next == nil {
		next = MaxLevelPolicy{}
	}
	return next.Enabled(md)
}

func hasAnyPrefix(target string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(target, prefix) {
			return true
		}
	}
	return false
}
