package ratelimit

import "time"

// LimitConfig is one window/threshold pair.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// Policy maps request scopes to the limits enforced for them.
type Policy struct {
	Limits map[Scope][]LimitConfig
}

// PolicyBuilder assembles a Policy one limit at a time.
type PolicyBuilder struct {
	policy *Policy
}

// NewPolicyBuilder returns an empty builder.
func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{
		policy: &Policy{Limits: map[Scope][]LimitConfig{}},
	}
}

// AddLimit appends a window/threshold pair for the given scope.
func (b *PolicyBuilder) AddLimit(scope Scope, max int64, window time.Duration) *PolicyBuilder {
	b.policy.Limits[scope] = append(b.policy.Limits[scope], LimitConfig{Window: window, Max: max})
	return b
}

// Build returns the assembled policy.
func (b *PolicyBuilder) Build() *Policy {
	return b.policy
}

// DefaultPolicy returns the limits applied when an endpoint carries no custom
// configuration. Writes (saving links, sending messages) are throttled far
// harder than reads, which are mostly static content.
func DefaultPolicy() *Policy {
	return &Policy{
		Limits: map[Scope][]LimitConfig{
			ScopeGlobal: {
				{Window: time.Minute, Max: 300},
			},
			ScopeRead: {
				{Window: time.Minute, Max: 240},
			},
			ScopeWrite: {
				{Window: time.Minute, Max: 20},
				{Window: time.Hour, Max: 200},
			},
		},
	}
}
