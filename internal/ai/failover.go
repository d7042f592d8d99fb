package ai

import (
	"context"
	"fmt"
	"log/slog"
)

// Preference says which provider the orchestrator should try first. It is a
// per-call value rather than mutable orchestrator state so concurrent
// sessions cannot race on a shared switch.
type Preference int

const (
	PreferCloud Preference = iota
	PreferLocal
)

// Orchestrator selects a narrator provider, executes the call, and retries
// the alternate provider at most once on transport or authorization failures.
// Malformed output is never retried against a different provider.
type Orchestrator struct {
	local  Provider
	cloud  Provider
	health *HealthTracker
	logger *slog.Logger
}

// NewOrchestrator wires the orchestrator. Either provider may be nil when
// unconfigured; health tracks the local provider and may be nil with it.
func NewOrchestrator(local, cloud Provider, health *HealthTracker, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{local: local, cloud: cloud, health: health, logger: logger}
}

// Generate formats the system template with tmplCtx, assembles the message
// list as [system] + history + [user command], and runs the call with the
// single-failover policy. A nil reply always comes with a non-nil error and
// means the caller must not mutate any state for this turn.
func (o *Orchestrator) Generate(ctx context.Context, pref Preference, template string, history []Message, command string, tmplCtx map[string]string) (*StructuredReply, error) {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: FormatTemplate(template, tmplCtx)})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: RoleUser, Content: command})

	first := o.pick(ctx, pref)
	if first == nil {
		return nil, &ProviderError{Class: ClassUnreachable, Err: fmt.Errorf("no narrator provider configured")}
	}

	raw, firstErr := first.Generate(ctx, messages)
	if firstErr != nil {
		alt := o.alternate(first)
		if alt == nil || !o.shouldFailover(first, firstErr) {
			return nil, firstErr
		}

		o.logger.Warn("narrator call failed, failing over",
			"provider", first.Name(), "fallback", alt.Name(), "class", Classify(firstErr), "error", firstErr)

		var altErr error
		raw, altErr = alt.Generate(ctx, messages)
		if altErr != nil {
			return nil, fmt.Errorf("all narrator providers failed: %v; %w", firstErr, altErr)
		}
	}

	return ParseReply(raw)
}

// pick resolves the preferred provider for this call. Local is chosen only
// when preferred, configured, and answering the memoized health probe.
func (o *Orchestrator) pick(ctx context.Context, pref Preference) Provider {
	if pref == PreferLocal && o.local != nil && o.health != nil && o.health.Available(ctx) {
		return o.local
	}
	if o.cloud != nil {
		return o.cloud
	}
	return o.local
}

func (o *Orchestrator) alternate(p Provider) Provider {
	if p == o.cloud {
		return o.local
	}
	return o.cloud
}

// shouldFailover implements the retry policy: transport timeouts and
// unreachable endpoints fail over from either side, an authorization denial
// fails over only from the cloud provider, and everything else (including
// malformed output) is surfaced as-is.
func (o *Orchestrator) shouldFailover(from Provider, err error) bool {
	switch Classify(err) {
	case ClassTimeout, ClassUnreachable:
		return true
	case ClassDenied:
		return from == o.cloud
	default:
		return false
	}
}
