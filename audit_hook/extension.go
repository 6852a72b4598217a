// Package audithook bridges Tycoon lifecycle events to an audit trail backend.
//
// It defines a local Recorder interface so the package does not import
// Chronicle directly. Callers inject a RecorderFunc adapter that bridges
// to Chronicle at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xraph/tycoon/plugin"
	"github.com/xraph/tycoon/types"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin             = (*Extension)(nil)
	_ plugin.OnAccountCreated   = (*Extension)(nil)
	_ plugin.OnEntryPaid        = (*Extension)(nil)
	_ plugin.OnSlotUnlocked     = (*Extension)(nil)
	_ plugin.OnPremiumSlotAdded = (*Extension)(nil)
	_ plugin.OnBusinessPlaced   = (*Extension)(nil)
	_ plugin.OnBusinessUpgraded = (*Extension)(nil)
	_ plugin.OnBusinessSold     = (*Extension)(nil)
	_ plugin.OnEarningsClaimed  = (*Extension)(nil)
	_ plugin.OnReferralCredited = (*Extension)(nil)
	_ plugin.OnIntegrityFailure = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
// This matches chronicle.Emitter but is defined locally so that the
// audit_hook package does not import Chronicle directly — callers inject
// the concrete *chronicle.Chronicle at wiring time.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
// It mirrors chronicle/audit.Event but avoids a module dependency.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges Tycoon lifecycle events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Account lifecycle hooks
// ──────────────────────────────────────────────────

// OnAccountCreated implements plugin.OnAccountCreated.
func (e *Extension) OnAccountCreated(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionAccountCreated, SeverityInfo, OutcomeSuccess,
		ResourceAccount, "", CategoryAccount, nil,
		"event", "account_created",
	)
}

// OnEntryPaid implements plugin.OnEntryPaid.
func (e *Extension) OnEntryPaid(ctx context.Context, owner string) error {
	return e.record(ctx, ActionEntryPaid, SeverityInfo, OutcomeSuccess,
		ResourceAccount, owner, CategoryAccount, nil,
		"owner", owner,
	)
}

// ──────────────────────────────────────────────────
// Slot hooks
// ──────────────────────────────────────────────────

// OnSlotUnlocked implements plugin.OnSlotUnlocked.
func (e *Extension) OnSlotUnlocked(ctx context.Context, owner string, slot int, cost types.Coins) error {
	return e.record(ctx, ActionSlotUnlocked, SeverityInfo, OutcomeSuccess,
		ResourceSlot, owner, CategoryInventory, nil,
		"owner", owner,
		"slot", slot,
		"cost", cost.String(),
	)
}

// OnPremiumSlotAdded implements plugin.OnPremiumSlotAdded.
func (e *Extension) OnPremiumSlotAdded(ctx context.Context, owner string, slot int, slotType string) error {
	return e.record(ctx, ActionPremiumSlotAdded, SeverityInfo, OutcomeSuccess,
		ResourceSlot, owner, CategoryInventory, nil,
		"owner", owner,
		"slot", slot,
		"slot_type", slotType,
	)
}

// ──────────────────────────────────────────────────
// Business lifecycle hooks
// ──────────────────────────────────────────────────

// OnBusinessPlaced implements plugin.OnBusinessPlaced.
func (e *Extension) OnBusinessPlaced(ctx context.Context, owner string, slot int, _ interface{}) error {
	return e.record(ctx, ActionBusinessPlaced, SeverityInfo, OutcomeSuccess,
		ResourceBusiness, owner, CategoryInventory, nil,
		"owner", owner,
		"slot", slot,
	)
}

// OnBusinessUpgraded implements plugin.OnBusinessUpgraded.
func (e *Extension) OnBusinessUpgraded(ctx context.Context, owner string, slot int, _ interface{}, cost types.Coins) error {
	return e.record(ctx, ActionBusinessUpgraded, SeverityInfo, OutcomeSuccess,
		ResourceBusiness, owner, CategoryInventory, nil,
		"owner", owner,
		"slot", slot,
		"cost", cost.String(),
	)
}

// OnBusinessSold implements plugin.OnBusinessSold.
func (e *Extension) OnBusinessSold(ctx context.Context, owner string, slot int, _ interface{}) error {
	return e.record(ctx, ActionBusinessSold, SeverityInfo, OutcomeSuccess,
		ResourceBusiness, owner, CategoryInventory, nil,
		"owner", owner,
		"slot", slot,
	)
}

// ──────────────────────────────────────────────────
// Earnings hooks
// ──────────────────────────────────────────────────

// OnEarningsClaimed implements plugin.OnEarningsClaimed.
func (e *Extension) OnEarningsClaimed(ctx context.Context, owner string, amount types.Coins) error {
	return e.record(ctx, ActionEarningsClaimed, SeverityInfo, OutcomeSuccess,
		ResourceEarnings, owner, CategoryEarnings, nil,
		"owner", owner,
		"amount", amount.String(),
	)
}

// OnReferralCredited implements plugin.OnReferralCredited.
func (e *Extension) OnReferralCredited(ctx context.Context, owner string, amount types.Coins) error {
	return e.record(ctx, ActionReferralCredited, SeverityInfo, OutcomeSuccess,
		ResourceEarnings, owner, CategoryEarnings, nil,
		"owner", owner,
		"amount", amount.String(),
	)
}

// ──────────────────────────────────────────────────
// Integrity hooks
// ──────────────────────────────────────────────────

// OnIntegrityFailure implements plugin.OnIntegrityFailure.
func (e *Extension) OnIntegrityFailure(ctx context.Context, owner string, err error) error {
	return e.record(ctx, ActionIntegrityFailure, SeverityCritical, OutcomeFailure,
		ResourceAccount, owner, CategoryIntegrity, err,
		"owner", owner,
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
