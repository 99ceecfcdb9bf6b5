package audit

import (
	"context"
	"log/slog"

	"treasury/pkg/attrs"
	"treasury/pkg/requestcontext"
)

// Emitter is anything that accepts audit events.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// LogAudit logs event to the structured logger and emits it to publisher when one
// is configured. Known attribute keys (organization, proposal_id, action, actor,
// token, amount) are copied onto the event. Emit failures are logged, never returned.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher Emitter, event AuditEvent, kv ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		kv = append(kv, "request_id", requestID)
	}

	if logger != nil {
		args := append(kv, "event", string(event), "log_type", "audit")
		logger.InfoContext(ctx, string(event), args...)
	}

	if publisher == nil {
		return
	}
	e := Event{
		Action:         string(event),
		Organization:   attrs.ExtractString(kv, "organization"),
		ProposalID:     attrs.ExtractString(kv, "proposal_id"),
		TreasuryAction: attrs.ExtractString(kv, "action"),
		Actor:          attrs.ExtractString(kv, "actor"),
		Token:          attrs.ExtractString(kv, "token"),
		Amount:         attrs.ExtractString(kv, "amount"),
		RequestID:      requestID,
	}
	if err := publisher.Emit(ctx, e); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", string(event), "error", err)
	}
}
