package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/decisionlog"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/google/uuid"
)

// DecisionRepo persists the reference Switcher's actuation records
// (its AuditSink) to auto_switch_decisions, a durable audit trail an
// operator can query after a restart. The engine's in-memory ring
// buffer (internal/decisionlog) is not written here.
type DecisionRepo struct {
	db *DB
}

func NewDecisionRepo(db *DB) *DecisionRepo {
	return &DecisionRepo{db: db}
}

// Append inserts one decision row under a fresh random UUID primary
// key. The id is not returned or attached to any trace span.
func (r *DecisionRepo) Append(ctx context.Context, d decisionlog.Decision) error {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auto_switch_decisions (id, at, reason, outcome, target_slot, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, d.At, string(d.Reason), string(d.Outcome), int(d.Target), d.Detail)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

// Recent returns the most recent n decisions, newest first.
func (r *DecisionRepo) Recent(ctx context.Context, n int) ([]decisionlog.Decision, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT at, reason, outcome, target_slot, detail
		FROM auto_switch_decisions
		ORDER BY at DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent decisions: %w", err)
	}
	defer rows.Close()

	var out []decisionlog.Decision
	for rows.Next() {
		var (
			at     time.Time
			reason string
			outcome string
			target int
			detail  string
		)
		if err := rows.Scan(&at, &reason, &outcome, &target, &detail); err != nil {
			return nil, fmt.Errorf("scan decision row: %w", err)
		}
		out = append(out, decisionlog.Decision{
			At:      at,
			Reason:  event.Reason(reason),
			Outcome: decisionlog.Outcome(outcome),
			Target:  model.SlotId(target),
			Detail:  detail,
		})
	}
	return out, rows.Err()
}
