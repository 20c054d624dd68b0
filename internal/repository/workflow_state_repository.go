package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/escalation-service/internal/domain"
	"github.com/spec-kit/escalation-service/internal/workflow"
)

// WorkflowStateRepository persists workflow transitions. The ticket mutation
// and the audit append commit as one transaction: either both become visible
// or neither does.
type WorkflowStateRepository interface {
	// ApplyTransition writes the ticket's new workflow sub-state if and only
	// if (current_step, status) still match the snapshot the transition was
	// computed from. A mismatch returns workflow.ErrConcurrentModification.
	ApplyTransition(ctx context.Context, ticket *domain.Ticket, expectedStep int, expectedStatus domain.TicketStatus, record *domain.AuditRecord) error
}

type workflowStateRepository struct {
	pool *pgxpool.Pool
}

// NewWorkflowStateRepository builds repository.
func NewWorkflowStateRepository(pool *pgxpool.Pool) WorkflowStateRepository {
	return &workflowStateRepository{pool: pool}
}

func (r *workflowStateRepository) ApplyTransition(ctx context.Context, ticket *domain.Ticket, expectedStep int, expectedStatus domain.TicketStatus, record *domain.AuditRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const update = `
        UPDATE tickets SET current_step=$1, status=$2, workflow_completed=$3, assigned_role=$4,
            closed_at=$5, updated_at=NOW()
        WHERE id=$6 AND current_step=$7 AND status=$8
        RETURNING updated_at`
	var updatedAt time.Time
	err = tx.QueryRow(ctx, update,
		ticket.CurrentStep,
		ticket.Status,
		ticket.WorkflowCompleted,
		ticket.AssignedRole,
		ticket.ClosedAt,
		ticket.ID,
		expectedStep,
		expectedStatus,
	).Scan(&updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// No row matched: the workflow sub-state moved under us. The ticket's
		// existence was established by the read that produced the snapshot.
		return workflow.ErrConcurrentModification
	}
	if err != nil {
		return err
	}
	ticket.UpdatedAt = updatedAt

	if err := insertAuditRecord(ctx, tx, record); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
