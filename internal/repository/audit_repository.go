package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/escalation-service/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so audit inserts can
// run standalone or inside a transition transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AuditTrailRepository reads the append-only workflow audit trail. Records
// are written only inside a transition transaction, via insertAuditRecord.
type AuditTrailRepository interface {
	ListByTicket(ctx context.Context, ticketID string) ([]domain.AuditRecord, error)
}

type auditTrailRepository struct {
	pool *pgxpool.Pool
}

// NewAuditTrailRepository builds repository.
func NewAuditTrailRepository(pool *pgxpool.Pool) AuditTrailRepository {
	return &auditTrailRepository{pool: pool}
}

func insertAuditRecord(ctx context.Context, q querier, record *domain.AuditRecord) error {
	const query = `
        INSERT INTO workflow_audit (ticket_id, from_step, to_step, action, acting_role, notes, evidence_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return q.QueryRow(ctx, query,
		record.TicketID,
		record.FromStep,
		record.ToStep,
		record.Action,
		record.ActingRole,
		record.Notes,
		record.EvidenceURL,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *auditTrailRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.AuditRecord, error) {
	const query = `
        SELECT id, ticket_id, from_step, to_step, action, acting_role, notes, evidence_url, created_at
        FROM workflow_audit WHERE ticket_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AuditRecord
	for rows.Next() {
		var record domain.AuditRecord
		if err := rows.Scan(
			&record.ID,
			&record.TicketID,
			&record.FromStep,
			&record.ToStep,
			&record.Action,
			&record.ActingRole,
			&record.Notes,
			&record.EvidenceURL,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
