// Package database provides database operations for the credit plan engine.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"credit-plan-engine/internal/models"
)

// CreditRepository handles credit database operations.
type CreditRepository struct {
	db *DB
}

// NewCreditRepository creates a new credit repository.
func NewCreditRepository(db *DB) *CreditRepository {
	return &CreditRepository{db: db}
}

// Create inserts a credit and its installment rows in one transaction.
// The installment id field is caller-local correlation state and is not
// persisted.
func (r *CreditRepository) Create(ctx context.Context, credit *models.Credit) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO credits (
				id, reference, mode, interest_kind,
				principal_total, principal_financed, total_interest, total_payable,
				created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			credit.ID,
			credit.Reference,
			string(credit.Mode),
			string(credit.InterestKind),
			credit.PrincipalTotal,
			credit.PrincipalFinanced,
			credit.TotalInterest,
			credit.TotalPayable,
			credit.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert credit: %w", err)
		}

		for _, ins := range credit.Installments {
			_, err := tx.Exec(ctx, `
				INSERT INTO credit_installments (
					credit_id, number, due_date, amount, label
				) VALUES ($1, $2, $3, $4, $5)`,
				credit.ID,
				ins.Number,
				ins.DueDate.Time,
				ins.Amount,
				string(ins.Label),
			)
			if err != nil {
				return fmt.Errorf("failed to insert installment %d: %w", ins.Number, err)
			}
		}

		return nil
	})
}

// GetByID retrieves a credit with its installments.
func (r *CreditRepository) GetByID(ctx context.Context, id string) (*models.Credit, error) {
	credit := &models.Credit{}
	var mode, kind string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, reference, mode, interest_kind,
		       principal_total, principal_financed, total_interest, total_payable,
		       created_at
		FROM credits
		WHERE id = $1`,
		id,
	).Scan(
		&credit.ID,
		&credit.Reference,
		&mode,
		&kind,
		&credit.PrincipalTotal,
		&credit.PrincipalFinanced,
		&credit.TotalInterest,
		&credit.TotalPayable,
		&credit.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get credit: %w", err)
	}
	credit.Mode = models.CreditMode(mode)
	credit.InterestKind = models.InterestKind(kind)

	installments, err := r.installmentsFor(ctx, []string{credit.ID})
	if err != nil {
		return nil, err
	}
	credit.Installments = installments[credit.ID]

	return credit, nil
}

// ListRecent retrieves the most recently created credits with their
// installments, newest first.
func (r *CreditRepository) ListRecent(ctx context.Context, limit int) ([]*models.Credit, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reference, mode, interest_kind,
		       principal_total, principal_financed, total_interest, total_payable,
		       created_at
		FROM credits
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	defer rows.Close()

	var credits []*models.Credit
	var ids []string
	for rows.Next() {
		credit := &models.Credit{}
		var mode, kind string

		if err := rows.Scan(
			&credit.ID,
			&credit.Reference,
			&mode,
			&kind,
			&credit.PrincipalTotal,
			&credit.PrincipalFinanced,
			&credit.TotalInterest,
			&credit.TotalPayable,
			&credit.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		credit.Mode = models.CreditMode(mode)
		credit.InterestKind = models.InterestKind(kind)

		credits = append(credits, credit)
		ids = append(ids, credit.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	installments, err := r.installmentsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, credit := range credits {
		credit.Installments = installments[credit.ID]
	}

	return credits, nil
}

// installmentsFor loads installment rows for a set of credits, ordered by
// number within each credit.
func (r *CreditRepository) installmentsFor(ctx context.Context, creditIDs []string) (map[string][]models.Installment, error) {
	result := make(map[string][]models.Installment, len(creditIDs))
	if len(creditIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT credit_id, number, due_date, amount, label
		FROM credit_installments
		WHERE credit_id = ANY($1)
		ORDER BY credit_id, number`,
		creditIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load installments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var creditID, label string
		var ins models.Installment
		var due time.Time

		if err := rows.Scan(&creditID, &ins.Number, &due, &ins.Amount, &label); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		ins.DueDate = models.ISODate{Time: due.UTC()}
		ins.Label = models.InstallmentLabel(label)

		result[creditID] = append(result[creditID], ins)
	}

	return result, rows.Err()
}
