package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagetrack/labour-backend-go/internal/domain/incentive"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
)

type incentiveRepository struct {
	db *database.DB
}

func NewIncentiveRepository(db *database.DB) incentive.Repository {
	return &incentiveRepository{db: db}
}

const incentiveSelect = `
	SELECT i.id, i.client_id, i.name, i.description, i.rule_type, i.threshold,
		   i.amount, i.per_occurrence, i.active, i.created_at, i.updated_at, c.name
	FROM incentive_rules i
	LEFT JOIN clients c ON c.id = i.client_id`

func scanIncentive(row pgx.Row) (incentive.Rule, error) {
	var rule incentive.Rule
	err := row.Scan(
		&rule.ID, &rule.ClientID, &rule.Name, &rule.Description, &rule.RuleType, &rule.Threshold,
		&rule.Amount, &rule.PerOccurrence, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt, &rule.ClientName,
	)
	return rule, err
}

// Create implements incentive.Repository.
func (r *incentiveRepository) Create(ctx context.Context, rule incentive.Rule) (incentive.Rule, error) {
	q := GetQuerier(ctx, r.db)

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	query := `
		INSERT INTO incentive_rules (id, client_id, name, description, rule_type, threshold, amount, per_occurrence, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.ID, rule.ClientID, rule.Name, rule.Description, rule.RuleType,
		rule.Threshold, rule.Amount, rule.PerOccurrence, rule.Active,
	).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return incentive.Rule{}, fmt.Errorf("failed to create incentive rule: %w", err)
	}

	return rule, nil
}

// GetByID implements incentive.Repository.
func (r *incentiveRepository) GetByID(ctx context.Context, id string) (incentive.Rule, error) {
	q := GetQuerier(ctx, r.db)

	rule, err := scanIncentive(q.QueryRow(ctx, incentiveSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incentive.Rule{}, incentive.ErrRuleNotFound
		}
		return incentive.Rule{}, fmt.Errorf("failed to get incentive rule: %w", err)
	}

	return rule, nil
}

// List implements incentive.Repository.
func (r *incentiveRepository) List(ctx context.Context) ([]incentive.Rule, error) {
	return r.list(ctx, incentiveSelect+` ORDER BY c.name, i.name`)
}

// ListActive implements incentive.Repository.
func (r *incentiveRepository) ListActive(ctx context.Context) ([]incentive.Rule, error) {
	return r.list(ctx, incentiveSelect+` WHERE i.active ORDER BY c.name, i.name`)
}

func (r *incentiveRepository) list(ctx context.Context, query string, args ...interface{}) ([]incentive.Rule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentive rules: %w", err)
	}
	defer rows.Close()

	var rules []incentive.Rule
	for rows.Next() {
		rule, err := scanIncentive(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incentive rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incentive rules: %w", err)
	}

	return rules, nil
}

// Update implements incentive.Repository.
func (r *incentiveRepository) Update(ctx context.Context, rule incentive.Rule) (incentive.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE incentive_rules
		SET client_id = $2, name = $3, description = $4, rule_type = $5, threshold = $6,
			amount = $7, per_occurrence = $8, active = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.ID, rule.ClientID, rule.Name, rule.Description, rule.RuleType,
		rule.Threshold, rule.Amount, rule.PerOccurrence, rule.Active,
	).Scan(&rule.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incentive.Rule{}, incentive.ErrRuleNotFound
		}
		return incentive.Rule{}, fmt.Errorf("failed to update incentive rule: %w", err)
	}

	return rule, nil
}

// Delete implements incentive.Repository.
func (r *incentiveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM incentive_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incentive rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return incentive.ErrRuleNotFound
	}

	return nil
}
