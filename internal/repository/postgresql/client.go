package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wagetrack/labour-backend-go/internal/domain/master/client"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.Repository {
	return &clientRepository{db: db}
}

// Create implements client.Repository.
func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO clients (id, name, address, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.ID, c.Name, c.Address, c.Status).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrClientNameExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

// GetByID implements client.Repository.
func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, address, status, created_at, updated_at FROM clients WHERE id = $1`

	var c client.Client
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

// GetByName implements client.Repository.
func (r *clientRepository) GetByName(ctx context.Context, name string) (*client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, address, status, created_at, updated_at FROM clients WHERE LOWER(name) = LOWER($1)`

	var c client.Client
	err := q.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client by name: %w", err)
	}

	return &c, nil
}

// List implements client.Repository.
func (r *clientRepository) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, address, status, created_at, updated_at FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// Update implements client.Repository.
func (r *clientRepository) Update(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $2, address = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, c.ID, c.Name, c.Address, c.Status).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrClientNameExists
		}
		return client.Client{}, fmt.Errorf("failed to update client: %w", err)
	}

	return c, nil
}

// Delete implements client.Repository.
func (r *clientRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

// HasAttendance implements client.Repository.
func (r *clientRepository) HasAttendance(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE client_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check client attendance: %w", err)
	}

	return exists, nil
}
