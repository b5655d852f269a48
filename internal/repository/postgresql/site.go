package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagetrack/labour-backend-go/internal/domain/master/site"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.Repository {
	return &siteRepository{db: db}
}

const siteSelect = `
	SELECT s.id, s.client_id, s.name, s.address, s.status, s.created_at, s.updated_at, c.name
	FROM sites s
	LEFT JOIN clients c ON c.id = s.client_id`

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(&s.ID, &s.ClientID, &s.Name, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt, &s.ClientName)
	return s, err
}

// Create implements site.Repository.
func (r *siteRepository) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO sites (id, client_id, name, address, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.ClientID, s.Name, s.Address, s.Status).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s, nil
}

// GetByID implements site.Repository.
func (r *siteRepository) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSite(q.QueryRow(ctx, siteSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}

// List implements site.Repository.
func (r *siteRepository) List(ctx context.Context) ([]site.Site, error) {
	return r.list(ctx, siteSelect+` ORDER BY c.name, s.name`)
}

// ListByClient implements site.Repository.
func (r *siteRepository) ListByClient(ctx context.Context, clientID string) ([]site.Site, error) {
	return r.list(ctx, siteSelect+` WHERE s.client_id = $1 ORDER BY s.name`, clientID)
}

func (r *siteRepository) list(ctx context.Context, query string, args ...interface{}) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}

	return sites, nil
}

// Update implements site.Repository.
func (r *siteRepository) Update(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sites
		SET client_id = $2, name = $3, address = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.ClientID, s.Name, s.Address, s.Status).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to update site: %w", err)
	}

	return s, nil
}

// Delete implements site.Repository.
func (r *siteRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}

// HasAttendance implements site.Repository.
func (r *siteRepository) HasAttendance(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE site_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check site attendance: %w", err)
	}

	return exists, nil
}
