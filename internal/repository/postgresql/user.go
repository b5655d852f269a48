package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wagetrack/labour-backend-go/internal/domain/user"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

const userColumns = `
	id, username, name, role, pin_hash, monthly_wage, designation,
	phone, passport_id, to_char(date_of_joining, 'YYYY-MM-DD'), status,
	created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Name, &u.Role, &u.PINHash, &u.MonthlyWage, &u.Designation,
		&u.Phone, &u.PassportID, &u.DateOfJoining, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (
			id, username, name, role, pin_hash, monthly_wage, designation,
			phone, passport_id, date_of_joining, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.ID, u.Username, u.Name, u.Role, u.PINHash, u.MonthlyWage, u.Designation,
		u.Phone, u.PassportID, u.DateOfJoining, u.Status,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// GetByUsername implements user.Repository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// ListByRole implements user.Repository.
func (r *userRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + ` FROM users WHERE role = $1 ORDER BY name`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// NextLabourUsername implements user.Repository. Labour usernames are numeric
// codes handed out sequentially starting at 1001.
func (r *userRepository) NextLabourUsername(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(username::int), 1000) + 1
		FROM users
		WHERE role = 'labour' AND username ~ '^\d+$'
	`

	var next int
	if err := q.QueryRow(ctx, query).Scan(&next); err != nil {
		return "", fmt.Errorf("failed to get next labour username: %w", err)
	}

	return fmt.Sprintf("%d", next), nil
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $2, monthly_wage = $3, designation = $4, phone = $5,
			passport_id = $6, date_of_joining = $7, status = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		u.ID, u.Name, u.MonthlyWage, u.Designation, u.Phone,
		u.PassportID, u.DateOfJoining, u.Status,
	).Scan(&u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// UpdatePINHash implements user.Repository.
func (r *userRepository) UpdatePINHash(ctx context.Context, id, pinHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET pin_hash = $2, updated_at = NOW() WHERE id = $1`, id, pinHash)
	if err != nil {
		return fmt.Errorf("failed to update pin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.Repository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// HasAttendance implements user.Repository.
func (r *userRepository) HasAttendance(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE labour_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}
