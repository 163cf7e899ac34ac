package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/Saby007/go-microservices-demo/internal/domain/errors"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
)

const userColumns = `id, name, email, department, created_at`

// UserStorage implements repository.UserRepository backed by PostgreSQL.
type UserStorage struct {
	pool   pgxPool
	logger *slog.Logger
}

// NewUserStorage connects to the user database and initializes its schema.
func NewUserStorage(ctx context.Context, dsn string, logger *slog.Logger) (*UserStorage, error) {
	pool, err := connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	storage := &UserStorage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *UserStorage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *UserStorage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            department TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_department ON users(department)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Create inserts the user and returns it with its assigned id.
func (s *UserStorage) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, department) VALUES ($1, $2, $3)
                   RETURNING id, created_at`
	stored := *user
	err := s.pool.QueryRow(ctx, query, user.Name, user.Email, user.Department).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &stored, nil
}

// GetByID returns the user with the given id.
func (s *UserStorage) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return s.queryUser(ctx, query, id)
}

// GetByEmail returns the user with the given email.
func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return s.queryUser(ctx, query, email)
}

func (s *UserStorage) queryUser(ctx context.Context, query string, args ...any) (*model.User, error) {
	var u model.User
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Name, &u.Email, &u.Department, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all user records.
func (s *UserStorage) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return s.queryUsers(ctx, query)
}

// ListByDepartment returns users belonging to the given department.
func (s *UserStorage) ListByDepartment(ctx context.Context, department string) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE department=$1 ORDER BY id`
	return s.queryUsers(ctx, query, department)
}

// Search returns users whose name or email contains the query.
func (s *UserStorage) Search(ctx context.Context, search string) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
              WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
              ORDER BY id`
	return s.queryUsers(ctx, query, search)
}

func (s *UserStorage) queryUsers(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Department, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces mutable user fields wholesale.
func (s *UserStorage) Update(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `UPDATE users SET name=$2, email=$3, department=$4 WHERE id=$1 RETURNING created_at`
	stored := *user
	err := s.pool.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.Department).
		Scan(&stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

// Delete removes the user with the given id.
func (s *UserStorage) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// SeedDemoData inserts the sample user rows when the table is empty.
func (s *UserStorage) SeedDemoData(ctx context.Context) error {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []model.User{
		{Name: "John Doe", Email: "john.doe@company.com", Department: "Engineering"},
		{Name: "Jane Smith", Email: "jane.smith@company.com", Department: "Marketing"},
		{Name: "Mike Johnson", Email: "mike.johnson@company.com", Department: "Engineering"},
		{Name: "Sarah Wilson", Email: "sarah.wilson@company.com", Department: "Sales"},
		{Name: "David Brown", Email: "david.brown@company.com", Department: "HR"},
		{Name: "Emily Davis", Email: "emily.davis@company.com", Department: "Engineering"},
	}
	for _, u := range samples {
		if _, err := s.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
	}

	s.logger.Info("sample user data initialized", slog.Int("count", len(samples)))
	return nil
}

// HealthCheck verifies database connectivity.
func (s *UserStorage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
