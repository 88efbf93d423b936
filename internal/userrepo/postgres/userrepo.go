package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/alionaterguta/cine-verse/pkg/databases/postgres"
)

const (
	UsersTable = "users"

	uniqueViolation = "23505"

	userColumns = "id, username, hashed_password, email, birthdate, favorite_movies"

	usersDDL = `CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		email TEXT NOT NULL,
		birthdate TIMESTAMPTZ,
		favorite_movies TEXT[] NOT NULL DEFAULT '{}'
	)`
)

// PostgresUserRepository implements the credential store on PostgreSQL. The
// favorite list is a TEXT[] column so push and pull stay single-statement,
// matching the document store's atomic array updates.
type PostgresUserRepository struct {
	dbClient *postgres.PostgresDatabaseClient
}

// NewPostgresUserRepository creates a new PostgreSQL repository instance.
func NewPostgresUserRepository(dbClient *postgres.PostgresDatabaseClient) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &PostgresUserRepository{dbClient: dbClient}, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(s scanner) (*models.User, error) {
	var user models.User
	var birthdate sql.NullTime
	var favorites []string

	err := s.Scan(&user.ID, &user.Username, &user.HashedPassword,
		&user.Email, &birthdate, pq.Array(&favorites))
	if err != nil {
		return nil, err
	}
	if birthdate.Valid {
		t := birthdate.Time
		user.Birthdate = &t
	}
	user.FavoriteMovies = favorites
	return &user, nil
}

// AddUser saves a new user. The unique constraint on username is the sole
// source of the duplicate error.
func (r *PostgresUserRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	id := uuid.New().String()
	query := fmt.Sprintf(
		"INSERT INTO %s (id, username, hashed_password, email, birthdate) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		UsersTable) // #nosec G201 -- table name is a package constant

	var insertedID string
	err := r.dbClient.QueryRowContext(ctx, query,
		id, user.Username, user.HashedPassword, user.Email, user.Birthdate).Scan(&insertedID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && string(pgErr.Code) == uniqueViolation {
			return "", fmt.Errorf("%w: %s", models.ErrUserExists, user.Username)
		}
		return "", fmt.Errorf("failed to add user: %w", err)
	}
	return insertedID, nil
}

// GetUserByUsername retrieves a user record, or (nil, nil) when absent.
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE username = $1", userColumns, UsersTable) // #nosec G201

	user, err := scanUser(r.dbClient.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// ListUsers returns every stored user record.
func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", userColumns, UsersTable) // #nosec G201

	rows, err := r.dbClient.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating user rows: %w", err)
	}
	return users, nil
}

// UpdateUser sets the given storage fields and returns the updated record.
func (r *PostgresUserRepository) UpdateUser(ctx context.Context, username string, fields map[string]interface{}) (*models.User, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	// Deterministic column order for stable statements.
	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	setClauses := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns)+1)
	values = append(values, username)
	for i, col := range columns {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+2))
		values = append(values, fields[col])
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE username = $1 RETURNING %s",
		UsersTable, strings.Join(setClauses, ", "), userColumns) // #nosec G201

	user, err := scanUser(r.dbClient.QueryRowContext(ctx, query, values...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, username)
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && string(pgErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", models.ErrUserExists, username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// PushFavorite appends the title to the user's favorite list.
func (r *PostgresUserRepository) PushFavorite(ctx context.Context, username, title string) (*models.User, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET favorite_movies = array_append(favorite_movies, $2) WHERE username = $1 RETURNING %s",
		UsersTable, userColumns) // #nosec G201
	return r.favoriteUpdate(ctx, query, username, title)
}

// PullFavorite removes all occurrences of the title from the favorite list.
func (r *PostgresUserRepository) PullFavorite(ctx context.Context, username, title string) (*models.User, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET favorite_movies = array_remove(favorite_movies, $2) WHERE username = $1 RETURNING %s",
		UsersTable, userColumns) // #nosec G201
	return r.favoriteUpdate(ctx, query, username, title)
}

func (r *PostgresUserRepository) favoriteUpdate(ctx context.Context, query, username, title string) (*models.User, error) {
	user, err := scanUser(r.dbClient.QueryRowContext(ctx, query, username, title))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}
	return user, nil
}

// DeleteUserByID removes a user record by its store-assigned identifier.
func (r *PostgresUserRepository) DeleteUserByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		// An identifier that cannot parse resolves to no record.
		return fmt.Errorf("%w: %s", models.ErrUserNotFound, id)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", UsersTable) // #nosec G201
	res, err := r.dbClient.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", models.ErrUserNotFound, id)
	}
	return nil
}

// EnsureIndices creates the users table and its unique username constraint.
func (r *PostgresUserRepository) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, usersDDL)
}

// Close closes the PostgreSQL database connection.
func (r *PostgresUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
