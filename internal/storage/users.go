package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

const userColumns = `id, name, email, phone, password_hash, role, total_books_donated, badge, created_at, updated_at`

const (
	createUserQuery = `INSERT INTO content.users (id, name, email, phone, password_hash, role, total_books_donated, badge, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	getUserQuery           = `SELECT ` + userColumns + ` FROM content.users WHERE id = $1;`
	getUserForUpdateQuery  = `SELECT ` + userColumns + ` FROM content.users WHERE id = $1 FOR UPDATE;`
	getUserByEmailQuery    = `SELECT ` + userColumns + ` FROM content.users WHERE email = $1;`
	listUsersQuery         = `SELECT ` + userColumns + ` FROM content.users ORDER BY created_at;`
	setUserRoleQuery       = `UPDATE content.users SET role = $2, updated_at = NOW() WHERE id = $1;`
	updateUserDonatedQuery = `UPDATE content.users SET total_books_donated = $2, badge = $3, updated_at = $4 WHERE id = $1;`
)

func scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.Role,
		&user.TotalBooksDonated, &user.Badge, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new account. A duplicate email is reported as an invalid operation.
func (postgresql *PostgreSQL) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	_, err := postgresql.db.ExecContext(ctx, createUserQuery, user.ID, user.Name, user.Email, user.Phone,
		user.PasswordHash, user.Role, user.TotalBooksDonated, user.Badge, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, postgresql.queryFailed("createUserQuery", err)
	}
	return user, nil
}

// GetUser retrieves an account by its ID.
func (postgresql *PostgreSQL) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(postgresql.db.QueryRowContext(ctx, getUserQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getUserQuery", err)
	}
	return user, nil
}

// GetUserByEmail retrieves an account by its email address.
func (postgresql *PostgreSQL) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(postgresql.db.QueryRowContext(ctx, getUserByEmailQuery, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getUserByEmailQuery", err)
	}
	return user, nil
}

// ListUsers returns every account ordered by registration time.
func (postgresql *PostgreSQL) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := postgresql.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, postgresql.queryFailed("listUsersQuery", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, postgresql.queryFailed("listUsersQuery", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, postgresql.queryFailed("listUsersQuery", err)
	}
	return users, nil
}

// SetUserRole changes the role of an account.
func (postgresql *PostgreSQL) SetUserRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	result, err := postgresql.db.ExecContext(ctx, setUserRoleQuery, id, role)
	if err != nil {
		return postgresql.queryFailed("setUserRoleQuery", err)
	}
	return expectAffected(result, domain.NotFound("user not found"))
}

func (postgresql *PostgreSQL) lockUser(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(tx.QueryRowContext(ctx, getUserForUpdateQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getUserForUpdateQuery", err)
	}
	return user, nil
}
