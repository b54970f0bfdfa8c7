package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

const schoolColumns = `id, name, street, city, state, zip_code, contact_name, contact_phone, contact_email,
	students_count, total_books_received, created_at, updated_at`

const (
	createSchoolQuery = `INSERT INTO content.schools (id, name, street, city, state, zip_code, contact_name, contact_phone,
		contact_email, students_count, total_books_received, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	getSchoolForUpdateQuery = `SELECT ` + schoolColumns + ` FROM content.schools WHERE id = $1 FOR UPDATE;`
	listSchoolsQuery        = `SELECT ` + schoolColumns + ` FROM content.schools ORDER BY name;`
	updateSchoolTotalQuery  = `UPDATE content.schools SET total_books_received = $2, updated_at = $3 WHERE id = $1;`
)

func scanSchool(row scanner) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(&school.ID, &school.Name, &school.Address.Street, &school.Address.City, &school.Address.State,
		&school.Address.ZipCode, &school.ContactPerson.Name, &school.ContactPerson.Phone, &school.ContactPerson.Email,
		&school.StudentsCount, &school.TotalBooksReceived, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return school, nil
}

// CreateSchool registers a recipient school.
func (postgresql *PostgreSQL) CreateSchool(ctx context.Context, school *models.School) (*models.School, error) {
	_, err := postgresql.db.ExecContext(ctx, createSchoolQuery, school.ID, school.Name,
		school.Address.Street, school.Address.City, school.Address.State, school.Address.ZipCode,
		school.ContactPerson.Name, school.ContactPerson.Phone, school.ContactPerson.Email,
		school.StudentsCount, school.TotalBooksReceived, school.CreatedAt, school.UpdatedAt)
	if err != nil {
		return nil, postgresql.queryFailed("createSchoolQuery", err)
	}
	return school, nil
}

// ListSchools returns every school ordered by name.
func (postgresql *PostgreSQL) ListSchools(ctx context.Context) ([]models.School, error) {
	rows, err := postgresql.db.QueryContext(ctx, listSchoolsQuery)
	if err != nil {
		return nil, postgresql.queryFailed("listSchoolsQuery", err)
	}
	defer rows.Close()

	schools := make([]models.School, 0)
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, postgresql.queryFailed("listSchoolsQuery", err)
		}
		schools = append(schools, *school)
	}
	if err := rows.Err(); err != nil {
		return nil, postgresql.queryFailed("listSchoolsQuery", err)
	}
	return schools, nil
}

func (postgresql *PostgreSQL) lockSchool(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*models.School, error) {
	school, err := scanSchool(tx.QueryRowContext(ctx, getSchoolForUpdateQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("school not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getSchoolForUpdateQuery", err)
	}
	return school, nil
}
