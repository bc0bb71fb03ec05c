package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/capturely/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const adminColumns = `id, first_name, last_name, email, mobile, role, department,
	start_date, status, notes, permissions, password_hash, last_login, created_at, updated_at`

type adminRepo struct{}

// NewAdminRepository returns a pgx-backed AdminRepository.
func NewAdminRepository() AdminRepository {
	return &adminRepo{}
}

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *adminRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Admin, error) {
	row := db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	return scanAdmin(row)
}

func (r *adminRepo) FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Admin, error) {
	row := db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
	return scanAdmin(row)
}

func (r *adminRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Admin, error) {
	row := tx.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1 FOR UPDATE`, id)
	return scanAdmin(row)
}

func (r *adminRepo) Create(ctx context.Context, db DBTX, admin *domain.Admin) error {
	_, err := db.Exec(ctx, `
		INSERT INTO admins (id, first_name, last_name, email, mobile, role, department,
			start_date, status, notes, permissions, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		admin.ID,
		admin.FirstName,
		admin.LastName,
		admin.Email,
		admin.Mobile,
		string(admin.Role),
		admin.Department,
		admin.StartDate,
		admin.Status,
		admin.Notes,
		permissionStrings(admin.Permissions),
		admin.PasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail(admin.Email)
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (r *adminRepo) Update(ctx context.Context, db DBTX, admin *domain.Admin) error {
	_, err := db.Exec(ctx, `
		UPDATE admins SET first_name = $2, last_name = $3, email = $4, mobile = $5,
			role = $6, department = $7, start_date = $8, notes = $9,
			permissions = $10, updated_at = now()
		WHERE id = $1`,
		admin.ID,
		admin.FirstName,
		admin.LastName,
		admin.Email,
		admin.Mobile,
		string(admin.Role),
		admin.Department,
		admin.StartDate,
		admin.Notes,
		permissionStrings(admin.Permissions),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail(admin.Email)
		}
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

func (r *adminRepo) UpdateStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) error {
	_, err := db.Exec(ctx, `UPDATE admins SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update admin status: %w", err)
	}
	return nil
}

func (r *adminRepo) RecordLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `UPDATE admins SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

func (r *adminRepo) Delete(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete admin: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *adminRepo) List(ctx context.Context, db DBTX) ([]*domain.Admin, error) {
	rows, err := db.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []*domain.Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *adminRepo) CountByStatus(ctx context.Context, db DBTX) (map[string]int, error) {
	return countByStatus(ctx, db, "admins")
}

func countByStatus(ctx context.Context, db DBTX, table string) (map[string]int, error) {
	rows, err := db.Query(ctx, `SELECT status, count(*) FROM `+table+` GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count %s by status: %w", table, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func permissionStrings(perms []domain.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	var perms []string
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Mobile, &a.Role,
		&a.Department, &a.StartDate, &a.Status, &a.Notes, &perms,
		&a.PasswordHash, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	a.FullName = a.FirstName + " " + a.LastName
	a.Permissions = make([]domain.Permission, len(perms))
	for i, p := range perms {
		a.Permissions[i] = domain.Permission(p)
	}
	return &a, nil
}
