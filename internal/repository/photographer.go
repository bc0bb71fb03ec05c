package repository

import (
	"context"
	"fmt"

	"github.com/capturely/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const photographerColumns = `id, full_name, email, mobile, hired_date, experience_years,
	specialization, location, portfolio_url, bio, equipment, hourly_rate_cents,
	rating, status, created_at, updated_at`

type photographerRepo struct{}

// NewPhotographerRepository returns a pgx-backed PhotographerRepository.
func NewPhotographerRepository() PhotographerRepository {
	return &photographerRepo{}
}

func (r *photographerRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Photographer, error) {
	row := db.QueryRow(ctx, `SELECT `+photographerColumns+` FROM photographers WHERE id = $1`, id)
	return scanPhotographer(row)
}

func (r *photographerRepo) FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Photographer, error) {
	row := db.QueryRow(ctx, `SELECT `+photographerColumns+` FROM photographers WHERE email = $1`, email)
	return scanPhotographer(row)
}

func (r *photographerRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Photographer, error) {
	row := tx.QueryRow(ctx, `SELECT `+photographerColumns+` FROM photographers WHERE id = $1 FOR UPDATE`, id)
	return scanPhotographer(row)
}

func (r *photographerRepo) Create(ctx context.Context, db DBTX, p *domain.Photographer) error {
	_, err := db.Exec(ctx, `
		INSERT INTO photographers (id, full_name, email, mobile, hired_date, experience_years,
			specialization, location, portfolio_url, bio, equipment, hourly_rate_cents,
			rating, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID,
		p.FullName,
		p.Email,
		p.Mobile,
		p.HiredDate,
		p.ExperienceYears,
		p.Specialization,
		p.Location,
		p.PortfolioURL,
		p.Bio,
		p.Equipment,
		p.HourlyRateCents,
		p.Rating,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail(p.Email)
		}
		return fmt.Errorf("insert photographer: %w", err)
	}
	return nil
}

func (r *photographerRepo) Update(ctx context.Context, db DBTX, p *domain.Photographer) error {
	_, err := db.Exec(ctx, `
		UPDATE photographers SET full_name = $2, email = $3, mobile = $4, hired_date = $5,
			experience_years = $6, specialization = $7, location = $8, portfolio_url = $9,
			bio = $10, equipment = $11, hourly_rate_cents = $12, updated_at = now()
		WHERE id = $1`,
		p.ID,
		p.FullName,
		p.Email,
		p.Mobile,
		p.HiredDate,
		p.ExperienceYears,
		p.Specialization,
		p.Location,
		p.PortfolioURL,
		p.Bio,
		p.Equipment,
		p.HourlyRateCents,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail(p.Email)
		}
		return fmt.Errorf("update photographer: %w", err)
	}
	return nil
}

func (r *photographerRepo) UpdateStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) error {
	_, err := db.Exec(ctx, `UPDATE photographers SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update photographer status: %w", err)
	}
	return nil
}

func (r *photographerRepo) Delete(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM photographers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete photographer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *photographerRepo) List(ctx context.Context, db DBTX) ([]*domain.Photographer, error) {
	rows, err := db.Query(ctx, `SELECT `+photographerColumns+` FROM photographers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list photographers: %w", err)
	}
	return collectPhotographers(rows)
}

func (r *photographerRepo) ListByStatus(ctx context.Context, db DBTX, status string) ([]*domain.Photographer, error) {
	rows, err := db.Query(ctx, `
		SELECT `+photographerColumns+` FROM photographers
		WHERE status = $1 ORDER BY created_at, id`, status)
	if err != nil {
		return nil, fmt.Errorf("list photographers by status: %w", err)
	}
	return collectPhotographers(rows)
}

func (r *photographerRepo) CountByStatus(ctx context.Context, db DBTX) (map[string]int, error) {
	return countByStatus(ctx, db, "photographers")
}

func collectPhotographers(rows pgx.Rows) ([]*domain.Photographer, error) {
	defer rows.Close()
	var photographers []*domain.Photographer
	for rows.Next() {
		p, err := scanPhotographer(rows)
		if err != nil {
			return nil, err
		}
		photographers = append(photographers, p)
	}
	return photographers, rows.Err()
}

func scanPhotographer(row pgx.Row) (*domain.Photographer, error) {
	var p domain.Photographer
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Mobile, &p.HiredDate, &p.ExperienceYears,
		&p.Specialization, &p.Location, &p.PortfolioURL, &p.Bio, &p.Equipment,
		&p.HourlyRateCents, &p.Rating, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan photographer: %w", err)
	}
	return &p, nil
}
