package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pressroom/internal/apperror"
	"pressroom/internal/models"
)

type SectionRepo interface {
	Create(ctx context.Context, s *models.Section) (int, error)
	Update(ctx context.Context, s *models.Section) error
	SetActive(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*models.Section, error)
	List(ctx context.Context, onlyActive bool) ([]*models.Section, error)
	ListWithCounts(ctx context.Context) ([]models.SectionWithCount, error)
}

type sectionRepo struct{ db *pgxpool.Pool }

func NewSectionRepo(db *pgxpool.Pool) SectionRepo { return &sectionRepo{db: db} }

func (r *sectionRepo) Create(ctx context.Context, s *models.Section) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO sections (name, description, is_active) VALUES ($1,$2,$3) RETURNING id`,
		s.Name, s.Description, s.IsActive,
	).Scan(&id)
	return id, err
}

func (r *sectionRepo) Update(ctx context.Context, s *models.Section) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sections SET name=$1, description=$2, is_active=$3, updated_at=NOW() WHERE id=$4`,
		s.Name, s.Description, s.IsActive, s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	return nil
}

func (r *sectionRepo) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sections SET is_active=$1, updated_at=NOW() WHERE id=$2`, active, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	return nil
}

func (r *sectionRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	return nil
}

func (r *sectionRepo) GetByID(ctx context.Context, id int) (*models.Section, error) {
	var s models.Section
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, is_active, created_at, updated_at FROM sections WHERE id=$1`, id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepo) List(ctx context.Context, onlyActive bool) ([]*models.Section, error) {
	q := `SELECT id, name, description, is_active, created_at, updated_at FROM sections`
	if onlyActive {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Section
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListWithCounts — разделы со счётчиком статей; счётчик нужен
// редакторской панели и барьеру удаления.
func (r *sectionRepo) ListWithCounts(ctx context.Context) ([]models.SectionWithCount, error) {
	const q = `
		SELECT s.id, s.name, s.description, s.is_active, s.created_at, s.updated_at,
		       COALESCE(a.cnt, 0)
		FROM sections s
		LEFT JOIN (
			SELECT section_id, COUNT(*) cnt FROM articles GROUP BY section_id
		) a ON a.section_id = s.id
		ORDER BY s.name
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SectionWithCount
	for rows.Next() {
		var sc models.SectionWithCount
		if err := rows.Scan(
			&sc.Section.ID, &sc.Section.Name, &sc.Section.Description,
			&sc.Section.IsActive, &sc.Section.CreatedAt, &sc.Section.UpdatedAt,
			&sc.ArticlesCount,
		); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
