package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pressroom/internal/apperror"
	"pressroom/internal/models"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id int64) error
	ListByAuthor(ctx context.Context, authorName string) ([]*models.Article, error)
	ListByStates(ctx context.Context, states ...models.ArticleState) ([]*models.Article, error)
	ListPublished(ctx context.Context, f models.FeedFilter) ([]*models.FeedItem, error)
	GetPublishedByID(ctx context.Context, id int64) (*models.FeedItem, error)
	CountBySection(ctx context.Context, sectionID int) (int, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, title, subtitle, body, author_name, section_id, image_url, featured, state, created_at, updated_at`

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		INSERT INTO articles (title, subtitle, body, author_name, section_id, image_url, featured, state)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING ` + articleColumns

	var out models.Article
	err := r.db.QueryRow(ctx, q,
		a.Title,
		a.Subtitle,
		a.Body,
		a.AuthorName,
		a.SectionID, // *int (nullable)
		a.ImageURL,
		a.Featured,
		a.State,
	).Scan(
		&out.ID, &out.Title, &out.Subtitle, &out.Body, &out.AuthorName,
		&out.SectionID, &out.ImageURL, &out.Featured, &out.State,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE id=$1`

	var a models.Article
	err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Subtitle, &a.Body, &a.AuthorName,
		&a.SectionID, &a.ImageURL, &a.Featured, &a.State,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.New(apperror.KindNotFound, "статья не найдена")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update сохраняет поля и состояние; created_at и author_name не трогаем.
func (r *articleRepo) Update(ctx context.Context, a *models.Article) error {
	const q = `
		UPDATE articles
		SET title=$1, subtitle=$2, body=$3, section_id=$4, image_url=$5,
		    featured=$6, state=$7, updated_at=NOW()
		WHERE id=$8
	`
	tag, err := r.db.Exec(ctx, q,
		a.Title, a.Subtitle, a.Body, a.SectionID, a.ImageURL, a.Featured, a.State, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.KindNotFound, "статья не найдена")
	}
	return nil
}

func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.KindNotFound, "статья не найдена")
	}
	return nil
}

func (r *articleRepo) ListByAuthor(ctx context.Context, authorName string) ([]*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE author_name=$1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, authorName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *articleRepo) ListByStates(ctx context.Context, states ...models.ArticleState) ([]*models.Article, error) {
	vals := make([]string, 0, len(states))
	for _, s := range states {
		vals = append(vals, string(s))
	}
	q := `SELECT ` + articleColumns + ` FROM articles WHERE state = ANY($1) ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, vals)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// ListPublished — публичная лента: только опубликованные статьи
// активных разделов, свежие первыми.
func (r *articleRepo) ListPublished(ctx context.Context, f models.FeedFilter) ([]*models.FeedItem, error) {
	const qBase = `
		SELECT a.id, a.title, a.subtitle, a.body, a.author_name, a.section_id, a.image_url,
		       a.featured, a.state, a.created_at, a.updated_at, s.name
		FROM articles a
		JOIN sections s ON s.id = a.section_id AND s.is_active = true
	`
	where := []string{"a.state = $1"}
	args := []interface{}{string(models.StatePublished)}
	i := 2

	if f.FeaturedOnly {
		where = append(where, fmt.Sprintf("a.featured = $%d", i))
		args = append(args, true)
		i++
	}
	if f.SectionName != "" {
		where = append(where, fmt.Sprintf("s.name = $%d", i))
		args = append(args, f.SectionName)
		i++
	}

	q := qBase + " WHERE " + strings.Join(where, " AND ") + " ORDER BY a.created_at DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.FeedItem
	for rows.Next() {
		var it models.FeedItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Subtitle, &it.Body, &it.AuthorName,
			&it.SectionID, &it.ImageURL, &it.Featured, &it.State,
			&it.CreatedAt, &it.UpdatedAt, &it.SectionName,
		); err != nil {
			return nil, err
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetPublishedByID — карточка статьи для публичной части; скрытые
// и снятые статьи отдаются как NotFound.
func (r *articleRepo) GetPublishedByID(ctx context.Context, id int64) (*models.FeedItem, error) {
	const q = `
		SELECT a.id, a.title, a.subtitle, a.body, a.author_name, a.section_id, a.image_url,
		       a.featured, a.state, a.created_at, a.updated_at, s.name
		FROM articles a
		JOIN sections s ON s.id = a.section_id AND s.is_active = true
		WHERE a.id=$1 AND a.state=$2
	`
	var it models.FeedItem
	err := r.db.QueryRow(ctx, q, id, string(models.StatePublished)).Scan(
		&it.ID, &it.Title, &it.Subtitle, &it.Body, &it.AuthorName,
		&it.SectionID, &it.ImageURL, &it.Featured, &it.State,
		&it.CreatedAt, &it.UpdatedAt, &it.SectionName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.New(apperror.KindNotFound, "статья не найдена")
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *articleRepo) CountBySection(ctx context.Context, sectionID int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE section_id=$1`, sectionID).Scan(&n)
	return n, err
}

func scanArticles(rows pgx.Rows) ([]*models.Article, error) {
	var list []*models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Subtitle, &a.Body, &a.AuthorName,
			&a.SectionID, &a.ImageURL, &a.Featured, &a.State,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
