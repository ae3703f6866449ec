package movies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"movieranker/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const movieColumns = `id, title, year, description, rating, ranking, review, img_url`

func (r *Repo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+movieColumns+`
		FROM movies
		WHERE id = ?
	`, id)

	m, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return m, nil
}

// List returns every movie ordered by descending rating; unrated
// movies sort last.
func (r *Repo) List(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+movieColumns+`
		FROM movies
		ORDER BY rating IS NULL, rating DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	var out []models.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// Insert adds a freshly imported movie. Rating, ranking and review
// start out unset.
func (r *Repo) Insert(ctx context.Context, m *models.Movie) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO movies (title, year, description, rating, ranking, review, img_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.Title, m.Year, m.Description, m.Rating, m.Ranking, m.Review, m.ImgURL)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, ErrDuplicateTitle
		}
		return 0, fmt.Errorf("insert movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// UpdateReview overwrites rating and review for one movie.
// Last write wins; there is no conflict detection.
func (r *Repo) UpdateReview(ctx context.Context, id int64, rating float64, review string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE movies
		SET rating = ?, review = ?
		WHERE id = ?
	`, rating, review, id)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM movies
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*models.Movie, error) {
	var (
		m       models.Movie
		rating  sql.NullFloat64
		ranking sql.NullInt64
		review  sql.NullString
		imgURL  sql.NullString
	)

	if err := row.Scan(
		&m.ID, &m.Title, &m.Year, &m.Description, &rating, &ranking, &review, &imgURL,
	); err != nil {
		return nil, err
	}

	if rating.Valid {
		v := rating.Float64
		m.Rating = &v
	}
	if ranking.Valid {
		v := int(ranking.Int64)
		m.Ranking = &v
	}
	if review.Valid {
		v := review.String
		m.Review = &v
	}
	m.ImgURL = imgURL.String

	return &m, nil
}
