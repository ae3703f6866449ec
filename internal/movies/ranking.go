package movies

import (
	"context"
	"fmt"

	"movieranker/pkg/models"
)

// RankAll recomputes the dense rank of every movie and persists it.
// It runs on every listing view: read all rows ordered by descending
// rating (unrated last), assign ranking = position + 1, write every
// ranking back in one transaction. O(N) per view, which is fine at the
// size of a personal collection.
//
// The returned slice is in ranking order (rank 1 first).
func (r *Repo) RankAll(ctx context.Context) ([]models.Movie, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE movies
		SET ranking = ?
		WHERE id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare ranking stmt: %w", err)
	}
	defer stmt.Close()

	for i := range all {
		rank := i + 1
		if _, err := stmt.ExecContext(ctx, rank, all[i].ID); err != nil {
			return nil, fmt.Errorf("exec ranking for %d: %w", all[i].ID, err)
		}
		all[i].Ranking = &rank
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return all, nil
}
