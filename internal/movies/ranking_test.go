package movies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankAll_DenseRankNullsLast(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	insertMovie(t, repo, "A", ratingOf(9.0))
	insertMovie(t, repo, "B", ratingOf(7.0))
	insertMovie(t, repo, "C", nil)

	ranked, err := repo.RankAll(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	want := map[string]int{"A": 1, "B": 2, "C": 3}
	for _, m := range ranked {
		require.NotNil(t, m.Ranking, "ranking must be assigned for %s", m.Title)
		assert.Equal(t, want[m.Title], *m.Ranking)
	}

	// rankings are persisted, not just in-memory
	for _, m := range ranked {
		got, err := repo.GetByID(ctx, m.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Ranking)
		assert.Equal(t, want[m.Title], *got.Ranking)
	}
}

func TestRankAll_DenseSequence(t *testing.T) {
	repo := NewRepo(openTestDB(t))

	titles := []string{"V", "W", "X", "Y", "Z"}
	ratings := []float64{3.1, 9.9, 5.5, 7.2, 1.0}
	for i, title := range titles {
		insertMovie(t, repo, title, ratingOf(ratings[i]))
	}

	ranked, err := repo.RankAll(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, len(titles))

	for i, m := range ranked {
		require.NotNil(t, m.Ranking)
		assert.Equal(t, i+1, *m.Ranking, "rank %d must go to position %d", i+1, i)
		if i > 0 {
			require.NotNil(t, ranked[i-1].Rating)
			require.NotNil(t, m.Rating)
			assert.GreaterOrEqual(t, *ranked[i-1].Rating, *m.Rating)
		}
	}
}

func TestRankAll_RecomputedAfterEdit(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	idA := insertMovie(t, repo, "A", ratingOf(9.0))
	insertMovie(t, repo, "B", ratingOf(7.0))

	_, err := repo.RankAll(ctx)
	require.NoError(t, err)

	// demote A below B, then re-rank
	require.NoError(t, repo.UpdateReview(ctx, idA, 5.0, "not as good on rewatch"))

	ranked, err := repo.RankAll(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "B", ranked[0].Title)
	assert.Equal(t, 1, *ranked[0].Ranking)
	assert.Equal(t, "A", ranked[1].Title)
	assert.Equal(t, 2, *ranked[1].Ranking)
}

func TestRankAll_EmptyStore(t *testing.T) {
	repo := NewRepo(openTestDB(t))

	ranked, err := repo.RankAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
