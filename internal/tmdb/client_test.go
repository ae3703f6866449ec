package tmdb

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieranker/pkg/utils"
)

const (
	testAPIBase   = "https://api.tmdb.test/3"
	testImageBase = "https://img.tmdb.test/w500"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c := NewClient(utils.TMDBConfig{
		APIKey:       "test-key",
		APIBaseURL:   testAPIBase,
		ImageBaseURL: testImageBase,
	})
	httpmock.ActivateNonDefault(c.HTTPClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestSearch_ReturnsResultsVerbatim(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testAPIBase+"/search/movie",
		httpmock.NewStringResponder(http.StatusOK, `{
			"results": [
				{"id": 27205, "title": "Inception", "release_date": "2010-07-15", "overview": "A thief...", "poster_path": "/incep.jpg"},
				{"id": 64956, "title": "Inception: The Cobol Job", "release_date": "2010-12-07", "overview": "Prequel."}
			]
		}`))

	results, err := c.Search(context.Background(), "Inception")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, int64(27205), results[0].ID)
	assert.Equal(t, "Inception", results[0].Title)
	assert.Equal(t, "/incep.jpg", results[0].PosterPath)
	assert.Equal(t, int64(64956), results[1].ID)
	assert.Empty(t, results[1].PosterPath)
}

func TestSearch_UpstreamStatusError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testAPIBase+"/search/movie",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"status_message": "Invalid API key"}`))

	_, err := c.Search(context.Background(), "Inception")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestSearch_InvalidJSON(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testAPIBase+"/search/movie",
		httpmock.NewStringResponder(http.StatusOK, `{invalid json`))

	_, err := c.Search(context.Background(), "Inception")
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "decode failure is not an upstream status error")
}

func TestDetails(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testAPIBase+"/movie/27205",
		httpmock.NewStringResponder(http.StatusOK, `{
			"id": 27205,
			"title": "Inception",
			"release_date": "2010-07-15",
			"overview": "A thief who steals corporate secrets.",
			"poster_path": "/incep.jpg"
		}`))

	d, err := c.Details(context.Background(), 27205)
	require.NoError(t, err)

	assert.Equal(t, int64(27205), d.ID)
	assert.Equal(t, "Inception", d.Title)
	assert.Equal(t, "2010-07-15", d.ReleaseDate)
	assert.Equal(t, "/incep.jpg", d.PosterPath)
}

func TestDetails_UpstreamStatusError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testAPIBase+"/movie/999",
		httpmock.NewStringResponder(http.StatusNotFound, `{"status_message": "not found"}`))

	_, err := c.Details(context.Background(), 999)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestPosterURL(t *testing.T) {
	c := newTestClient(t)

	assert.Equal(t, testImageBase+"/incep.jpg", c.PosterURL("/incep.jpg"))
	assert.Equal(t, PlaceholderPoster, c.PosterURL(""))
}

func TestYearFromReleaseDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int
	}{
		{"normal", "2010-07-15", 2010},
		{"year_only", "1999", 1999},
		{"empty", "", 0},
		{"too_short", "201", 0},
		{"garbage", "soon-ish", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearFromReleaseDate(tt.date))
		})
	}
}
