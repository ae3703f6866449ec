package models

// Movie is the single persistent entity: one row per movie in the
// user's collection. Rating, ranking and review stay nil until the
// user rates the movie; ranking is recomputed on every listing view
// and is meaningless between renders.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
	Ranking     *int     `json:"ranking,omitempty"`
	Review      *string  `json:"review,omitempty"`
	ImgURL      string   `json:"img_url,omitempty"`
}
