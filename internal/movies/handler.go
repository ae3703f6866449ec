package movies

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"movieranker/internal/tmdb"
	"movieranker/pkg/models"
)

type Handler struct {
	Repo *Repo
	TMDB *tmdb.Client
}

func NewHandler(repo *Repo, client *tmdb.Client) *Handler {
	return &Handler{Repo: repo, TMDB: client}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/edit", h.editForm)
	r.POST("/edit", h.editSubmit)
	r.GET("/delete", h.delete)
	r.GET("/add", h.addForm)
	r.POST("/add", h.addSubmit)
	r.GET("/find", h.find)
}

// ratingForm mirrors the edit page: both fields are required, the 0-10
// range is a UI hint only.
type ratingForm struct {
	Rating float64 `form:"rating" binding:"required"`
	Review string  `form:"review" binding:"required"`
}

type addMovieForm struct {
	Title string `form:"title" binding:"required"`
}

// home recomputes rankings and renders the list. The list is reversed
// before render, so the top-ranked movie ends up at the bottom of the
// page. That reproduces the source behavior on purpose; see DESIGN.md.
func (h *Handler) home(c *gin.Context) {
	all, err := h.Repo.RankAll(c.Request.Context())
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "could not load movies")
		return
	}

	reversed := make([]models.Movie, len(all))
	for i, m := range all {
		reversed[len(all)-1-i] = m
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"movies": reversed})
}

func (h *Handler) editForm(c *gin.Context) {
	id, ok := h.queryID(c, "id")
	if !ok {
		return
	}

	m, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "movie not found")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "could not load movie")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{"movie": m})
}

func (h *Handler) editSubmit(c *gin.Context) {
	id, ok := h.queryID(c, "id")
	if !ok {
		return
	}

	var form ratingForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, "rating and review are required")
		return
	}

	err := h.Repo.UpdateReview(c.Request.Context(), id, form.Rating, form.Review)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "movie not found")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "could not save review")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := h.queryID(c, "id")
	if !ok {
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "movie not found")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "could not delete movie")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) addForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", nil)
}

func (h *Handler) addSubmit(c *gin.Context) {
	var form addMovieForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, "movie title is required")
		return
	}

	results, err := h.TMDB.Search(c.Request.Context(), form.Title)
	if err != nil {
		h.renderError(c, http.StatusBadGateway, "movie search failed upstream")
		return
	}

	c.HTML(http.StatusOK, "select.html", gin.H{"movies": results})
}

// find imports one movie from the provider and routes straight into
// the edit form so the user can rate it.
func (h *Handler) find(c *gin.Context) {
	movieID, ok := h.queryID(c, "movie_id")
	if !ok {
		return
	}

	details, err := h.TMDB.Details(c.Request.Context(), movieID)
	if err != nil {
		h.renderError(c, http.StatusBadGateway, "could not fetch movie details upstream")
		return
	}

	movie := &models.Movie{
		Title:       details.Title,
		Year:        tmdb.YearFromReleaseDate(details.ReleaseDate),
		Description: details.Overview,
		ImgURL:      h.TMDB.PosterURL(details.PosterPath),
	}

	id, err := h.Repo.Insert(c.Request.Context(), movie)
	if err != nil {
		if errors.Is(err, ErrDuplicateTitle) {
			h.renderError(c, http.StatusConflict, "that movie is already in your list")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "could not save movie")
		return
	}

	c.Redirect(http.StatusFound, "/edit?id="+strconv.FormatInt(id, 10))
}

func (h *Handler) queryID(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		h.renderError(c, http.StatusBadRequest, name+" is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, name+" must be a number")
		return 0, false
	}
	return id, true
}

func (h *Handler) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{"message": msg})
}
