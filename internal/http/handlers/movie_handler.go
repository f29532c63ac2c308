package handlers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"movievault/internal/auth"
	"movievault/internal/authz"
	"movievault/internal/models"
	"movievault/internal/store"
)

type movieInput struct {
	Title   string  `json:"title" binding:"required,min=3"`
	Hero    string  `json:"hero" binding:"required,min=2"`
	Heroine string  `json:"heroine" binding:"required,min=3"`
	Genre   string  `json:"genre" binding:"required,min=5"`
	Year    int     `json:"year" binding:"required,gte=1990"`
	Rating  float64 `json:"rating" binding:"gte=0,lte=10"`
}

type movieResp struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Hero    string  `json:"hero"`
	Heroine string  `json:"heroine"`
	Genre   string  `json:"genre"`
	Year    int     `json:"year"`
	Rating  float64 `json:"rating"`
}

func toMovieResp(m *models.Movie) movieResp {
	return movieResp{
		ID: m.ID, Title: m.Title, Hero: m.Hero, Heroine: m.Heroine,
		Genre: m.Genre, Year: m.Year, Rating: m.Rating,
	}
}

func toMovieResps(list []models.Movie) []movieResp {
	out := make([]movieResp, 0, len(list))
	for i := range list {
		out = append(out, toMovieResp(&list[i]))
	}
	return out
}

// movieFacts loads the movie and the decision inputs for it: creator role
// and whether the requester holds an assignment.
func movieFacts(c *gin.Context, movies *store.MovieStore, assignments *store.AssignmentStore, ident authz.Identity, movieID int64) (*models.Movie, authz.MovieFacts, error) {
	movie, err := movies.ByID(c, movieID)
	if err != nil {
		return nil, authz.MovieFacts{}, err
	}
	assigned, err := assignments.IsAssigned(c, movie.ID, ident.UserID)
	if err != nil {
		return nil, authz.MovieFacts{}, err
	}
	facts := authz.MovieFacts{CreatedBy: movie.CreatedBy, Assigned: assigned}
	if movie.Creator != nil && movie.Creator.Role != nil {
		facts.CreatorRole = authz.Role(movie.Creator.Role.Name)
	}
	return movie, facts, nil
}

// CreateMovie records the creator and triggers the auto-assignment batch.
func CreateMovie(movies *store.MovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err := authz.CanCreateMovie(ident); err != nil {
			fail(c, err)
			return
		}
		var in movieInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		movie := models.Movie{
			Title: in.Title, Hero: in.Hero, Heroine: in.Heroine,
			Genre: in.Genre, Year: in.Year, Rating: in.Rating,
		}
		if err := movies.Create(c, &movie, ident); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, toMovieResp(&movie))
	}
}

func ListMovies(movies *store.MovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		list, err := movies.List(c, authz.VisibleMovies(ident))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toMovieResps(list))
	}
}

func GetMovie(movies *store.MovieStore, assignments *store.AssignmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		movie, facts, err := movieFacts(c, movies, assignments, ident, id)
		if err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanReadMovie(ident, facts); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toMovieResp(movie))
	}
}

// MoviesByYear is a list-class read, so the movie visibility scope applies.
func MoviesByYear(movies *store.MovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		year, err := strconv.Atoi(c.Param("year"))
		if err != nil || year < 1990 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		list, err := movies.ListByYear(c, authz.VisibleMovies(ident), year)
		if err != nil {
			fail(c, err)
			return
		}
		if len(list) == 0 {
			notFound(c, "movies for year "+c.Param("year"))
			return
		}
		c.JSON(http.StatusOK, toMovieResps(list))
	}
}

func MoviesByRating(movies *store.MovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		rating, err := strconv.ParseFloat(c.Param("rating"), 64)
		if err != nil || rating < 0 || rating > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating"})
			return
		}
		list, err := movies.ListByRating(c, authz.VisibleMovies(ident), rating)
		if err != nil {
			fail(c, err)
			return
		}
		if len(list) == 0 {
			notFound(c, "movies for rating "+c.Param("rating"))
			return
		}
		c.JSON(http.StatusOK, toMovieResps(list))
	}
}

func UpdateMovie(movies *store.MovieStore, assignments *store.AssignmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in movieInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		_, facts, err := movieFacts(c, movies, assignments, ident, id)
		if err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanMutateMovie(ident, facts); err != nil {
			fail(c, err)
			return
		}
		updated, err := movies.Update(c, id, &models.Movie{
			Title: in.Title, Hero: in.Hero, Heroine: in.Heroine,
			Genre: in.Genre, Year: in.Year, Rating: in.Rating,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toMovieResp(updated))
	}
}

// DeleteMovie cascades to assignments and file rows; disk cleanup happens
// best-effort after the transaction commits.
func DeleteMovie(movies *store.MovieStore, assignments *store.AssignmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		_, facts, err := movieFacts(c, movies, assignments, ident, id)
		if err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanMutateMovie(ident, facts); err != nil {
			fail(c, err)
			return
		}
		paths, err := movies.Delete(c, id)
		if err != nil {
			fail(c, err)
			return
		}
		for _, p := range paths {
			_ = os.Remove(p)
		}
		c.Status(http.StatusNoContent)
	}
}
