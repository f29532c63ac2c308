package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"movievault/internal/auth"
	"movievault/internal/config"
	"movievault/internal/http/handlers"
	"movievault/internal/store"
)

// NewRouter wires the stores and the two-credential middleware chain: every
// route needs the service API key, and everything past /auth additionally
// needs a bearer token.
func NewRouter(gdb *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	users := store.NewUserStore(gdb)
	roles := store.NewRoleStore(gdb)
	movies := store.NewMovieStore(gdb)
	assignments := store.NewAssignmentStore(gdb)
	files := store.NewFileStore(gdb)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "API is up and running"})
	})

	apiKey := auth.APIKey(cfg.APIKey)

	authGroup := r.Group("/auth", apiKey)
	{
		authGroup.POST("/register", handlers.Register(users, roles))
		authGroup.POST("/token", handlers.Login(users, cfg.JWTSecret, cfg.TokenTTL))
	}

	protected := r.Group("", apiKey, auth.JWT(cfg.JWTSecret))
	{
		u := protected.Group("/users")
		u.GET("", handlers.ListUsers(users))
		u.GET("/:id", handlers.GetUser(users))
		u.PUT("/:id", handlers.UpdateUser(users, roles))
		u.DELETE("/:id", handlers.DeleteUser(users))

		m := protected.Group("/movies")
		m.POST("/create", handlers.CreateMovie(movies))
		m.GET("", handlers.ListMovies(movies))
		m.GET("/:id", handlers.GetMovie(movies, assignments))
		m.GET("/year/:year", handlers.MoviesByYear(movies))
		m.GET("/rating/:rating", handlers.MoviesByRating(movies))
		m.PUT("/update/:id", handlers.UpdateMovie(movies, assignments))
		m.DELETE("/:id", handlers.DeleteMovie(movies, assignments))
		m.POST("/assign", handlers.AssignMovie(movies, users, assignments))
		m.GET("/assignments", handlers.ListAssignments(assignments))

		f := protected.Group("/files")
		f.POST("/movies/:movie_id/upload", handlers.UploadFile(movies, assignments, files, cfg.UploadDir))
		f.GET("/movies/:movie_id/files", handlers.ListFiles(movies, assignments, files))
		f.DELETE("/:file_id", handlers.DeleteFile(movies, assignments, files))
		f.GET("/download/:file_id", handlers.DownloadFile(movies, assignments, files))
	}

	return r
}
