package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"movievault/internal/auth"
	"movievault/internal/authz"
	"movievault/internal/models"
	"movievault/internal/store"
)

type fileResp struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	Filetype string `json:"filetype"`
	Source   string `json:"source"`
	MovieID  int64  `json:"movie_id"`
	Uploaded int64  `json:"uploaded_by"`
}

func toFileResp(f *models.MovieFile) fileResp {
	return fileResp{
		ID: f.ID, Filename: f.Filename, Filetype: f.Filetype,
		Source: f.Source, MovieID: f.MovieID, Uploaded: f.UploadedBy,
	}
}

// UploadFile classifies the upload by content type and extension, stores it
// under a per-filetype sub-bucket, and records the file row.
func UploadFile(movies *store.MovieStore, assignments *store.AssignmentStore, files *store.FileStore, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		movieID, ok := pathID(c, "movie_id")
		if !ok {
			return
		}
		_, facts, err := movieFacts(c, movies, assignments, ident, movieID)
		if err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanFileAction(ident, authz.FileUpload, facts); err != nil {
			fail(c, err)
			return
		}

		source := c.PostForm("source")
		if source == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "source is required"})
			return
		}
		upload, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		contentType := upload.Header.Get("Content-Type")
		filetype, err := authz.ClassifyFile(contentType, upload.Filename)
		if err != nil {
			fail(c, err)
			return
		}

		dir := filepath.Join(uploadDir, filetype)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		savePath := filepath.Join(dir, filepath.Base(upload.Filename))
		if err := c.SaveUploadedFile(upload, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		meta, _ := json.Marshal(map[string]any{
			"content_type": contentType,
			"size_bytes":   upload.Size,
		})
		file := models.MovieFile{
			Filename:   filepath.Base(upload.Filename),
			Filepath:   savePath,
			Filetype:   filetype,
			Source:     source,
			MovieID:    movieID,
			UploadedBy: ident.UserID,
			Metadata:   datatypes.JSON(meta),
		}
		if err := files.Create(c, &file); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, toFileResp(&file))
	}
}

// ListFiles returns a movie's files, optionally filtered by ?source=.
func ListFiles(movies *store.MovieStore, assignments *store.AssignmentStore, files *store.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		movieID, ok := pathID(c, "movie_id")
		if !ok {
			return
		}
		_, facts, err := movieFacts(c, movies, assignments, ident, movieID)
		if err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanFileAction(ident, authz.FileList, facts); err != nil {
			fail(c, err)
			return
		}
		list, err := files.ListByMovie(c, movieID, c.Query("source"))
		if err != nil {
			fail(c, err)
			return
		}
		out := make([]fileResp, 0, len(list))
		for i := range list {
			out = append(out, toFileResp(&list[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

func DeleteFile(movies *store.MovieStore, assignments *store.AssignmentStore, files *store.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		fileID, ok := pathID(c, "file_id")
		if !ok {
			return
		}
		file, err := files.ByID(c, fileID)
		if err != nil {
			fail(c, err)
			return
		}
		_, facts, err := movieFacts(c, movies, assignments, ident, file.MovieID)
		if err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanFileAction(ident, authz.FileDelete, facts); err != nil {
			fail(c, err)
			return
		}
		if err := files.Delete(c, fileID); err != nil {
			fail(c, err)
			return
		}
		_ = os.Remove(file.Filepath)
		c.Status(http.StatusNoContent)
	}
}

func DownloadFile(movies *store.MovieStore, assignments *store.AssignmentStore, files *store.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		fileID, ok := pathID(c, "file_id")
		if !ok {
			return
		}
		file, err := files.ByID(c, fileID)
		if err != nil {
			fail(c, err)
			return
		}
		_, facts, err := movieFacts(c, movies, assignments, ident, file.MovieID)
		if err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanFileAction(ident, authz.FileDownload, facts); err != nil {
			fail(c, err)
			return
		}
		c.FileAttachment(file.Filepath, file.Filename)
	}
}
