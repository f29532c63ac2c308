package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movievault/internal/auth"
	"movievault/internal/authz"
	"movievault/internal/models"
	"movievault/internal/store"
)

// AssignMovie grants or revokes a (movie, user) assignment depending on the
// assigned flag. The super_admin-owned-movie restriction is checked against
// the requesting admin's own assignment.
func AssignMovie(movies *store.MovieStore, users *store.UserStore, assignments *store.AssignmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		var in struct {
			MovieID  int64 `json:"movie_id" binding:"required"`
			UserID   int64 `json:"user_id" binding:"required"`
			Assigned *bool `json:"assigned" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		_, facts, err := movieFacts(c, movies, assignments, ident, in.MovieID)
		if err != nil {
			fail(c, err)
			return
		}
		if _, err := users.ByID(c, in.UserID); err != nil {
			fail(c, err)
			return
		}
		if err := authz.CanManageAssignments(ident, facts); err != nil {
			fail(c, err)
			return
		}

		if *in.Assigned {
			if err := assignments.Assign(c, in.MovieID, in.UserID, ident.UserID); err != nil {
				fail(c, err)
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "movie assigned to user successfully"})
			return
		}
		if err := assignments.Unassign(c, in.MovieID, in.UserID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "movie unassigned from user successfully"})
	}
}

type assignmentResp struct {
	MovieID    int64  `json:"movie_id"`
	MovieTitle string `json:"movie_title"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	AssignedBy string `json:"assigned_by"`
}

func toAssignmentResp(a *models.MovieAssignment) assignmentResp {
	out := assignmentResp{MovieID: a.MovieID, UserID: a.UserID}
	if a.Movie != nil {
		out.MovieTitle = a.Movie.Title
	}
	if a.Assignee != nil {
		out.Username = a.Assignee.Username
	}
	if a.Assigner != nil {
		out.AssignedBy = a.Assigner.Username
	}
	return out
}

// ListAssignments returns the assignment rows visible to the requester.
func ListAssignments(assignments *store.AssignmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		rows, err := assignments.List(c, authz.VisibleAssignments(ident))
		if err != nil {
			fail(c, err)
			return
		}
		out := make([]assignmentResp, 0, len(rows))
		for i := range rows {
			out = append(out, toAssignmentResp(&rows[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
