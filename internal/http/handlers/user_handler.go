package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movievault/internal/auth"
	"movievault/internal/authz"
	"movievault/internal/models"
	"movievault/internal/store"
)

type userResp struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toUserResp(u *models.User) userResp {
	role := ""
	if u.Role != nil {
		role = u.Role.Name
	}
	return userResp{ID: u.ID, Username: u.Username, Role: role}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// ListUsers returns the users visible to the requester per the role rules.
func ListUsers(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		list, err := users.List(c, authz.VisibleUsers(ident))
		if err != nil {
			fail(c, err)
			return
		}
		out := make([]userResp, 0, len(list))
		for i := range list {
			out = append(out, toUserResp(&list[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetUser(users *store.UserStore) gin.HandlerFunc {
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
		user, err := users.ByID(c, id)
		if err != nil {
			fail(c, err)
			return
		}
		targetRole := authz.Role("")
		if user.Role != nil {
			targetRole = authz.Role(user.Role.Name)
		}
		if err := authz.CanViewUser(ident, user.ID, targetRole); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toUserResp(user))
	}
}

// UpdateUser applies a partial update: only fields present in the body
// change.
func UpdateUser(users *store.UserStore, roles *store.RoleStore) gin.HandlerFunc {
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
		var in struct {
			Username *string `json:"username" binding:"omitempty,min=3"`
			Role     *string `json:"role"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		target, err := users.ByID(c, id)
		if err != nil {
			fail(c, err)
			return
		}
		targetRole := authz.Role("")
		if target.Role != nil {
			targetRole = authz.Role(target.Role.Name)
		}
		if err := authz.CanMutateUser(ident, targetRole); err != nil {
			fail(c, err)
			return
		}

		upd := store.UserUpdate{Username: in.Username}
		if in.Role != nil {
			if _, err := authz.ParseRole(*in.Role); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
				return
			}
			role, err := roles.ByName(c, *in.Role)
			if err != nil {
				fail(c, err)
				return
			}
			upd.RoleID = &role.ID
		}

		updated, err := users.Update(c, id, upd)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toUserResp(updated))
	}
}

// DeleteUser removes the user and, in the same transaction, their assignment
// rows.
func DeleteUser(users *store.UserStore) gin.HandlerFunc {
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
		target, err := users.ByID(c, id)
		if err != nil {
			fail(c, err)
			return
		}
		targetRole := authz.Role("")
		if target.Role != nil {
			targetRole = authz.Role(target.Role.Name)
		}
		if err := authz.CanMutateUser(ident, targetRole); err != nil {
			fail(c, err)
			return
		}
		if err := users.Delete(c, id); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
