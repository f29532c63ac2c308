package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"movievault/internal/models"
)

// Claims is the bearer token payload: the username as subject plus the
// role/user id pair the authorization core runs on.
type Claims struct {
	Role   string `json:"role"`
	UserID int64  `json:"user_id"`
	jwt.RegisteredClaims
}

// NewToken mints a signed HS256 token for the user.
func NewToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	claims := Claims{
		Role:   roleName,
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
