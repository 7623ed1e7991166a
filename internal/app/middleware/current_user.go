package middleware

import (
	"gamerental/internal/app/ds"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"
	claimsKey = "claims"
	tokenKey  = "token"
)

func setCurrentUser(c *gin.Context, claims *ds.JWTClaims, jwtStr string) {
	c.Set(userIDKey, claims.UserID)
	c.Set(claimsKey, claims)
	c.Set(tokenKey, jwtStr)
}

// CurrentUserID returns the id of the authenticated caller.
func CurrentUserID(c *gin.Context) (uint, bool) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := id.(uint)
	return uid, ok
}

func CurrentClaims(c *gin.Context) (*ds.JWTClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*ds.JWTClaims)
	return claims, ok
}

// CurrentToken is the raw bearer token the request was authorised with.
func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
