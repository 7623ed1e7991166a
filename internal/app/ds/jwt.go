package ds

import "github.com/golang-jwt/jwt"

type JWTClaims struct {
	jwt.StandardClaims
	UserID  uint `json:"user_id"`
	LevelID uint `json:"level_id"`
}
