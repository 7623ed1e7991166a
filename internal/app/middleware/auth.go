package middleware

import (
	"context"
	"net/http"
	"strings"

	"gamerental/internal/app/dto"
	"gamerental/internal/app/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Blacklist reports tokens revoked by logout.
type Blacklist interface {
	IsJWTBlacklisted(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Tokens    *token.Manager
	Blacklist Blacklist // nil when Redis is not configured
}

func NewAuthMiddleware(tokens *token.Manager, blacklist Blacklist) *AuthMiddleware {
	return &AuthMiddleware{
		Tokens:    tokens,
		Blacklist: blacklist,
	}
}

// WithAuthCheck rejects requests without a valid, non-revoked bearer token
// and stores the caller's claims in the context.
func (am *AuthMiddleware) WithAuthCheck() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		header := gCtx.GetHeader("Authorization")
		if header == "" {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Kind: dto.KindWarning, Message: "token is required"})
			return
		}

		jwtStr, ok := bearerToken(header)
		if !ok {
			abortInvalid(gCtx)
			return
		}

		claims, err := am.Tokens.Parse(jwtStr)
		if err != nil {
			logrus.Debugf("auth: %v", err)
			abortInvalid(gCtx)
			return
		}

		if am.Blacklist != nil {
			revoked, err := am.Blacklist.IsJWTBlacklisted(gCtx.Request.Context(), jwtStr)
			if err != nil {
				logrus.Errorf("auth: blacklist lookup: %v", err)
				gCtx.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.Envelope{Kind: dto.KindWarning, Message: "token blacklist is unavailable"})
				return
			}
			if revoked {
				abortInvalid(gCtx)
				return
			}
		}

		setCurrentUser(gCtx, claims, jwtStr)
		gCtx.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, tok, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

func abortInvalid(gCtx *gin.Context) {
	gCtx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Kind: dto.KindError, Message: "invalid token"})
}
