package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/dto"
	"gamerental/internal/app/middleware"
	"gamerental/internal/app/repository"
	"gamerental/internal/app/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TokenBlacklist revokes tokens on logout. *redis.Client implements it.
type TokenBlacklist interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
}

type AuthHandler struct {
	Repository *repository.Repository
	Tokens     *token.Manager
	Blacklist  TokenBlacklist // nil when Redis is not configured
}

func NewAuthHandler(r *repository.Repository, tokens *token.Manager, blacklist TokenBlacklist) *AuthHandler {
	return &AuthHandler{
		Repository: r,
		Tokens:     tokens,
		Blacklist:  blacklist,
	}
}

var errBadCredentials = apperr.Unauthorized("invalid email or password")

// LoginUser authenticates a user
// @Summary Sign in
// @Description Checks email and password and returns the user with a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	// unknown email and wrong password answer the same way
	user, err := h.Repository.GetUserByEmail(ctx.Request.Context(), request.Email)
	if err != nil {
		if apperr.IsNotFound(err) {
			errorResponse(ctx, errBadCredentials)
			return
		}
		errorResponse(ctx, err)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logrus.Warnf("login: stored hash of user %d is unusable: %v", user.ID, err)
		}
		errorResponse(ctx, errBadCredentials)
		return
	}

	accessToken, err := h.Tokens.Issue(user)
	if err != nil {
		errorResponse(ctx, err)
		return
	}

	logrus.WithField("user_id", user.ID).Info("user signed in")
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:  *dto.NewUserResponse(user),
		Token: accessToken,
	})
}

// LogoutUser revokes the presented token
// @Summary Sign out
// @Description Puts the token on the Redis blacklist until it expires
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 503 {object} dto.Envelope
// @Router /logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	if h.Blacklist == nil {
		errorResponse(ctx, apperr.Unavailable("token blacklist is not configured"))
		return
	}

	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		errorResponse(ctx, apperr.Unauthorized("token is required"))
		return
	}

	// an already expired token needs no blacklist entry
	if ttl := h.Tokens.TTL(claims); ttl > 0 {
		if err := h.Blacklist.WriteJWTToBlacklist(ctx.Request.Context(), middleware.CurrentToken(ctx), ttl); err != nil {
			errorResponse(ctx, err)
			return
		}
	}

	successResponse(ctx, http.StatusOK, "signed out", 0)
}

// GetUserProfile returns the authenticated user
// @Summary Current user
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.Envelope
// @Router /profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorResponse(ctx, apperr.Unauthorized("token is required"))
		return
	}

	user, err := h.Repository.GetUserByID(ctx.Request.Context(), userID)
	if err != nil {
		errorResponse(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}
