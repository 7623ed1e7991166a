package handler

import (
	"context"
	"net/http"
	"strconv"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/dto"
	"gamerental/internal/app/repository"
	"gamerental/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ImageStore keeps game cover images. *storage.MinIOClient implements it.
type ImageStore interface {
	UploadFile(ctx context.Context, gameID uint, fileData []byte, originalFilename string) (string, error)
	DeleteFile(ctx context.Context, filename string) error
	DownloadFile(ctx context.Context, filename string) ([]byte, error)
}

// APIHandler holds the REST handlers
type APIHandler struct {
	Repository  *repository.Repository
	Images      ImageStore // nil when MinIO is not configured
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, images ImageStore, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Images:      images,
		AuthHandler: authHandler,
	}
}

// ============ Helpers ============

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalid:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse answers typed failures with a warning and everything else with a
// generic error; the underlying error is only logged.
func errorResponse(c *gin.Context, err error) {
	if e, ok := apperr.From(err); ok {
		c.JSON(statusFor(e.Kind), dto.Envelope{
			Kind:    dto.KindWarning,
			Message: e.Message,
			Fields:  e.Fields,
		})
		return
	}

	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error(err)
	c.JSON(http.StatusInternalServerError, dto.Envelope{
		Kind:    dto.KindError,
		Message: "internal error",
	})
}

func successResponse(c *gin.Context, statusCode int, message string, id uint) {
	c.JSON(statusCode, dto.Envelope{
		Kind:    dto.KindSuccess,
		Message: message,
		ID:      id,
	})
}

// parseID reads a positive numeric path parameter and answers 400 otherwise.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		errorResponse(c, apperr.Invalid("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes and validates the body, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		errorResponse(c, validation.FromBindError(err))
		return false
	}
	return true
}

// Ping checks the API is up
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
