package handler

import (
	"net/http"

	"gamerental/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// Platforms and levels are plain name lookups.

// ============ Platforms ============

func (h *APIHandler) GetPlatforms(c *gin.Context) {
	platforms, err := h.Repository.GetAllPlatforms(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(platforms, dto.NewPlatformResponse))
}

func (h *APIHandler) GetPlatform(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	platform, err := h.Repository.GetPlatformByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlatformResponse(platform))
}

func (h *APIHandler) CreatePlatform(c *gin.Context) {
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	platform, err := h.Repository.CreatePlatform(c.Request.Context(), req.Name)
	if err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusCreated, "platform created", platform.ID)
}

func (h *APIHandler) UpdatePlatform(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Repository.UpdatePlatform(c.Request.Context(), id, map[string]interface{}{"name": req.Name}); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "platform updated", id)
}

func (h *APIHandler) DeletePlatform(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeletePlatform(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "platform deleted", id)
}

// ============ Levels ============

// GetLevels is public so the sign-in screen can list roles.
func (h *APIHandler) GetLevels(c *gin.Context) {
	levels, err := h.Repository.GetAllLevels(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(levels, dto.NewLevelResponse))
}

func (h *APIHandler) GetLevel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	level, err := h.Repository.GetLevelByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLevelResponse(level))
}

func (h *APIHandler) CreateLevel(c *gin.Context) {
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	level, err := h.Repository.CreateLevel(c.Request.Context(), req.Name)
	if err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusCreated, "level created", level.ID)
}

func (h *APIHandler) UpdateLevel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Repository.UpdateLevel(c.Request.Context(), id, map[string]interface{}{"name": req.Name}); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "level updated", id)
}

func (h *APIHandler) DeleteLevel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeleteLevel(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "level deleted", id)
}
