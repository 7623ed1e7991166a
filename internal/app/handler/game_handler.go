package handler

import (
	"io"
	"net/http"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/ds"
	"gamerental/internal/app/dto"
	"gamerental/internal/app/repository"
	"gamerental/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxImageSize = 10 << 20

// ============ Games ============

func (h *APIHandler) GetGames(c *gin.Context) {
	games, err := h.Repository.GetAllGames(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(games, dto.NewGameResponse))
}

// SearchGames lists rentable games
// @Summary Search games with an available license
// @Description Substring match on game and platform name; each game carries its oldest available license
// @Tags Games
// @Produce json
// @Security BearerAuth
// @Param name query string false "game name"
// @Param platform query string false "platform name"
// @Param type query string false "license type"
// @Success 200 {array} dto.GameResponse
// @Router /games/search [get]
func (h *APIHandler) SearchGames(c *gin.Context) {
	games, err := h.Repository.SearchGames(c.Request.Context(), repository.GameSearch{
		Name:     c.Query("name"),
		Platform: c.Query("platform"),
		Type:     c.Query("type"),
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(games, dto.NewGameResponse))
}

func (h *APIHandler) GetGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	game, err := h.Repository.GetGameByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

func (h *APIHandler) CreateGame(c *gin.Context) {
	var req dto.CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	game := ds.Game{Name: req.Name, PlatformID: req.PlatformID}
	if err := h.Repository.CreateGame(c.Request.Context(), &game); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusCreated, "game created", game.ID)
}

func (h *APIHandler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.PlatformID != nil {
		fields["platform_id"] = *req.PlatformID
	}

	if err := h.Repository.UpdateGame(c.Request.Context(), id, fields); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "game updated", id)
}

func (h *APIHandler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	image, err := h.Repository.DeleteGame(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	h.removeImage(c, image)
	successResponse(c, http.StatusOK, "game deleted", id)
}

// UploadGameImage stores a cover image for the game
// @Summary Upload game image
// @Description Uploads the image to MinIO and replaces the previous one
// @Tags Games
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "game id"
// @Param image formData file true "image file"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 503 {object} dto.Envelope
// @Router /games/{id}/image [post]
func (h *APIHandler) UploadGameImage(c *gin.Context) {
	if h.Images == nil {
		errorResponse(c, apperr.Unavailable("image storage is not configured"))
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Repository.GetGameByID(ctx, id); err != nil {
		errorResponse(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		errorResponse(c, apperr.Invalid("image file is required"))
		return
	}
	if file.Size > maxImageSize {
		errorResponse(c, apperr.Invalid("image is larger than %d MB", maxImageSize>>20))
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		errorResponse(c, err)
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		errorResponse(c, err)
		return
	}

	objectName, err := h.Images.UploadFile(ctx, id, fileData, file.Filename)
	if err != nil {
		errorResponse(c, err)
		return
	}

	previous, err := h.Repository.SetGameImage(ctx, id, objectName)
	if err != nil {
		h.removeImage(c, &objectName)
		errorResponse(c, err)
		return
	}
	h.removeImage(c, previous)

	successResponse(c, http.StatusOK, "image uploaded", id)
}

// GetGameImage streams the stored cover image.
func (h *APIHandler) GetGameImage(c *gin.Context) {
	if h.Images == nil {
		errorResponse(c, apperr.Unavailable("image storage is not configured"))
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	game, err := h.Repository.GetGameByID(ctx, id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	if game.Image == nil || *game.Image == "" {
		errorResponse(c, apperr.NotFound("game %d has no image", id))
		return
	}

	data, err := h.Images.DownloadFile(ctx, *game.Image)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.Data(http.StatusOK, storage.ContentType(*game.Image), data)
}

// removeImage deletes a stored object; failures only leave an orphan behind.
func (h *APIHandler) removeImage(c *gin.Context, image *string) {
	if image == nil || *image == "" || h.Images == nil {
		return
	}
	if err := h.Images.DeleteFile(c.Request.Context(), *image); err != nil {
		logrus.Warnf("failed to delete image %s: %v", *image, err)
	}
}
