package handler

import (
	"net/http"

	"gamerental/internal/app/ds"
	"gamerental/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// ============ Licenses ============

func (h *APIHandler) GetLicenses(c *gin.Context) {
	licenses, err := h.Repository.GetAllLicenses(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(licenses, dto.NewLicenseResponse))
}

func (h *APIHandler) GetLicense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	license, err := h.Repository.GetLicenseByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLicenseResponse(license))
}

func (h *APIHandler) CreateLicense(c *gin.Context) {
	var req dto.CreateLicenseRequest
	if !bindJSON(c, &req) {
		return
	}

	license := ds.License{
		GameID:           req.GameID,
		Status:           req.Status,
		Type:             req.Type,
		Price:            req.Price,
		DigitalAccountID: req.DigitalAccountID,
	}
	if err := h.Repository.CreateLicense(c.Request.Context(), &license); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusCreated, "license created", license.ID)
}

func (h *APIHandler) UpdateLicense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateLicenseRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]interface{}{}
	if req.GameID != nil {
		fields["game_id"] = *req.GameID
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.DigitalAccountID != nil {
		fields["digital_account_id"] = *req.DigitalAccountID
	}

	if err := h.Repository.UpdateLicense(c.Request.Context(), id, fields); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "license updated", id)
}

func (h *APIHandler) DeleteLicense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeleteLicense(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "license deleted", id)
}
