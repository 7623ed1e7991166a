package handler

import (
	"net/http"

	"gamerental/internal/app/ds"
	"gamerental/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// ============ Clients ============

func (h *APIHandler) GetClients(c *gin.Context) {
	clients, err := h.Repository.GetAllClients(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(clients, dto.NewClientResponse))
}

func (h *APIHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	client, err := h.Repository.GetClientByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClientResponse(client))
}

func (h *APIHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client := ds.Client{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
	}
	if err := h.Repository.CreateClient(c.Request.Context(), &client); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusCreated, "client created", client.ID)
}

func (h *APIHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Document != nil {
		fields["document"] = *req.Document
	}

	if err := h.Repository.UpdateClient(c.Request.Context(), id, fields); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "client updated", id)
}

func (h *APIHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeleteClient(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "client deleted", id)
}
