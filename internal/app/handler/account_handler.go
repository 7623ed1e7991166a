package handler

import (
	"net/http"
	"time"

	"gamerental/internal/app/ds"
	"gamerental/internal/app/dto"
	"gamerental/internal/app/validation"

	"github.com/gin-gonic/gin"
)

// ============ Digital accounts ============

func (h *APIHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.Repository.GetAllAccounts(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(accounts, dto.NewAccountResponse))
}

// GetAccount answers with the birth date as DD/MM/YYYY.
func (h *APIHandler) GetAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	account, err := h.Repository.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

func (h *APIHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	birthDate, err := validation.ParseBirthDate(req.BirthDate, time.Now())
	if err != nil {
		errorResponse(c, err)
		return
	}

	account := ds.DigitalAccount{
		StoreID:   string(req.StoreID),
		Email:     req.Email,
		ClientID:  req.ClientID,
		BirthDate: birthDate,
	}
	if err := h.Repository.CreateAccount(c.Request.Context(), &account); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusCreated, "digital account created", account.ID)
}

func (h *APIHandler) UpdateAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]interface{}{}
	if req.StoreID != nil {
		fields["store_id"] = string(*req.StoreID)
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.ClientID != nil {
		fields["client_id"] = *req.ClientID
	}
	if req.BirthDate != nil {
		birthDate, err := validation.ParseBirthDate(*req.BirthDate, time.Now())
		if err != nil {
			errorResponse(c, err)
			return
		}
		fields["birth_date"] = birthDate
	}

	if err := h.Repository.UpdateAccount(c.Request.Context(), id, fields); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "digital account updated", id)
}

func (h *APIHandler) DeleteAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeleteAccount(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "digital account deleted", id)
}
