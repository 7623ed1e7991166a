package handler

import (
	"net/http"

	"gamerental/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns revenue per day, license occupancy and the most rented games
// @Summary Dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.Envelope
// @Router /dashboard [get]
func (h *APIHandler) GetDashboard(c *gin.Context) {
	data, err := h.Repository.GetDashboardData(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(data))
}
