package handler

import (
	"gamerental/internal/app/metrics"
	"gamerental/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers every REST route; all but a few public ones need a bearer token.
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// ============ Public ============
	router.POST("/login", h.AuthHandler.LoginUser)
	router.GET("/levels", h.GetLevels)
	router.GET("/ping", h.Ping)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("")
	api.Use(authMiddleware.WithAuthCheck())

	// ============ Auth ============
	api.POST("/logout", h.AuthHandler.LogoutUser)
	api.GET("/profile", h.AuthHandler.GetUserProfile)

	clients := api.Group("/clients")
	{
		clients.GET("", h.GetClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}

	games := api.Group("/games")
	{
		games.GET("", h.GetGames)
		games.GET("/search", h.SearchGames)
		games.GET("/:id", h.GetGame)
		games.POST("", h.CreateGame)
		games.PUT("/:id", h.UpdateGame)
		games.DELETE("/:id", h.DeleteGame)
		games.GET("/:id/image", h.GetGameImage)
		games.POST("/:id/image", h.UploadGameImage)
	}

	platforms := api.Group("/platforms")
	{
		platforms.GET("", h.GetPlatforms)
		platforms.GET("/:id", h.GetPlatform)
		platforms.POST("", h.CreatePlatform)
		platforms.PUT("/:id", h.UpdatePlatform)
		platforms.DELETE("/:id", h.DeletePlatform)
	}

	licenses := api.Group("/licenses")
	{
		licenses.GET("", h.GetLicenses)
		licenses.GET("/:id", h.GetLicense)
		licenses.POST("", h.CreateLicense)
		licenses.PUT("/:id", h.UpdateLicense)
		licenses.DELETE("/:id", h.DeleteLicense)
	}

	accounts := api.Group("/accounts")
	{
		accounts.GET("", h.GetAccounts)
		accounts.GET("/:id", h.GetAccount)
		accounts.POST("", h.CreateAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
	}

	// GET /levels is public, the rest is not
	levels := api.Group("/levels")
	{
		levels.GET("/:id", h.GetLevel)
		levels.POST("", h.CreateLevel)
		levels.PUT("/:id", h.UpdateLevel)
		levels.DELETE("/:id", h.DeleteLevel)
	}

	users := api.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", h.GetOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}

	api.GET("/dashboard", h.GetDashboard)
}
