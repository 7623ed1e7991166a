package handler

import (
	"net/http"

	"gamerental/internal/app/ds"
	"gamerental/internal/app/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is lowered in tests.
var passwordCost = bcrypt.DefaultCost

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ============ Users ============

func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.Repository.GetAllUsers(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(users, dto.NewUserResponse))
}

func (h *APIHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.Repository.GetUserByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *APIHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	user := ds.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		LevelID:  req.LevelID,
	}
	if err := h.Repository.CreateUser(c.Request.Context(), &user); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusCreated, "user created", user.ID)
}

// UpdateUser re-hashes the password only when a new one is sent.
func (h *APIHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
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
	if req.LevelID != nil {
		fields["level_id"] = *req.LevelID
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			errorResponse(c, err)
			return
		}
		fields["password"] = hash
	}

	if err := h.Repository.UpdateUser(c.Request.Context(), id, fields); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "user updated", id)
}

func (h *APIHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeleteUser(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, http.StatusOK, "user deleted", id)
}
