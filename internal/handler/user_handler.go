package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/accountd/internal/database/models"
	"github.com/avolkov/accountd/internal/database/service"
	"github.com/avolkov/accountd/internal/middleware"
)

// UserHandler handles HTTP requests for user administration
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type UpdateStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

// List returns a page of users
func (h *UserHandler) List(c *gin.Context) {
	if current, ok := middleware.CurrentUser(c); ok {
		h.logger.Debug("📋 [Handler] Listing users", "requested_by", current.Email)
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultListLimit)))

	users, err := h.service.ListUsers(offset, limit)
	if err != nil {
		HandleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateStatus switches a user between active and blocked
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [Handler] Invalid status update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status required"})
		return
	}

	user, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		HandleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user by id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.service.DeleteUser(id)
	if err != nil {
		HandleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}
