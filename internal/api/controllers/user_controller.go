package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourvisto/internal/models/request_models"
	"tourvisto/internal/services"
	"tourvisto/pkg/utils"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// SyncUser mirrors the authenticated identity into the local user table.
func (u *UserController) SyncUser(c *gin.Context) {
	var req request_models.SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := u.userService.SyncUser(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User synced successfully")
}

// GetCurrentUser resolves the caller from the JWT claims set by middleware.
func (u *UserController) GetCurrentUser(c *gin.Context) {
	accountID := c.GetString("user_id")
	if accountID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := u.userService.GetUserByAccountID(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

func (u *UserController) GetAllUsers(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "8")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	users, err := u.userService.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}
