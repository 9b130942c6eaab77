package store

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/admin"
)

// UserHandler serves the public slice of a seller account: display name and
// avatar only.
type UserHandler struct {
	users *adminRepo.AdminUserRepository
}

func NewUserHandler(users *adminRepo.AdminUserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// GetPublic handles GET /api/public/users/:id
func (h *UserHandler) GetPublic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"full_name":  user.FullName,
		"avatar_url": user.AvatarURL,
	})
}
