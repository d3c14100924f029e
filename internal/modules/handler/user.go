package handler

import (
	"net/http"

	"github.com/Alaebelamkaddame/content-management/internal/middleware"
	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

// ListUsers godoc
//
//	@Summary	List users ordered by full name
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.User}
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: users})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: u})
}

type CreateUserReq struct {
	Username  string     `json:"username" binding:"required"`
	Password  string     `json:"password" binding:"required"`
	Role      model.Role `json:"role" binding:"required,oneof=admin team_leader team_member"`
	FullName  string     `json:"full_name" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	AvatarURL string     `json:"avatar_url"`
}

// CreateUser godoc
//
//	@Summary	Create a user (admin only)
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body	CreateUserReq	true	"user"
//	@Success	201	{object}	serializer.Response{data=model.User}
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	u, err := h.svc.Create(c.Request.Context(), service.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		FullName:  req.FullName,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: u})
}

type UpdateUserReq struct {
	Username  *string     `json:"username"`
	Role      *model.Role `json:"role" binding:"omitempty,oneof=admin team_leader team_member"`
	FullName  *string     `json:"full_name"`
	Email     *string     `json:"email" binding:"omitempty,email"`
	AvatarURL *string     `json:"avatar_url"`
}

// UpdateUser applies a partial update. A user may update themselves; any
// other target requires the admin role. Role changes are admin-only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	claims, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	var req UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if claims.Role != model.RoleAdmin {
		if claims.UserID != id {
			c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
			return
		}
		if req.Role != nil {
			c.JSON(http.StatusForbidden, serializer.ForbiddenErr("role changes require admin"))
			return
		}
	}

	u, err := h.svc.Update(c.Request.Context(), id, service.UpdateUserInput{
		Username:  req.Username,
		Role:      req.Role,
		FullName:  req.FullName,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: u})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("user not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserProjects lists the projects a user is assigned to, newest first.
func (h *UserHandler) GetUserProjects(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	projects, err := h.svc.Projects(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}
