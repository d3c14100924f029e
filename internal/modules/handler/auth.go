package handler

import (
	"net/http"

	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	Token string `json:"token"`
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchange username and password for a session token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body	LoginReq	true	"credentials"
//	@Success		200	{object}	serializer.Response{data=LoginResp}
//	@Failure		401	{object}	serializer.Response
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tok, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: LoginResp{Token: tok}})
}
