package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/serializer"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type LoginReq struct {
	// Username or email, case-insensitive.
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// Login godoc
//
//	@Summary		Login
//	@Description	Authenticate with username or email and receive a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.LoginReq	true	"Credentials"
//	@Success		200	{object}	serializer.Response
//	@Router			/auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("Invalid credentials"))
		return
	}

	token, err := h.svc.IssueToken(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "failed to issue token", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK("Login Successful", gin.H{
		"access_token": token,
		"user":         user,
	}))
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Return the user the bearer token belongs to
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/auth [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := c.MustGet("user").(*model.User)
	if !ok {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("user not found")))
		return
	}

	c.JSON(http.StatusOK, serializer.OK("User details", gin.H{"user": user}))
}
