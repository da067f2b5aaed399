package handlers

import (
	"errors"

	"biblioteca-backend/helper"
	"biblioteca-backend/logger"
	"biblioteca-backend/models"
	"biblioteca-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	userID, err := h.authService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRole):
			h.Helper.SendBadRequest(c, err.Error())
		case errors.Is(err, models.ErrDuplicateUser):
			h.Helper.SendConflict(c, err.Error())
		default:
			log := logger.Get()
			log.Error().Err(err).Str("username", req.Username).Msg("register failed")
			h.Helper.SendStorageError(c)
		}
		return
	}

	h.Helper.SendCreated(c, gin.H{"message": "user created", "usuario_id": userID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	token, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.Helper.SendUnauthorized(c, err.Error())
			return
		}
		log := logger.Get()
		log.Error().Err(err).Str("username", req.Username).Msg("login failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"token": token})
}
