package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/user"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"go.uber.org/zap"
)

// AuthHandler valida tokens de identidade emitidos na criação de usuários
type AuthHandler struct {
	service *user.Service
	logger  *zap.Logger
}

// NewAuthHandler cria um novo handler de autenticação
func NewAuthHandler(service *user.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

type validateTokenRequest struct {
	Token string `json:"token" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	ID    string `json:"id" binding:"required"`
	CPF   string `json:"cpf" binding:"required,len=11,numeric"`
}

// Validate confere se um token corresponde aos dados informados.
// A resposta é sempre 200 com o veredito; token inválido não é erro.
func (h *AuthHandler) Validate(c *gin.Context) {
	var req validateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	valid := h.service.ValidateToken(c.Request.Context(), req.Token, req.Email, req.ID, req.CPF)

	if !valid {
		h.logger.Warn("token inválido", zap.String("id", req.ID))
	}

	c.JSON(http.StatusOK, gin.H{"valid": valid})
}
