package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/funcionario"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"go.uber.org/zap"
)

// FuncionarioHandler implementa os handlers de funcionários
type FuncionarioHandler struct {
	service *funcionario.Service
	logger  *zap.Logger
}

// NewFuncionarioHandler cria um novo handler de funcionários
func NewFuncionarioHandler(service *funcionario.Service, logger *zap.Logger) *FuncionarioHandler {
	return &FuncionarioHandler{
		service: service,
		logger:  logger,
	}
}

type createFuncionarioRequest struct {
	Name     string  `json:"name" binding:"required,min=3"`
	Document string  `json:"document" binding:"required,len=11,numeric"`
	Salary   float64 `json:"salary" binding:"gte=0"`
	Manager  string  `json:"manager"`
}

// Create registra um novo funcionário
func (h *FuncionarioHandler) Create(c *gin.Context) {
	var req createFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name, req.Document, req.Salary, req.Manager)
	if err != nil {
		apiErr := apperrors.AsAPIError(err)
		h.logger.Error("falha ao criar funcionário", zap.Error(err))
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List retorna todos os funcionários
func (h *FuncionarioHandler) List(c *gin.Context) {
	funcionarios, err := h.service.List(c.Request.Context())
	if err != nil {
		apiErr := apperrors.AsAPIError(err)
		h.logger.Error("falha ao listar funcionários", zap.Error(err))
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}

	c.JSON(http.StatusOK, funcionarios)
}
