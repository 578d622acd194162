package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/fornecedor"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"go.uber.org/zap"
)

// FornecedorHandler implementa os handlers de fornecedores
type FornecedorHandler struct {
	service *fornecedor.Service
	logger  *zap.Logger
}

// NewFornecedorHandler cria um novo handler de fornecedores
func NewFornecedorHandler(service *fornecedor.Service, logger *zap.Logger) *FornecedorHandler {
	return &FornecedorHandler{
		service: service,
		logger:  logger,
	}
}

type fornecedorRequest struct {
	Name    string `json:"name" binding:"required"`
	CNPJ    string `json:"cnpj" binding:"required,len=14,numeric"`
	Contact string `json:"contact" binding:"required,len=9,numeric"`
}

// Create registra um novo fornecedor
func (h *FornecedorHandler) Create(c *gin.Context) {
	var req fornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name, req.CNPJ, req.Contact)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List retorna todos os fornecedores cadastrados
func (h *FornecedorHandler) List(c *gin.Context) {
	fornecedores, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fornecedores)
}

// Get retorna um fornecedor pelo identificador
func (h *FornecedorHandler) Get(c *gin.Context) {
	found, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// Update atualiza um fornecedor
func (h *FornecedorHandler) Update(c *gin.Context) {
	var req fornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req.Name, req.CNPJ, req.Contact)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete remove um fornecedor. Diferente dos demais recursos, a remoção
// responde 200 com mensagem de confirmação.
func (h *FornecedorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fornecedor deleted"})
}

func (h *FornecedorHandler) respondError(c *gin.Context, err error) {
	apiErr := apperrors.AsAPIError(err)

	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("falha na operação de fornecedor", zap.Error(err))
	}

	c.JSON(apiErr.StatusCode, apiErr)
}
