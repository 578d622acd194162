package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/agendamento"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/infra/metrics"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"go.uber.org/zap"
)

// AgendamentoHandler implementa os handlers de agendamentos
type AgendamentoHandler struct {
	service *agendamento.Service
	logger  *zap.Logger
	metrics *metrics.APIMetrics
}

// NewAgendamentoHandler cria um novo handler de agendamentos
func NewAgendamentoHandler(service *agendamento.Service, logger *zap.Logger) *AgendamentoHandler {
	return &AgendamentoHandler{
		service: service,
		logger:  logger,
	}
}

// SetMetrics configura o objeto de métricas
func (h *AgendamentoHandler) SetMetrics(metrics *metrics.APIMetrics) {
	h.metrics = metrics
}

type userRefBody struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type fornecedorRefBody struct {
	ID      string `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

type createAgendamentoRequest struct {
	Name        string            `json:"name" binding:"required,min=3"`
	Price       float64           `json:"price" binding:"gte=0"`
	Description string            `json:"description" binding:"required,min=3"`
	Quantity    int               `json:"quantity" binding:"gte=0"`
	DataEntrega time.Time         `json:"dataEntrega"`
	XML         string            `json:"xml"`
	Commits     string            `json:"commits"`
	Status      string            `json:"status"`
	UserCreated userRefBody       `json:"userCreated" binding:"required"`
	Fornecedor  fornecedorRefBody `json:"fornecedor" binding:"required"`
}

type updateAgendamentoRequest struct {
	Name        string  `json:"name" binding:"required,min=3"`
	Price       float64 `json:"price" binding:"gte=0"`
	Description string  `json:"description" binding:"required,min=3"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
}

// agendamentoUpdateView é o recorte devolvido pela atualização
type agendamentoUpdateView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Create registra um novo agendamento. Os recortes de usuário e fornecedor
// vêm no corpo e são gravados como enviados.
func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req createAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), agendamento.CreateInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Quantity:    req.Quantity,
		DataEntrega: req.DataEntrega,
		XML:         req.XML,
		Commits:     req.Commits,
		Status:      req.Status,
		UserCreated: model.UserRef{ID: req.UserCreated.ID, Name: req.UserCreated.Name, Email: req.UserCreated.Email},
		Fornecedor:  model.FornecedorRef{ID: req.Fornecedor.ID, Name: req.Fornecedor.Name, Contact: req.Fornecedor.Contact},
	})
	if err != nil {
		h.respondError(c, err, "create_agendamento_error")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List retorna todos os agendamentos
func (h *AgendamentoHandler) List(c *gin.Context) {
	agendamentos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "list_agendamentos_error")
		return
	}

	if h.metrics != nil {
		h.metrics.SetRecordCount("agendamentos", len(agendamentos))
	}

	c.JSON(http.StatusOK, agendamentos)
}

// Update atualiza os campos mutáveis de um agendamento
func (h *AgendamentoHandler) Update(c *gin.Context) {
	var req updateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), agendamento.UpdateInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.respondError(c, err, "update_agendamento_error")
		return
	}

	c.JSON(http.StatusOK, agendamentoUpdateView{
		ID:          updated.ID,
		Name:        updated.Name,
		Price:       updated.Price,
		Description: updated.Description,
	})
}

// Delete remove um agendamento
func (h *AgendamentoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "delete_agendamento_error")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AgendamentoHandler) respondError(c *gin.Context, err error, reason string) {
	apiErr := apperrors.AsAPIError(err)

	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("falha na operação de agendamento", zap.Error(err))
	}
	if h.metrics != nil {
		h.metrics.RequestError(c.FullPath(), c.Request.Method, reason)
	}

	c.JSON(apiErr.StatusCode, apiErr)
}
