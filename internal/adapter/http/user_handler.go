// Package http expõe os recursos do painel de agendamentos via Gin.
// Os handlers traduzem erros de negócio para o corpo padrão
// {message, error, statusCode} e não contêm regra de negócio própria.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/user"
	"github.com/guih-henriqueee/agendamentos-api/internal/infra/metrics"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"go.uber.org/zap"
)

// UserHandler implementa os handlers de usuários
type UserHandler struct {
	service *user.Service
	logger  *zap.Logger
	metrics *metrics.APIMetrics
}

// NewUserHandler cria um novo handler de usuários
func NewUserHandler(service *user.Service, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// SetMetrics configura o objeto de métricas
func (h *UserHandler) SetMetrics(metrics *metrics.APIMetrics) {
	h.metrics = metrics
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	CPF      string `json:"cpf" binding:"required,len=11,numeric"`
}

type updateUserRequest struct {
	Name      string    `json:"name" binding:"required,min=3"`
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=6"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// userView é o recorte público de um usuário, sem CPF nem senha
type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createdUserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Create registra um novo usuário
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name, req.Email, req.CPF, req.Password)
	if err != nil {
		h.respondError(c, err, "create_user_error")
		return
	}

	c.JSON(http.StatusCreated, createdUserView{
		ID:    created.ID,
		Name:  created.Name,
		Email: created.Email,
		Token: created.Token,
	})
}

// List retorna todos os usuários cadastrados
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "list_users_error")
		return
	}

	if h.metrics != nil {
		h.metrics.SetRecordCount("users", len(users))
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, userView{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	c.JSON(http.StatusOK, views)
}

// Update atualiza nome, e-mail e senha de um usuário
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.BadRequest("Dados inválidos: "+err.Error(), err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Name, req.Email, req.Password, req.UpdatedAt)
	if err != nil {
		h.respondError(c, err, "update_user_error")
		return
	}

	c.JSON(http.StatusOK, userView{ID: updated.ID, Name: updated.Name, Email: updated.Email})
}

// Delete remove um usuário
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "delete_user_error")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) respondError(c *gin.Context, err error, reason string) {
	apiErr := apperrors.AsAPIError(err)

	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("falha na operação de usuário", zap.Error(err))
	}
	if h.metrics != nil {
		h.metrics.RequestError(c.FullPath(), c.Request.Method, reason)
	}

	c.JSON(apiErr.StatusCode, apiErr)
}
