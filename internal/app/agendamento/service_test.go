package agendamento_test

import (
	"testing"
	"time"

	"github.com/guih-henriqueee/agendamentos-api/internal/app/agendamento"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"github.com/guih-henriqueee/agendamentos-api/internal/mocks"
	"github.com/guih-henriqueee/agendamentos-api/internal/testutils"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*agendamento.Service, *mocks.MockAgendamentoRepository, *mocks.MockCache) {
	logger := testutils.TestLogger(t)
	mockRepo := new(mocks.MockAgendamentoRepository)
	mockCache := new(mocks.MockCache)

	service := agendamento.NewService(mockRepo, mockCache, logger)
	return service, mockRepo, mockCache
}

func TestAgendamentoService_Create(t *testing.T) {
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	service, mockRepo, mockCache := newService(t)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Agendamento")).
		Return(nil).Once()
	mockCache.On("Delete", mock.Anything, "agendamentos").Return(nil).Once()

	creator := model.UserRef{ID: "u1", Name: "Ana", Email: "ana@example.com"}
	supplier := model.FornecedorRef{ID: "f1", Name: "ACME", Contact: "119999999"}

	created, err := service.Create(ctx, agendamento.CreateInput{
		Name:        "Compra de peças",
		Price:       1500.50,
		Description: "Reposição de estoque",
		Quantity:    10,
		DataEntrega: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		XML:         "<nota/>",
		Commits:     "pedido inicial",
		Status:      "pendente",
		UserCreated: creator,
		Fornecedor:  supplier,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// Recortes congelados: userUpdated é o mesmo recorte do criador
	assert.Equal(t, creator, created.UserCreated)
	assert.Equal(t, creator, created.UserUpdated)
	assert.Equal(t, supplier, created.Fornecedor)

	// Campos achatados do criador
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "Ana", created.UserName)
	assert.Equal(t, "ana@example.com", created.UserEmail)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAgendamentoService_Update(t *testing.T) {
	frozen := model.UserRef{ID: "u1", Name: "Ana", Email: "ana@example.com"}

	newExisting := func() *model.Agendamento {
		return &model.Agendamento{
			ID:          "a1",
			Name:        "Compra de peças",
			Price:       1500.50,
			Description: "Reposição de estoque",
			Quantity:    10,
			DataEntrega: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			XML:         "<nota/>",
			Commits:     "pedido inicial",
			Status:      "pendente",
			CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			UserCreated: frozen,
			UserUpdated: frozen,
			Fornecedor:  model.FornecedorRef{ID: "f1", Name: "ACME", Contact: "119999999"},
			UserID:      "u1",
			UserName:    "Ana",
			UserEmail:   "ana@example.com",
		}
	}

	t.Run("only mutable fields change", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, mockCache := newService(t)

		existing := newExisting()
		mockRepo.On("FindByID", mock.Anything, "a1").Return(existing, nil).Once()
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Agendamento")).
			Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "agendamentos").Return(nil).Once()

		updated, err := service.Update(ctx, "a1", agendamento.UpdateInput{
			Name:        "Compra urgente",
			Price:       2000,
			Description: "Reposição ampliada",
			Quantity:    20,
		})

		require.NoError(t, err)
		assert.Equal(t, "Compra urgente", updated.Name)
		assert.Equal(t, 2000.0, updated.Price)
		assert.Equal(t, 20, updated.Quantity)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

		// Todo o resto permanece como na criação
		assert.Equal(t, "pendente", updated.Status)
		assert.Equal(t, "<nota/>", updated.XML)
		assert.Equal(t, "pedido inicial", updated.Commits)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), updated.DataEntrega)
		assert.Equal(t, frozen, updated.UserCreated)
		assert.Equal(t, frozen, updated.UserUpdated)
	})

	t.Run("not found", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, _ := newService(t)

		mockRepo.On("FindByID", mock.Anything, "missing").
			Return(nil, repository.ErrNotFound).Once()

		updated, err := service.Update(ctx, "missing", agendamento.UpdateInput{})

		require.Error(t, err)
		assert.Nil(t, updated)

		apiErr := apperrors.AsAPIError(err)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Agendamento not found", apiErr.Message)
	})
}

func TestAgendamentoService_List(t *testing.T) {
	t.Run("successfully from repository", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, mockCache := newService(t)

		expected := []*model.Agendamento{{ID: "a1", Name: "Compra de peças"}}

		mockCache.On("Get", mock.Anything, "agendamentos", mock.AnythingOfType("*[]*model.Agendamento")).
			Return(false, nil).Once()
		mockRepo.On("List", mock.Anything).Return(expected, nil).Once()
		mockCache.On("Set", mock.Anything, "agendamentos", expected, 5*time.Minute).
			Return(nil).Once()

		agendamentos, err := service.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, agendamentos)
	})

	t.Run("successfully from cache", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, mockCache := newService(t)

		expected := []*model.Agendamento{{ID: "a2"}}

		mockCache.On("Get", mock.Anything, "agendamentos", mock.AnythingOfType("*[]*model.Agendamento")).
			Run(func(args mock.Arguments) {
				dest := args.Get(2).(*[]*model.Agendamento)
				*dest = expected
			}).
			Return(true, nil).Once()

		agendamentos, err := service.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, agendamentos)
		mockRepo.AssertNotCalled(t, "List")
	})
}

func TestAgendamentoService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, _ := newService(t)

		mockRepo.On("Delete", mock.Anything, "missing").
			Return(repository.ErrNotFound).Once()

		err := service.Delete(ctx, "missing")

		apiErr := apperrors.AsAPIError(err)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Agendamento not found", apiErr.Message)
	})
}
