package fornecedor_test

import (
	"testing"
	"time"

	"github.com/guih-henriqueee/agendamentos-api/internal/app/fornecedor"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"github.com/guih-henriqueee/agendamentos-api/internal/mocks"
	"github.com/guih-henriqueee/agendamentos-api/internal/testutils"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*fornecedor.Service, *mocks.MockFornecedorRepository, *mocks.MockCache) {
	logger := testutils.TestLogger(t)
	mockRepo := new(mocks.MockFornecedorRepository)
	mockCache := new(mocks.MockCache)

	service := fornecedor.NewService(mockRepo, mockCache, logger)
	return service, mockRepo, mockCache
}

func TestFornecedorService_Create(t *testing.T) {
	t.Run("successfully", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, mockCache := newService(t)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Fornecedor")).
			Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "fornecedores").Return(nil).Once()

		created, err := service.Create(ctx, "ACME", "12345678000199", "119999999")

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "ACME", created.Name)
		assert.Equal(t, "12345678000199", created.CNPJ)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no cnpj uniqueness check", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, mockCache := newService(t)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Fornecedor")).
			Return(nil).Twice()
		mockCache.On("Delete", mock.Anything, "fornecedores").Return(nil).Twice()

		first, err := service.Create(ctx, "ACME", "12345678000199", "119999999")
		require.NoError(t, err)

		second, err := service.Create(ctx, "ACME Filial", "12345678000199", "118888888")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestFornecedorService_GetByID(t *testing.T) {
	t.Run("successfully", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, _ := newService(t)

		expected := &model.Fornecedor{ID: "f1", Name: "ACME"}
		mockRepo.On("FindByID", mock.Anything, "f1").Return(expected, nil).Once()

		found, err := service.GetByID(ctx, "f1")

		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})

	t.Run("not found", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, _ := newService(t)

		mockRepo.On("FindByID", mock.Anything, "missing").
			Return(nil, repository.ErrNotFound).Once()

		found, err := service.GetByID(ctx, "missing")

		require.Error(t, err)
		assert.Nil(t, found)

		apiErr := apperrors.AsAPIError(err)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Fornecedor not found", apiErr.Message)
	})
}

func TestFornecedorService_List(t *testing.T) {
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	service, mockRepo, mockCache := newService(t)

	expected := []*model.Fornecedor{{ID: "f1", Name: "ACME"}}

	mockCache.On("Get", mock.Anything, "fornecedores", mock.AnythingOfType("*[]*model.Fornecedor")).
		Return(false, nil).Once()
	mockRepo.On("List", mock.Anything).Return(expected, nil).Once()
	mockCache.On("Set", mock.Anything, "fornecedores", expected, 5*time.Minute).
		Return(nil).Once()

	fornecedores, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, fornecedores)
}

func TestFornecedorService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, _ := newService(t)

		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Fornecedor")).
			Return(repository.ErrNotFound).Once()

		updated, err := service.Update(ctx, "missing", "ACME", "12345678000199", "119999999")

		require.Error(t, err)
		assert.Nil(t, updated)

		apiErr := apperrors.AsAPIError(err)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Fornecedor not found", apiErr.Message)
	})
}

func TestFornecedorService_Delete(t *testing.T) {
	t.Run("successfully", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, mockCache := newService(t)

		mockRepo.On("Delete", mock.Anything, "f1").Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "fornecedores").Return(nil).Once()

		require.NoError(t, service.Delete(ctx, "f1"))
	})

	t.Run("not found", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		service, mockRepo, _ := newService(t)

		mockRepo.On("Delete", mock.Anything, "missing").
			Return(repository.ErrNotFound).Once()

		err := service.Delete(ctx, "missing")

		apiErr := apperrors.AsAPIError(err)
		assert.Equal(t, 404, apiErr.StatusCode)
	})
}
