package memory_test

import (
	"context"
	"testing"

	"github.com/guih-henriqueee/agendamentos-api/internal/adapter/memory"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFornecedorRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFornecedorRepository()

	require.NoError(t, repo.Create(ctx, &model.Fornecedor{ID: "f1", Name: "ACME", CNPJ: "12345678000199", Contact: "119998877"}))
	require.NoError(t, repo.Create(ctx, &model.Fornecedor{ID: "f2", Name: "Beta", CNPJ: "98765432000111", Contact: "118887766"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "f1", list[0].ID)

	got, err := repo.FindByID(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.Name)

	got.Contact = "110001122"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.FindByID(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, "110001122", again.Contact)

	require.NoError(t, repo.Delete(ctx, "f1"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = repo.FindByID(ctx, "f1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "f1"), repository.ErrNotFound)
}

func TestFornecedorRepository_DuplicateCNPJAllowed(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFornecedorRepository()

	require.NoError(t, repo.Create(ctx, &model.Fornecedor{ID: "f1", Name: "ACME", CNPJ: "12345678000199", Contact: "119998877"}))
	require.NoError(t, repo.Create(ctx, &model.Fornecedor{ID: "f2", Name: "ACME Filial", CNPJ: "12345678000199", Contact: "118887766"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
