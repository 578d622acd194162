package memory

import (
	"context"
	"sync"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
)

// FornecedorRepository implementa repository.FornecedorRepository em memória
type FornecedorRepository struct {
	mu           sync.RWMutex
	fornecedores map[string]model.Fornecedor
	order        []string
}

// NewFornecedorRepository cria um novo repositório de fornecedores em memória
func NewFornecedorRepository() *FornecedorRepository {
	return &FornecedorRepository{fornecedores: make(map[string]model.Fornecedor)}
}

// Create persiste um novo fornecedor
func (r *FornecedorRepository) Create(ctx context.Context, fornecedor *model.Fornecedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fornecedores[fornecedor.ID] = *fornecedor
	r.order = append(r.order, fornecedor.ID)
	return nil
}

// FindByID busca um fornecedor pelo id
func (r *FornecedorRepository) FindByID(ctx context.Context, id string) (*model.Fornecedor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fornecedores[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

// List retorna todos os fornecedores na ordem de inserção
func (r *FornecedorRepository) List(ctx context.Context) ([]*model.Fornecedor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fornecedores := make([]*model.Fornecedor, 0, len(r.order))
	for _, id := range r.order {
		f := r.fornecedores[id]
		fornecedores = append(fornecedores, &f)
	}
	return fornecedores, nil
}

// Update substitui o registro de um fornecedor existente
func (r *FornecedorRepository) Update(ctx context.Context, fornecedor *model.Fornecedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fornecedores[fornecedor.ID]; !ok {
		return repository.ErrNotFound
	}
	r.fornecedores[fornecedor.ID] = *fornecedor
	return nil
}

// Delete remove um fornecedor permanentemente
func (r *FornecedorRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fornecedores[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.fornecedores, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
