package memory

import (
	"context"
	"sync"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
)

// FuncionarioRepository implementa repository.FuncionarioRepository em memória
type FuncionarioRepository struct {
	mu           sync.RWMutex
	funcionarios map[string]model.Funcionario
	order        []string
}

// NewFuncionarioRepository cria um novo repositório de funcionários em memória
func NewFuncionarioRepository() *FuncionarioRepository {
	return &FuncionarioRepository{funcionarios: make(map[string]model.Funcionario)}
}

// Create persiste um novo funcionário
func (r *FuncionarioRepository) Create(ctx context.Context, funcionario *model.Funcionario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.funcionarios[funcionario.ID] = *funcionario
	r.order = append(r.order, funcionario.ID)
	return nil
}

// List retorna todos os funcionários na ordem de inserção
func (r *FuncionarioRepository) List(ctx context.Context) ([]*model.Funcionario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	funcionarios := make([]*model.Funcionario, 0, len(r.order))
	for _, id := range r.order {
		f := r.funcionarios[id]
		funcionarios = append(funcionarios, &f)
	}
	return funcionarios, nil
}
