package memory

import (
	"context"
	"sync"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
)

// AgendamentoRepository implementa repository.AgendamentoRepository em memória
type AgendamentoRepository struct {
	mu           sync.RWMutex
	agendamentos map[string]model.Agendamento
	order        []string
}

// NewAgendamentoRepository cria um novo repositório de agendamentos em memória
func NewAgendamentoRepository() *AgendamentoRepository {
	return &AgendamentoRepository{agendamentos: make(map[string]model.Agendamento)}
}

// Create persiste um novo agendamento
func (r *AgendamentoRepository) Create(ctx context.Context, agendamento *model.Agendamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.agendamentos[agendamento.ID] = *agendamento
	r.order = append(r.order, agendamento.ID)
	return nil
}

// FindByID busca um agendamento pelo id
func (r *AgendamentoRepository) FindByID(ctx context.Context, id string) (*model.Agendamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.agendamentos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

// List retorna todos os agendamentos na ordem de inserção
func (r *AgendamentoRepository) List(ctx context.Context) ([]*model.Agendamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agendamentos := make([]*model.Agendamento, 0, len(r.order))
	for _, id := range r.order {
		a := r.agendamentos[id]
		agendamentos = append(agendamentos, &a)
	}
	return agendamentos, nil
}

// Update substitui o registro de um agendamento existente
func (r *AgendamentoRepository) Update(ctx context.Context, agendamento *model.Agendamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agendamentos[agendamento.ID]; !ok {
		return repository.ErrNotFound
	}
	r.agendamentos[agendamento.ID] = *agendamento
	return nil
}

// Delete remove um agendamento permanentemente
func (r *AgendamentoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agendamentos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.agendamentos, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
