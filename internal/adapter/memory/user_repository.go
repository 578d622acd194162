// Package memory implementa os repositórios do domínio sobre mapas em
// memória. É o armazenamento padrão: o estado vive apenas durante o processo.
//
// Cada repositório guarda um mapa indexado por id para busca O(1) e uma
// lista de ids na ordem de inserção, protegidos por um RWMutex próprio.
// Leituras e escritas copiam os registros, então nenhum chamador observa um
// registro pela metade nem consegue mutar o estado interno por referência.
package memory

import (
	"context"
	"sync"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
)

// UserRepository implementa repository.UserRepository em memória
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
	order []string
}

// NewUserRepository cria um novo repositório de usuários em memória
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]model.User)}
}

// Create persiste um novo usuário
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

// FindByID busca um usuário pelo id
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

// FindByEmail busca um usuário pelo e-mail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindByCPF busca um usuário pelo CPF
func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.users[id]; u.CPF == cpf {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// HasNameOrEmail verifica se outro usuário já possui o nome ou o e-mail
func (r *UserRepository) HasNameOrEmail(ctx context.Context, name, email, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if id == excludeID {
			continue
		}
		if u := r.users[id]; u.Name == name || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// List retorna todos os usuários na ordem de inserção
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		users = append(users, &u)
	}
	return users, nil
}

// Update substitui o registro de um usuário existente
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

// Delete remove um usuário permanentemente
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
