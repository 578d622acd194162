// Package repository define os contratos de persistência do domínio.
// As implementações vivem em internal/adapter/memory e internal/adapter/database.
package repository

import (
	"context"
	"errors"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
)

// ErrNotFound indica que nenhum registro corresponde ao identificador dado
var ErrNotFound = errors.New("registro não encontrado")

// UserRepository define o acesso a dados de usuários
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByCPF(ctx context.Context, cpf string) (*model.User, error)
	// HasNameOrEmail verifica se outro usuário (id diferente de excludeID)
	// já possui o nome ou o e-mail informados
	HasNameOrEmail(ctx context.Context, name, email, excludeID string) (bool, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

// FornecedorRepository define o acesso a dados de fornecedores
type FornecedorRepository interface {
	Create(ctx context.Context, fornecedor *model.Fornecedor) error
	FindByID(ctx context.Context, id string) (*model.Fornecedor, error)
	List(ctx context.Context) ([]*model.Fornecedor, error)
	Update(ctx context.Context, fornecedor *model.Fornecedor) error
	Delete(ctx context.Context, id string) error
}

// AgendamentoRepository define o acesso a dados de agendamentos
type AgendamentoRepository interface {
	Create(ctx context.Context, agendamento *model.Agendamento) error
	FindByID(ctx context.Context, id string) (*model.Agendamento, error)
	List(ctx context.Context) ([]*model.Agendamento, error)
	Update(ctx context.Context, agendamento *model.Agendamento) error
	Delete(ctx context.Context, id string) error
}

// FuncionarioRepository define o acesso a dados de funcionários
type FuncionarioRepository interface {
	Create(ctx context.Context, funcionario *model.Funcionario) error
	List(ctx context.Context) ([]*model.Funcionario, error)
}
