package mocks

import (
	"context"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository é um mock para repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByCPF(ctx context.Context, cpf string) (*model.User, error) {
	args := m.Called(ctx, cpf)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) HasNameOrEmail(ctx context.Context, name, email, excludeID string) (bool, error) {
	args := m.Called(ctx, name, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFornecedorRepository é um mock para repository.FornecedorRepository
type MockFornecedorRepository struct {
	mock.Mock
}

func (m *MockFornecedorRepository) Create(ctx context.Context, fornecedor *model.Fornecedor) error {
	args := m.Called(ctx, fornecedor)
	return args.Error(0)
}

func (m *MockFornecedorRepository) FindByID(ctx context.Context, id string) (*model.Fornecedor, error) {
	args := m.Called(ctx, id)
	if fornecedor, ok := args.Get(0).(*model.Fornecedor); ok {
		return fornecedor, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFornecedorRepository) List(ctx context.Context) ([]*model.Fornecedor, error) {
	args := m.Called(ctx)
	if fornecedores, ok := args.Get(0).([]*model.Fornecedor); ok {
		return fornecedores, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFornecedorRepository) Update(ctx context.Context, fornecedor *model.Fornecedor) error {
	args := m.Called(ctx, fornecedor)
	return args.Error(0)
}

func (m *MockFornecedorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAgendamentoRepository é um mock para repository.AgendamentoRepository
type MockAgendamentoRepository struct {
	mock.Mock
}

func (m *MockAgendamentoRepository) Create(ctx context.Context, agendamento *model.Agendamento) error {
	args := m.Called(ctx, agendamento)
	return args.Error(0)
}

func (m *MockAgendamentoRepository) FindByID(ctx context.Context, id string) (*model.Agendamento, error) {
	args := m.Called(ctx, id)
	if agendamento, ok := args.Get(0).(*model.Agendamento); ok {
		return agendamento, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgendamentoRepository) List(ctx context.Context) ([]*model.Agendamento, error) {
	args := m.Called(ctx)
	if agendamentos, ok := args.Get(0).([]*model.Agendamento); ok {
		return agendamentos, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgendamentoRepository) Update(ctx context.Context, agendamento *model.Agendamento) error {
	args := m.Called(ctx, agendamento)
	return args.Error(0)
}

func (m *MockAgendamentoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFuncionarioRepository é um mock para repository.FuncionarioRepository
type MockFuncionarioRepository struct {
	mock.Mock
}

func (m *MockFuncionarioRepository) Create(ctx context.Context, funcionario *model.Funcionario) error {
	args := m.Called(ctx, funcionario)
	return args.Error(0)
}

func (m *MockFuncionarioRepository) List(ctx context.Context) ([]*model.Funcionario, error) {
	args := m.Called(ctx)
	if funcionarios, ok := args.Get(0).([]*model.Funcionario); ok {
		return funcionarios, args.Error(1)
	}
	return nil, args.Error(1)
}
