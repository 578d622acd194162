package funcionario

import (
	"context"

	"github.com/google/uuid"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"go.uber.org/zap"
)

// Service concentra as regras de negócio de funcionários
type Service struct {
	repo   repository.FuncionarioRepository
	logger *zap.Logger
}

// NewService cria um novo serviço de funcionários
func NewService(repo repository.FuncionarioRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create registra um novo funcionário
func (s *Service) Create(ctx context.Context, name, document string, salary float64, manager string) (*model.Funcionario, error) {
	funcionario := &model.Funcionario{
		ID:       uuid.New().String(),
		Name:     name,
		Document: document,
		Salary:   salary,
		Manager:  manager,
	}

	if err := s.repo.Create(ctx, funcionario); err != nil {
		return nil, err
	}

	s.logger.Info("funcionário criado", zap.String("id", funcionario.ID))
	return funcionario, nil
}

// List retorna todos os funcionários na ordem de cadastro
func (s *Service) List(ctx context.Context) ([]*model.Funcionario, error) {
	return s.repo.List(ctx)
}
