package database

import (
	"context"
	"fmt"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FuncionarioRepository implementa repository.FuncionarioRepository sobre GORM
type FuncionarioRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFuncionarioRepository cria um novo repositório de funcionários
func NewFuncionarioRepository(db *gorm.DB, logger *zap.Logger) repository.FuncionarioRepository {
	return &FuncionarioRepository{db: db, logger: logger}
}

// Create persiste um novo funcionário
func (r *FuncionarioRepository) Create(ctx context.Context, funcionario *model.Funcionario) error {
	entity := model.NewFuncionarioEntity(funcionario)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.logger.Error("falha ao criar funcionário", zap.Error(err))
		return fmt.Errorf("falha ao criar funcionário: %w", err)
	}
	return nil
}

// List retorna todos os funcionários na ordem de criação
func (r *FuncionarioRepository) List(ctx context.Context) ([]*model.Funcionario, error) {
	var entities []model.FuncionarioEntity

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&entities).Error; err != nil {
		r.logger.Error("falha ao listar funcionários", zap.Error(err))
		return nil, fmt.Errorf("falha ao listar funcionários: %w", err)
	}

	funcionarios := make([]*model.Funcionario, 0, len(entities))
	for i := range entities {
		funcionarios = append(funcionarios, entities[i].ToModel())
	}
	return funcionarios, nil
}
