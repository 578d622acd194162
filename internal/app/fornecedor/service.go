package fornecedor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"github.com/guih-henriqueee/agendamentos-api/pkg/cache"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"go.uber.org/zap"
)

const listCacheKey = "fornecedores"

// Service concentra as regras de negócio de fornecedores. Não há verificação
// de unicidade de CNPJ: dois fornecedores podem compartilhar o mesmo CNPJ.
type Service struct {
	repo   repository.FornecedorRepository
	cache  cache.Cache
	logger *zap.Logger
}

// NewService cria um novo serviço de fornecedores
func NewService(repo repository.FornecedorRepository, cache cache.Cache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Create registra um novo fornecedor
func (s *Service) Create(ctx context.Context, name, cnpj, contact string) (*model.Fornecedor, error) {
	fornecedor := &model.Fornecedor{
		ID:      uuid.New().String(),
		Name:    name,
		CNPJ:    cnpj,
		Contact: contact,
	}

	if err := s.repo.Create(ctx, fornecedor); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("fornecedor criado", zap.String("id", fornecedor.ID))
	return fornecedor, nil
}

// List retorna todos os fornecedores na ordem de cadastro
func (s *Service) List(ctx context.Context) ([]*model.Fornecedor, error) {
	var fornecedores []*model.Fornecedor

	found, err := s.cache.Get(ctx, listCacheKey, &fornecedores)
	if err != nil {
		s.logger.Error("erro ao buscar fornecedores do cache", zap.Error(err))
	} else if found {
		return fornecedores, nil
	}

	fornecedores, err = s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listCacheKey, fornecedores, 5*time.Minute); err != nil {
		s.logger.Warn("erro ao armazenar fornecedores no cache", zap.Error(err))
	}

	return fornecedores, nil
}

// GetByID retorna um único fornecedor
func (s *Service) GetByID(ctx context.Context, id string) (*model.Fornecedor, error) {
	fornecedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Fornecedor", err)
		}
		return nil, err
	}
	return fornecedor, nil
}

// Update substitui nome, CNPJ e contato de um fornecedor existente
func (s *Service) Update(ctx context.Context, id, name, cnpj, contact string) (*model.Fornecedor, error) {
	fornecedor := &model.Fornecedor{
		ID:      id,
		Name:    name,
		CNPJ:    cnpj,
		Contact: contact,
	}

	if err := s.repo.Update(ctx, fornecedor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Fornecedor", err)
		}
		return nil, err
	}

	s.invalidateListCache(ctx)

	return fornecedor, nil
}

// Delete remove um fornecedor
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Fornecedor", err)
		}
		return err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("fornecedor removido", zap.String("id", id))
	return nil
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("erro ao invalidar cache de fornecedores", zap.Error(err))
	}
}
