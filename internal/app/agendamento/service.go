package agendamento

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

const listCacheKey = "agendamentos"

// CreateInput reúne os dados de criação de um agendamento. Os recortes de
// usuário e fornecedor vêm prontos do chamador e são gravados como estão,
// sem conferência contra os cadastros.
type CreateInput struct {
	Name        string
	Price       float64
	Description string
	Quantity    int
	DataEntrega time.Time
	XML         string
	Commits     string
	Status      string
	UserCreated model.UserRef
	Fornecedor  model.FornecedorRef
}

// UpdateInput reúne os únicos campos mutáveis de um agendamento
type UpdateInput struct {
	Name        string
	Price       float64
	Description string
	Quantity    int
}

// Service concentra as regras de negócio de agendamentos
type Service struct {
	repo   repository.AgendamentoRepository
	cache  cache.Cache
	logger *zap.Logger
}

// NewService cria um novo serviço de agendamentos
func NewService(repo repository.AgendamentoRepository, cache cache.Cache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Create registra um novo agendamento. O recorte do criador é congelado em
// userCreated e userUpdated, e seus campos são achatados em userId, userName
// e userEmail para consulta direta.
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.Agendamento, error) {
	now := time.Now()

	agendamento := &model.Agendamento{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		DataEntrega: input.DataEntrega,
		XML:         input.XML,
		Commits:     input.Commits,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserCreated: input.UserCreated,
		UserUpdated: input.UserCreated,
		Fornecedor:  input.Fornecedor,
		UserID:      input.UserCreated.ID,
		UserName:    input.UserCreated.Name,
		UserEmail:   input.UserCreated.Email,
	}

	if err := s.repo.Create(ctx, agendamento); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("agendamento criado",
		zap.String("id", agendamento.ID),
		zap.String("userId", agendamento.UserID))
	return agendamento, nil
}

// List retorna todos os agendamentos na ordem de criação
func (s *Service) List(ctx context.Context) ([]*model.Agendamento, error) {
	var agendamentos []*model.Agendamento

	found, err := s.cache.Get(ctx, listCacheKey, &agendamentos)
	if err != nil {
		s.logger.Error("erro ao buscar agendamentos do cache", zap.Error(err))
	} else if found {
		return agendamentos, nil
	}

	agendamentos, err = s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listCacheKey, agendamentos, 5*time.Minute); err != nil {
		s.logger.Warn("erro ao armazenar agendamentos no cache", zap.Error(err))
	}

	return agendamentos, nil
}

// GetByID retorna um único agendamento
func (s *Service) GetByID(ctx context.Context, id string) (*model.Agendamento, error) {
	agendamento, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Agendamento", err)
		}
		return nil, err
	}
	return agendamento, nil
}

// Update substitui apenas nome, preço, descrição e quantidade, além de
// atualizar updatedAt. Recortes, status, xml, commits e dataEntrega nunca
// mudam depois da criação.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*model.Agendamento, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Agendamento", err)
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Price = input.Price
	existing.Description = input.Description
	existing.Quantity = input.Quantity
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Agendamento", err)
		}
		return nil, err
	}

	s.invalidateListCache(ctx)

	return existing, nil
}

// Delete remove um agendamento
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Agendamento", err)
		}
		return err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("agendamento removido", zap.String("id", id))
	return nil
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("erro ao invalidar cache de agendamentos", zap.Error(err))
	}
}
