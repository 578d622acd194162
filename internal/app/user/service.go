package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/guih-henriqueee/agendamentos-api/internal/auth"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"github.com/guih-henriqueee/agendamentos-api/pkg/cache"
	apperrors "github.com/guih-henriqueee/agendamentos-api/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const listCacheKey = "users"

// Service concentra as regras de negócio de usuários: unicidade de CPF e
// e-mail na criação, conflito de nome/e-mail na atualização e emissão do
// token de acesso.
type Service struct {
	repo          repository.UserRepository
	codec         *auth.Codec
	cache         cache.Cache
	logger        *zap.Logger
	hashPasswords bool
}

// NewService cria um novo serviço de usuários. Com hashPasswords ativo a
// senha é armazenada como hash bcrypt em vez de texto puro.
func NewService(repo repository.UserRepository, codec *auth.Codec, cache cache.Cache, logger *zap.Logger, hashPasswords bool) *Service {
	return &Service{
		repo:          repo,
		codec:         codec,
		cache:         cache,
		logger:        logger,
		hashPasswords: hashPasswords,
	}
}

// Create registra um novo usuário. A verificação de CPF duplicado vem antes
// da de e-mail, então um cadastro que repita os dois campos reporta o CPF.
func (s *Service) Create(ctx context.Context, name, email, cpf, password string) (*model.User, error) {
	if _, err := s.repo.FindByCPF(ctx, cpf); err == nil {
		return nil, apperrors.Conflict("CPF already exists", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("Email already exists", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if s.hashPasswords {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.InternalServer("falha ao gerar hash de senha", err)
		}
		password = string(hashed)
	}

	now := time.Now()
	id := uuid.New().String()

	user := &model.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CPF:       cpf,
		Password:  password,
		Token:     s.codec.GenerateToken(email, id, cpf),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("usuário criado", zap.String("id", user.ID))
	return user, nil
}

// List retorna todos os usuários na ordem de cadastro
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User

	found, err := s.cache.Get(ctx, listCacheKey, &users)
	if err != nil {
		s.logger.Error("erro ao buscar usuários do cache", zap.Error(err))
	} else if found {
		return users, nil
	}

	users, err = s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listCacheKey, users, 5*time.Minute); err != nil {
		s.logger.Warn("erro ao armazenar usuários no cache", zap.Error(err))
	}

	return users, nil
}

// GetByID retorna um único usuário
func (s *Service) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, err
	}
	return user, nil
}

// Update substitui nome, e-mail, senha e updatedAt de um usuário existente.
// ID, CPF, createdAt e token do registro original são sempre preservados.
func (s *Service) Update(ctx context.Context, id, name, email, password string, updatedAt time.Time) (*model.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, err
	}

	conflict, err := s.repo.HasNameOrEmail(ctx, name, email, id)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.Conflict("Name or email already exists", nil)
	}

	if s.hashPasswords {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.InternalServer("falha ao gerar hash de senha", err)
		}
		password = string(hashed)
	}

	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	updated := &model.User{
		ID:        existing.ID,
		Name:      name,
		Email:     email,
		CPF:       existing.CPF,
		Password:  password,
		Token:     existing.Token,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: updatedAt,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, err
	}

	s.invalidateListCache(ctx)

	return updated, nil
}

// Delete remove um usuário
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("User", err)
		}
		return err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("usuário removido", zap.String("id", id))
	return nil
}

// ValidateToken confere se o token corresponde aos dados do usuário informado
func (s *Service) ValidateToken(ctx context.Context, token, email, id, cpf string) bool {
	return s.codec.ValidateToken(token, email, id, cpf)
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("erro ao invalidar cache de usuários", zap.Error(err))
	}
}
