package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/guih-henriqueee/agendamentos-api/internal/domain/model"
	"github.com/guih-henriqueee/agendamentos-api/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserRepository implementa repository.UserRepository sobre GORM
type UserRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewUserRepository cria um novo repositório de usuários
func NewUserRepository(db *gorm.DB, logger *zap.Logger) repository.UserRepository {
	tracer := otel.GetTracerProvider().Tracer("agendamentos-api.repository.user")

	return &UserRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// Create persiste um novo usuário
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.Create",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "users"),
			attribute.String("user.id", user.ID),
		),
	)
	defer span.End()

	entity := model.NewUserEntity(user)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.logger.Error("falha ao criar usuário", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return fmt.Errorf("falha ao criar usuário: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// FindByID busca um usuário pelo identificador
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.FindByID",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "users"),
			attribute.String("user.id", id),
		),
	)
	defer span.End()

	return r.findOne(ctx, span, "id = ?", id)
}

// FindByEmail busca um usuário pelo e-mail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.FindByEmail",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "users"),
		),
	)
	defer span.End()

	return r.findOne(ctx, span, "email = ?", email)
}

// FindByCPF busca um usuário pelo CPF
func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*model.User, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.FindByCPF",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "users"),
		),
	)
	defer span.End()

	return r.findOne(ctx, span, "cpf = ?", cpf)
}

func (r *UserRepository) findOne(ctx context.Context, span trace.Span, query string, arg string) (*model.User, error) {
	var entity model.UserEntity

	if err := r.db.WithContext(ctx).Where(query, arg).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "user not found")
			span.SetAttributes(attribute.Bool("user.found", false))

			return nil, repository.ErrNotFound
		}
		r.logger.Error("falha ao buscar usuário", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return entity.ToModel(), nil
}

// HasNameOrEmail verifica se outro usuário já usa o nome ou o e-mail informados
func (r *UserRepository) HasNameOrEmail(ctx context.Context, name, email, excludeID string) (bool, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.HasNameOrEmail",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "users"),
		),
	)
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserEntity{}).
		Where("(name = ? OR email = ?) AND id <> ?", name, email, excludeID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("falha ao verificar conflito de usuário", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return false, fmt.Errorf("falha ao verificar conflito de usuário: %w", err)
	}

	span.SetAttributes(attribute.Bool("user.conflict", count > 0))
	span.SetStatus(codes.Ok, "")
	return count > 0, nil
}

// List retorna todos os usuários na ordem de criação
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.List",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "users"),
		),
	)
	defer span.End()

	var entities []model.UserEntity

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&entities).Error; err != nil {
		r.logger.Error("falha ao listar usuários", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}

	users := make([]*model.User, 0, len(entities))
	for i := range entities {
		users = append(users, entities[i].ToModel())
	}

	span.SetAttributes(attribute.Int("users.count", len(users)))
	span.SetStatus(codes.Ok, "")
	return users, nil
}

// Update persiste as alterações de um usuário existente
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.Update",
		trace.WithAttributes(
			attribute.String("db.operation", "update"),
			attribute.String("db.table", "users"),
			attribute.String("user.id", user.ID),
		),
	)
	defer span.End()

	entity := model.NewUserEntity(user)

	result := r.db.WithContext(ctx).Model(&model.UserEntity{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"name":       entity.Name,
		"email":      entity.Email,
		"password":   entity.Password,
		"updated_at": entity.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Error("falha ao atualizar usuário", zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", result.Error.Error()),
		)

		return fmt.Errorf("falha ao atualizar usuário: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "user not found")
		return repository.ErrNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// Delete remove um usuário pelo identificador
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(
		ctx,
		"UserRepository.Delete",
		trace.WithAttributes(
			attribute.String("db.operation", "delete"),
			attribute.String("db.table", "users"),
			attribute.String("user.id", id),
		),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserEntity{})
	if result.Error != nil {
		r.logger.Error("falha ao remover usuário", zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", result.Error.Error()),
		)

		return fmt.Errorf("falha ao remover usuário: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "user not found")
		return repository.ErrNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
