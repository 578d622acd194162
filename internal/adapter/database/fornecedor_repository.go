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

// FornecedorRepository implementa repository.FornecedorRepository sobre GORM
type FornecedorRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewFornecedorRepository cria um novo repositório de fornecedores
func NewFornecedorRepository(db *gorm.DB, logger *zap.Logger) repository.FornecedorRepository {
	tracer := otel.GetTracerProvider().Tracer("agendamentos-api.repository.fornecedor")

	return &FornecedorRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// Create persiste um novo fornecedor
func (r *FornecedorRepository) Create(ctx context.Context, fornecedor *model.Fornecedor) error {
	ctx, span := r.tracer.Start(
		ctx,
		"FornecedorRepository.Create",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "fornecedores"),
			attribute.String("fornecedor.id", fornecedor.ID),
		),
	)
	defer span.End()

	entity := model.NewFornecedorEntity(fornecedor)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.logger.Error("falha ao criar fornecedor", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return fmt.Errorf("falha ao criar fornecedor: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// FindByID busca um fornecedor pelo identificador
func (r *FornecedorRepository) FindByID(ctx context.Context, id string) (*model.Fornecedor, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"FornecedorRepository.FindByID",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "fornecedores"),
			attribute.String("fornecedor.id", id),
		),
	)
	defer span.End()

	var entity model.FornecedorEntity

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "fornecedor not found")
			span.SetAttributes(attribute.Bool("fornecedor.found", false))

			return nil, repository.ErrNotFound
		}
		r.logger.Error("falha ao buscar fornecedor", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return nil, fmt.Errorf("falha ao buscar fornecedor: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return entity.ToModel(), nil
}

// List retorna todos os fornecedores na ordem de criação
func (r *FornecedorRepository) List(ctx context.Context) ([]*model.Fornecedor, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"FornecedorRepository.List",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "fornecedores"),
		),
	)
	defer span.End()

	var entities []model.FornecedorEntity

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&entities).Error; err != nil {
		r.logger.Error("falha ao listar fornecedores", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return nil, fmt.Errorf("falha ao listar fornecedores: %w", err)
	}

	fornecedores := make([]*model.Fornecedor, 0, len(entities))
	for i := range entities {
		fornecedores = append(fornecedores, entities[i].ToModel())
	}

	span.SetAttributes(attribute.Int("fornecedores.count", len(fornecedores)))
	span.SetStatus(codes.Ok, "")
	return fornecedores, nil
}

// Update persiste as alterações de um fornecedor existente
func (r *FornecedorRepository) Update(ctx context.Context, fornecedor *model.Fornecedor) error {
	ctx, span := r.tracer.Start(
		ctx,
		"FornecedorRepository.Update",
		trace.WithAttributes(
			attribute.String("db.operation", "update"),
			attribute.String("db.table", "fornecedores"),
			attribute.String("fornecedor.id", fornecedor.ID),
		),
	)
	defer span.End()

	entity := model.NewFornecedorEntity(fornecedor)

	result := r.db.WithContext(ctx).Model(&model.FornecedorEntity{}).Where("id = ?", fornecedor.ID).Updates(map[string]interface{}{
		"name":    entity.Name,
		"cnpj":    entity.CNPJ,
		"contact": entity.Contact,
	})
	if result.Error != nil {
		r.logger.Error("falha ao atualizar fornecedor", zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", result.Error.Error()),
		)

		return fmt.Errorf("falha ao atualizar fornecedor: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "fornecedor not found")
		return repository.ErrNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// Delete remove um fornecedor pelo identificador
func (r *FornecedorRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(
		ctx,
		"FornecedorRepository.Delete",
		trace.WithAttributes(
			attribute.String("db.operation", "delete"),
			attribute.String("db.table", "fornecedores"),
			attribute.String("fornecedor.id", id),
		),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FornecedorEntity{})
	if result.Error != nil {
		r.logger.Error("falha ao remover fornecedor", zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", result.Error.Error()),
		)

		return fmt.Errorf("falha ao remover fornecedor: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "fornecedor not found")
		return repository.ErrNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
