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

// AgendamentoRepository implementa repository.AgendamentoRepository sobre GORM
type AgendamentoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewAgendamentoRepository cria um novo repositório de agendamentos
func NewAgendamentoRepository(db *gorm.DB, logger *zap.Logger) repository.AgendamentoRepository {
	tracer := otel.GetTracerProvider().Tracer("agendamentos-api.repository.agendamento")

	return &AgendamentoRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// Create persiste um novo agendamento com os recortes já congelados
func (r *AgendamentoRepository) Create(ctx context.Context, agendamento *model.Agendamento) error {
	ctx, span := r.tracer.Start(
		ctx,
		"AgendamentoRepository.Create",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "agendamentos"),
			attribute.String("agendamento.id", agendamento.ID),
		),
	)
	defer span.End()

	entity := model.NewAgendamentoEntity(agendamento)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.logger.Error("falha ao criar agendamento", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return fmt.Errorf("falha ao criar agendamento: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// FindByID busca um agendamento pelo identificador
func (r *AgendamentoRepository) FindByID(ctx context.Context, id string) (*model.Agendamento, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"AgendamentoRepository.FindByID",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "agendamentos"),
			attribute.String("agendamento.id", id),
		),
	)
	defer span.End()

	var entity model.AgendamentoEntity

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "agendamento not found")
			span.SetAttributes(attribute.Bool("agendamento.found", false))

			return nil, repository.ErrNotFound
		}
		r.logger.Error("falha ao buscar agendamento", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return nil, fmt.Errorf("falha ao buscar agendamento: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return entity.ToModel(), nil
}

// List retorna todos os agendamentos na ordem de criação
func (r *AgendamentoRepository) List(ctx context.Context) ([]*model.Agendamento, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"AgendamentoRepository.List",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "agendamentos"),
		),
	)
	defer span.End()

	var entities []model.AgendamentoEntity

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&entities).Error; err != nil {
		r.logger.Error("falha ao listar agendamentos", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)

		return nil, fmt.Errorf("falha ao listar agendamentos: %w", err)
	}

	agendamentos := make([]*model.Agendamento, 0, len(entities))
	for i := range entities {
		agendamentos = append(agendamentos, entities[i].ToModel())
	}

	span.SetAttributes(attribute.Int("agendamentos.count", len(agendamentos)))
	span.SetStatus(codes.Ok, "")
	return agendamentos, nil
}

// Update persiste apenas os campos mutáveis de um agendamento existente.
// Os recortes e os demais campos de criação nunca são tocados aqui.
func (r *AgendamentoRepository) Update(ctx context.Context, agendamento *model.Agendamento) error {
	ctx, span := r.tracer.Start(
		ctx,
		"AgendamentoRepository.Update",
		trace.WithAttributes(
			attribute.String("db.operation", "update"),
			attribute.String("db.table", "agendamentos"),
			attribute.String("agendamento.id", agendamento.ID),
		),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Model(&model.AgendamentoEntity{}).Where("id = ?", agendamento.ID).Updates(map[string]interface{}{
		"name":        agendamento.Name,
		"price":       agendamento.Price,
		"description": agendamento.Description,
		"quantity":    agendamento.Quantity,
		"updated_at":  agendamento.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Error("falha ao atualizar agendamento", zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", result.Error.Error()),
		)

		return fmt.Errorf("falha ao atualizar agendamento: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "agendamento not found")
		return repository.ErrNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// Delete remove um agendamento pelo identificador
func (r *AgendamentoRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(
		ctx,
		"AgendamentoRepository.Delete",
		trace.WithAttributes(
			attribute.String("db.operation", "delete"),
			attribute.String("db.table", "agendamentos"),
			attribute.String("agendamento.id", id),
		),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AgendamentoEntity{})
	if result.Error != nil {
		r.logger.Error("falha ao remover agendamento", zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", result.Error.Error()),
		)

		return fmt.Errorf("falha ao remover agendamento: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "agendamento not found")
		return repository.ErrNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
