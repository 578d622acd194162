// Package cache fornece o cache de listagens do painel. As coleções
// completas (usuários, fornecedores, agendamentos) são guardadas sob uma
// chave por recurso e invalidadas a cada escrita.
package cache

import (
	"context"
	"time"
)

// Cache é a interface consumida pelos serviços para leitura e invalidação
// das listagens
type Cache interface {
	// Set armazena um valor com tempo de expiração próprio
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Get preenche dest com o valor da chave; retorna false quando ausente
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Delete invalida uma chave
	Delete(ctx context.Context, key string) error

	// Clear descarta todo o conteúdo
	Clear(ctx context.Context) error

	// Ping verifica se o cache está acessível
	Ping(ctx context.Context) error
}
