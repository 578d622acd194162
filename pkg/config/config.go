package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config representa a configuração completa da aplicação
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
	Tracing  TracingConfig
	Features FeaturesConfig
}

// ServerConfig contém configurações do servidor HTTP
type ServerConfig struct {
	Port           int
	Host           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	TLS            bool
	CertFile       string
	KeyFile        string
	BaseURL        string
	Domains        []string
}

// StorageConfig contém configurações do armazenamento de dados.
// O driver "memory" é o padrão: as coleções vivem apenas durante o processo.
type StorageConfig struct {
	Driver          string // memory, sqlite, mysql, postgres
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	SlowThreshold   time.Duration
}

// RedisOptions contém configurações específicas para Redis
type RedisOptions struct {
	Address      string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DialTimeout  time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
	MaxConnAge   time.Duration
}

// CacheConfig contém configurações do cache
type CacheConfig struct {
	Enabled     bool
	Type        string // redis, memory
	TTL         time.Duration
	MaxItems    int // apenas para cache em memória
	MaxMemoryMB int // apenas para cache em memória
	Redis       RedisOptions
}

// AuthConfig contém configurações de autenticação.
// HashPasswords troca o armazenamento em texto puro por hash bcrypt sem
// alterar nenhum contrato de operação; desligado por padrão para preservar
// o comportamento original do painel.
type AuthConfig struct {
	HashPasswords bool
}

// MetricsConfig contém configurações de métricas
type MetricsConfig struct {
	Enabled        bool
	PrometheusPath string
	ReportInterval time.Duration
}

// LoggingConfig contém configurações de logging
type LoggingConfig struct {
	Level      string
	Format     string // json, console
	OutputPath string // stdout, file path
	ErrorPath  string
	Production bool
}

// TracingConfig contém configurações de rastreamento
type TracingConfig struct {
	Enabled       bool
	Provider      string // opentelemetry
	Endpoint      string
	ServiceName   string
	SamplingRatio float64
}

// FeaturesConfig contém flags de recursos
type FeaturesConfig struct {
	RateLimiter bool
	Caching     bool
	HealthCheck bool
	Monitoring  bool
}

// LoadConfig carrega a configuração de diversas fontes (arquivos, env, defaults)
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Definir valores padrão
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Locais para procurar arquivos de configuração
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/agendamentos")

	// Ler arquivo de configuração
	if err := v.ReadInConfig(); err != nil {
		// Ignorar se o arquivo não for encontrado
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
	}

	// Ler variáveis de ambiente com prefixo AGD_
	v.SetEnvPrefix("AGD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Mapear configuração para a estrutura
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("erro ao mapear configuração: %w", err)
	}

	// Validar a configuração
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults define valores padrão para a configuração
func setDefaults(v *viper.Viper) {
	// Servidor
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.readTimeout", "5s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.idleTimeout", "30s")
	v.SetDefault("server.maxHeaderBytes", 1<<20) // 1 MB
	v.SetDefault("server.tls", false)

	// Armazenamento
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.dsn", "file:agendamentos?mode=memory&cache=shared")
	v.SetDefault("storage.maxIdleConns", 10)
	v.SetDefault("storage.maxOpenConns", 50)
	v.SetDefault("storage.connMaxLifetime", "1h")
	v.SetDefault("storage.logLevel", "warn")
	v.SetDefault("storage.slowThreshold", "200ms")

	// Redis
	v.SetDefault("cache.redis.address", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.pool_size", 10)
	v.SetDefault("cache.redis.min_idle_conns", 5)
	v.SetDefault("cache.redis.max_retries", 3)
	v.SetDefault("cache.redis.read_timeout", "3s")
	v.SetDefault("cache.redis.write_timeout", "3s")
	v.SetDefault("cache.redis.dial_timeout", "5s")
	v.SetDefault("cache.redis.pool_timeout", "4s")
	v.SetDefault("cache.redis.idle_timeout", "5m")
	v.SetDefault("cache.redis.max_conn_age", "30m")

	// Cache
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cache.maxItems", 10000)
	v.SetDefault("cache.maxMemoryMB", 100)

	// Autenticação
	v.SetDefault("auth.hashPasswords", false)

	// Métricas
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.prometheusPath", "/metrics")
	v.SetDefault("metrics.reportInterval", "15s")

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputPath", "stdout")
	v.SetDefault("logging.errorPath", "stderr")
	v.SetDefault("logging.production", true)

	// Tracing
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.provider", "opentelemetry")
	v.SetDefault("tracing.samplingRatio", 0.1) // 10% das requisições
	v.SetDefault("tracing.serviceName", "agendamentos-api")

	// Features
	v.SetDefault("features.rateLimiter", false)
	v.SetDefault("features.caching", true)
	v.SetDefault("features.healthCheck", true)
	v.SetDefault("features.monitoring", true)
}

// validateConfig valida a configuração
func validateConfig(config *Config) error {
	// Validar configuração de TLS
	if config.Server.TLS {
		if config.Server.CertFile == "" || config.Server.KeyFile == "" {
			return fmt.Errorf("TLS habilitado, mas CertFile ou KeyFile não estão definidos")
		}
	}

	// Validar configuração do armazenamento
	validDrivers := map[string]bool{"memory": true, "sqlite": true, "mysql": true, "postgres": true}
	if !validDrivers[config.Storage.Driver] {
		return fmt.Errorf("driver de armazenamento inválido: %s", config.Storage.Driver)
	}

	if config.Storage.Driver != "memory" && config.Storage.DSN == "" {
		return fmt.Errorf("driver %s requer um DSN", config.Storage.Driver)
	}

	// Validar configuração de cache
	if config.Cache.Enabled {
		validTypes := map[string]bool{"memory": true, "redis": true}
		if !validTypes[config.Cache.Type] {
			return fmt.Errorf("tipo de cache inválido: %s", config.Cache.Type)
		}

		if config.Cache.Type == "redis" && config.Cache.Redis.Address == "" {
			return fmt.Errorf("tipo de cache redis requer um endereço")
		}
	}

	return nil
}
