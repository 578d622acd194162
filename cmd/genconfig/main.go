package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/guih-henriqueee/agendamentos-api/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		outputPath string
		force      bool
	)

	flag.StringVar(&outputPath, "output", "config.yaml", "Caminho para o arquivo de configuração de saída")
	flag.BoolVar(&force, "force", false, "Sobrescrever arquivo se existir")
	flag.Parse()

	// Verificar se o arquivo já existe
	if _, err := os.Stat(outputPath); err == nil && !force {
		fmt.Printf("Erro: arquivo %s já existe. Use --force para sobrescrever.\n", outputPath)
		os.Exit(1)
	}

	// Criar configuração com valores padrão
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           3000,
			Host:           "0.0.0.0",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
			TLS:            false,
			CertFile:       "/path/to/cert.pem",
			KeyFile:        "/path/to/key.pem",
			BaseURL:        "https://agendamentos.example.com",
			Domains:        []string{"agendamentos.example.com"},
		},
		Storage: config.StorageConfig{
			Driver:          "memory",
			DSN:             "./agendamentos.db",
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: 1 * time.Hour,
			LogLevel:        "warn",
			SlowThreshold:   200 * time.Millisecond,
		},
		Cache: config.CacheConfig{
			Enabled:     true,
			Type:        "memory",
			TTL:         5 * time.Minute,
			MaxItems:    10000,
			MaxMemoryMB: 100,
			Redis: config.RedisOptions{
				Address:  "localhost:6379",
				Password: "",
				DB:       0,
			},
		},
		Auth: config.AuthConfig{
			HashPasswords: false, // Opção: true armazena senhas com hash bcrypt
		},
		Metrics: config.MetricsConfig{
			Enabled:        true,
			PrometheusPath: "/metrics",
			ReportInterval: 15 * time.Second,
		},
		Logging: config.LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
			ErrorPath:  "stderr",
			Production: true,
		},
		Tracing: config.TracingConfig{
			Enabled:       false,
			Provider:      "opentelemetry",
			Endpoint:      "localhost:4317",
			ServiceName:   "agendamentos-api",
			SamplingRatio: 0.1,
		},
		Features: config.FeaturesConfig{
			RateLimiter: false,
			Caching:     true,
			HealthCheck: true,
			Monitoring:  true,
		},
	}

	// Converter para YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Printf("Erro ao serializar configuração: %v\n", err)
		os.Exit(1)
	}

	// Documentar o driver de armazenamento na própria linha
	yamlStr := string(data)
	re := regexp.MustCompile(`(\s+driver:\s+memory)`)
	yamlStr = re.ReplaceAllString(yamlStr, `$1  # Opções: memory, sqlite, mysql, postgres`)

	// Escrever arquivo
	err = os.WriteFile(outputPath, []byte(yamlStr), 0644)
	if err != nil {
		fmt.Printf("Erro ao escrever arquivo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Arquivo de configuração gerado em: %s\n", outputPath)
}
