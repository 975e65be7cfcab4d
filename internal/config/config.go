package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	AdLibrary    AdLibrary    `mapstructure:",squash"`
	Pipeline     Pipeline     `mapstructure:",squash"`
	PipelineSync PipelineSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string `mapstructure:"-"`
	Driver          string `mapstructure:"database_driver"`
	Password        string `mapstructure:"database_password"`
	URL             string `mapstructure:"database_url"`
	User            string `mapstructure:"database_user"`
	MaxOpenConns    int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int    `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"database_conn_max_lifetime_minutes"`
}

// AdLibrary configura o acesso à fonte externa de biblioteca de anúncios.
type AdLibrary struct {
	BaseURL               string `mapstructure:"ad_library_base_url"`
	AccessToken           string `mapstructure:"ad_library_access_token"`
	RequestTimeoutSeconds int    `mapstructure:"ad_library_request_timeout_seconds"`
	MaxRetries            int    `mapstructure:"ad_library_max_retries"`
	DefaultLookbackMonths int    `mapstructure:"ad_library_default_lookback_months"`
}

// Pipeline configura a execução do pipeline de ingestão e sumarização.
type Pipeline struct {
	MaxConcurrentBrands   int `mapstructure:"pipeline_max_concurrent_brands"`
	StorageTimeoutSeconds int `mapstructure:"pipeline_storage_timeout_seconds"`
}

// PipelineSync configura o agendador do refresh completo de sumários.
type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
	WithIngest   bool   `mapstructure:"pipeline_sync_with_ingest"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/competitor_ads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)

	viper.SetDefault("AD_LIBRARY_BASE_URL", "https://adlibrary-gateway.internal/v1")
	viper.SetDefault("AD_LIBRARY_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("AD_LIBRARY_REQUEST_TIMEOUT_SECONDS", 60)
	viper.SetDefault("AD_LIBRARY_MAX_RETRIES", 3)
	viper.SetDefault("AD_LIBRARY_DEFAULT_LOOKBACK_MONTHS", 12)

	viper.SetDefault("PIPELINE_MAX_CONCURRENT_BRANDS", 3)
	viper.SetDefault("PIPELINE_STORAGE_TIMEOUT_SECONDS", 30)

	// Refresh completo na madrugada, depois da janela de coleta da fonte
	viper.SetDefault("PIPELINE_SYNC_CRON", "0 5 * * *")
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)
	viper.SetDefault("PIPELINE_SYNC_WITH_INGEST", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica as configurações obrigatórias do pipeline. Falha de
// configuração é fatal: nenhum trabalho parcial é tentado.
func (c *Config) Validate() error {
	if c.Database.URL == "" || c.Database.User == "" {
		return fmt.Errorf("configuração de banco de dados incompleta")
	}

	if c.AdLibrary.BaseURL == "" {
		return fmt.Errorf("AD_LIBRARY_BASE_URL não configurada")
	}

	if c.AdLibrary.AccessToken == "" {
		return fmt.Errorf("AD_LIBRARY_ACCESS_TOKEN não configurado")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
