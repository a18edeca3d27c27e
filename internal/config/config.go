package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Section é o objeto do arquivo compartilhado que pertence ao relatório mensal
const Section = "monthly_content_report"

type Config struct {
	App        App        `mapstructure:",squash"`
	ThriveCart ThriveCart `mapstructure:",squash"`
	Umami      Umami      `mapstructure:",squash"`
	Metrics    Metrics    `mapstructure:",squash"`
}

type App struct {
	LogLevel    string        `mapstructure:"log_level"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

type ThriveCart struct {
	URL       string `mapstructure:"thrivecart_url"`
	APIKey    string `mapstructure:"thrivecart_api_key"`
	ProductID string `mapstructure:"thrivecart_product_id"`
}

type Umami struct {
	URL       string `mapstructure:"umami_url"`
	User      string `mapstructure:"umami_user"`
	Password  string `mapstructure:"umami_pass"`
	WebsiteID string `mapstructure:"umami_website_id"`
	Path      string `mapstructure:"umami_path"`
	Timezone  string `mapstructure:"umami_timezone"`
}

type Metrics struct {
	TextFile string `mapstructure:"metrics_textfile"`
}

// SetDefaults registra os valores usados quando nem o arquivo nem o ambiente definem a opção.
// As chaves são os nomes das variáveis de ambiente.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("HTTP_TIMEOUT", "0s") // sem timeout, a requisição espera o provedor

	v.SetDefault("THRIVECART_URL", "https://thrivecart.com")
	v.SetDefault("THRIVECART_PRODUCT_ID", "9")

	v.SetDefault("UMAMI_PATH", "/cursos/expert/ai")
	v.SetDefault("UMAMI_TIMEZONE", "Europe/Madrid")
}

// DefaultPath retorna o caminho do arquivo de configuração compartilhado do usuário
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("erro ao obter o diretório do usuário: %w", err)
	}

	return filepath.Join(home, ".config", "skills", "config.json"), nil
}

// NewConfig carrega a configuração do arquivo em path. Arquivo ausente ou inválido resulta
// em uma configuração vazia; variáveis de ambiente e valores padrão preenchem o que faltar.
func NewConfig(path string) (*Config, error) {
	loadEnvFile()

	section := readSection(path)

	config, err := decodeSection(section)
	if err != nil {
		return nil, err
	}

	env := viper.New()
	SetDefaults(env)
	env.AutomaticEnv()

	applyFallbacks(config, env)

	return config, nil
}

// decodeSection decodifica a seção chave a chave. Um valor de tipo inválido é ignorado
// e a opção segue vazia para o ambiente e os padrões, sem afetar as demais.
func decodeSection(section *viper.Viper) (*Config, error) {
	config := &Config{}

	for key, value := range section.AllSettings() {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			WeaklyTypedInput: true,
			Result:           config,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar o decodificador da seção %s: %w", Section, err)
		}

		if err := decoder.Decode(map[string]interface{}{key: value}); err != nil {
			logrus.WithError(err).WithField("key", key).Debug("config: valor inválido ignorado")
		}
	}

	return config, nil
}

// readSection lê o arquivo JSON e devolve apenas a seção do relatório
func readSection(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		logrus.WithError(err).WithField("path", path).Debug("config: arquivo não lido, usando configuração vazia")
		return viper.New()
	}

	section := v.Sub(Section)
	if section == nil {
		logrus.WithField("path", path).Debugf("config: seção %s ausente", Section)
		return viper.New()
	}

	return section
}

// applyFallbacks completa os campos vazios com o ambiente e, em seguida, com os padrões
func applyFallbacks(config *Config, env *viper.Viper) {
	fallback := func(field *string, key string) {
		if strings.TrimSpace(*field) == "" {
			*field = env.GetString(key)
		}
	}

	fallback(&config.App.LogLevel, "LOG_LEVEL")
	if config.App.HTTPTimeout == 0 {
		config.App.HTTPTimeout = env.GetDuration("HTTP_TIMEOUT")
	}

	fallback(&config.ThriveCart.URL, "THRIVECART_URL")
	fallback(&config.ThriveCart.APIKey, "THRIVECART_API_KEY")
	fallback(&config.ThriveCart.ProductID, "THRIVECART_PRODUCT_ID")

	fallback(&config.Umami.URL, "UMAMI_URL")
	fallback(&config.Umami.User, "UMAMI_USER")
	fallback(&config.Umami.Password, "UMAMI_PASS")
	fallback(&config.Umami.WebsiteID, "UMAMI_WEBSITE_ID")
	fallback(&config.Umami.Path, "UMAMI_PATH")
	fallback(&config.Umami.Timezone, "UMAMI_TIMEZONE")

	fallback(&config.Metrics.TextFile, "METRICS_TEXTFILE")

	config.ThriveCart.URL = strings.TrimRight(config.ThriveCart.URL, "/")
	config.Umami.URL = strings.TrimRight(config.Umami.URL, "/")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Debug("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
