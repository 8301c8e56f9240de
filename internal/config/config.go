package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	keyFile        = "file"
	keyModel       = "model"
	keyEndpoint    = "endpoint"
	keyTimeoutMs   = "timeout_ms"
	keyLogLLMCalls = "log_llm_calls"
)

// Config holds the explicit settings for the tool: where the log lives
// and how to reach the model server. No package-level defaults leak out;
// callers receive a fully resolved struct.
type Config struct {
	StoragePath string `mapstructure:"file" validate:"required"`
	Model       string `mapstructure:"model" validate:"required"`
	Endpoint    string `mapstructure:"endpoint" validate:"required,url"`
	TimeoutMs   int    `mapstructure:"timeout_ms" validate:"gt=0"`
	LogLLMCalls bool   `mapstructure:"log_llm_calls"`
}

// Load resolves configuration from, in increasing precedence: built-in
// defaults, an optional tasklog.yaml (cwd, then $HOME/.config/tasklog/),
// and TASKLOG_* environment variables. The result is validated.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("tasklog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "tasklog"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("TASKLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return loadAndValidate(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyFile, "tasklog.csv")
	v.SetDefault(keyModel, "llama3")
	v.SetDefault(keyEndpoint, "http://localhost:11434")
	v.SetDefault(keyTimeoutMs, 60000)
	v.SetDefault(keyLogLLMCalls, false)
}

func loadAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, fmt.Errorf("invalid configuration: field %s failed %q", fe.Field(), fe.Tag())
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# tasklog configuration
file: "tasklog.csv"
model: "llama3"
endpoint: "http://localhost:11434"
timeout_ms: 60000
log_llm_calls: false
`
}
