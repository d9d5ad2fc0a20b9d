package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Locale string
}

// Load carrega a configuração a partir das variáveis de ambiente e a valida.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// O .env é opcional quando as variáveis vêm do ambiente (Docker, CI, etc.).
	}

	cfg := &Config{
		Locale: os.Getenv("LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate aplica as regras sobre a configuração carregada.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		// Padrão útil em local quando LOCALE não é fornecida.
		c.Locale = "pt"
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: LOCALE inválida (%q): %w", c.Locale, err)
	}

	return nil
}
