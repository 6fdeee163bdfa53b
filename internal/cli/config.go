package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/riverfjs/mdhtml-go"
)

// ConfigOption describes one configuration key, its default and meaning.
type ConfigOption struct {
	Key     string
	Flag    string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration keys understood by the CLI.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "table_class", Flag: "table-class", Default: mdhtml.DefaultConfig().TableClass, Comment: "class attribute set on rendered tables"},
		{Key: "sanitize", Flag: "sanitize", Default: false, Comment: "restrict output to the renderer's element vocabulary"},
		{Key: "html_input", Flag: "html", Default: false, Comment: "treat input as HTML and normalise it to Markdown first"},
		{Key: "workers", Flag: "workers", Default: 0, Comment: "concurrent renderers for batch commands (0 = CPU count)"},
	}
}

// Settings is the resolved configuration.
type Settings struct {
	TableClass string
	Sanitize   bool
	HTMLInput  bool
	Workers    int
}

// loadConfig resolves configuration with precedence: defaults < file < env < flags.
func loadConfig(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("mdhtml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdhtml"))
		}
		v.AddConfigPath(".")
	}

	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	// MDHTML_* environment variables
	v.SetEnvPrefix("mdhtml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return nil
}

func settingsFrom(v *viper.Viper) Settings {
	return Settings{
		TableClass: v.GetString("table_class"),
		Sanitize:   v.GetBool("sanitize"),
		HTMLInput:  v.GetBool("html_input"),
		Workers:    v.GetInt("workers"),
	}
}

// Config builds a RenderConfig from the settings.
func (s Settings) Config() *mdhtml.RenderConfig {
	c := *mdhtml.DefaultConfig()
	c.TableClass = s.TableClass
	c.Sanitize = s.Sanitize
	return &c
}

// Options builds render options from the settings.
func (s Settings) Options() []mdhtml.Option {
	return []mdhtml.Option{
		mdhtml.WithConfig(s.Config()),
		mdhtml.WithHTMLInput(s.HTMLInput),
	}
}
