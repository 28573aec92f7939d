// Package config loads tool settings from an optional config file and
// the environment. Every field has a sensible default so the tool runs
// with no configuration at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/grublist/grublist-cli/pkg/backup"
	"github.com/grublist/grublist-cli/pkg/grubcfg"
	"github.com/grublist/grublist-cli/pkg/kernel"
	"github.com/grublist/grublist-cli/pkg/menu"
	"github.com/grublist/grublist-cli/pkg/names"
)

// Settings holds every path and knob the tool reads at startup.
type Settings struct {
	MenuPath     string `mapstructure:"menu_path"`
	DefaultsPath string `mapstructure:"defaults_path"`
	NamesPath    string `mapstructure:"names_path"`
	BootDir      string `mapstructure:"boot_dir"`
	BackupDir    string `mapstructure:"backup_dir"`
	LogFile      string `mapstructure:"log_file"`
	LogLevel     string `mapstructure:"log_level"`
}

// Load reads settings from cfgFile when given, otherwise from
// grublist.yaml in /etc/grublist or the user config directory.
// A missing config file is not an error; a malformed one is.
func Load(cfgFile string) (Settings, error) {
	v := viper.New()

	v.SetDefault("menu_path", menu.DefaultMenuPath)
	v.SetDefault("defaults_path", grubcfg.DefaultPath)
	v.SetDefault("names_path", names.DefaultPath)
	v.SetDefault("boot_dir", kernel.DefaultBootDir)
	v.SetDefault("backup_dir", backup.DefaultDir)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("GRUBLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("grublist")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/grublist")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "grublist"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// No config file anywhere on the search path: defaults apply.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return s, nil
}
