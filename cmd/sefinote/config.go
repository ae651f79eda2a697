package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage server configuration",
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml in the current directory",
	Long: `Write a config.yaml with the default server settings, ready to edit.
"sefinote serve" reads config.yaml from the working directory or
/etc/sefinote/, with SEFINOTE_* environment variables taking precedence.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config.yaml")
	configCmd.AddCommand(configInitCmd)
}

// defaultConfig mirrors the server's built-in defaults.
type defaultConfig struct {
	Server struct {
		Port int    `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Log struct {
		Format string `yaml:"format"`
		Level  string `yaml:"level"`
	} `yaml:"log"`
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	const path = "config.yaml"

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	var cfg defaultConfig
	cfg.Server.Port = 8470
	cfg.Server.Mode = "development"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "./sefinote.db"
	cfg.Auth.JWTSecret = "change-me-in-production"
	cfg.Log.Format = "text"
	cfg.Log.Level = "info"

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
