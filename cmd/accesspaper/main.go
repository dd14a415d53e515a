// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the accesspaper CLI: the web server,
// a terminal DOI search, and the log store tools.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/accesspaper/internal/logger"
	"github.com/pdiddy/accesspaper/internal/secrets"
	"github.com/pdiddy/accesspaper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the accesspaper CLI.
var rootCmd = &cobra.Command{
	Use:   "accesspaper",
	Short: "Find a paper by DOI and browse diagnostic logs",
	Long: `accesspaper serves a small web page that takes a DOI, asks the search
backend for the paper, and shows its title, journal, year, contact address,
and PDF link. The same search is available from the terminal.

It also exposes the diagnostic log collection from the document database
as JSON at /api/logs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./accesspaper.yaml or ~/.config/accesspaper/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of secret files")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// configDefaults registers every key so environment variables are picked
// up by Unmarshal.
func configDefaults() {
	viper.SetDefault("server.addr", types.DefaultAddr)
	viper.SetDefault("server.debug", false)
	viper.SetDefault("server.read_timeout", types.DefaultReadTimeout)
	viper.SetDefault("server.write_timeout", types.DefaultWriteTimeout)
	viper.SetDefault("server.idle_timeout", types.DefaultIdleTimeout)
	viper.SetDefault("search.backend_url", types.DefaultBackendURL)
	viper.SetDefault("search.user_agent", types.DefaultUserAgent)
	viper.SetDefault("search.timeout", 0)
	viper.SetDefault("logstore.backend", string(types.LogBackendFirestore))
	viper.SetDefault("logstore.collection", types.DefaultCollection)
	viper.SetDefault("logstore.sqlite_path", types.DefaultSQLitePath)
	viper.SetDefault("ui.show_logs", false)
	viper.SetDefault("ui.session_ttl", types.DefaultSessionTTL)
	viper.SetDefault("log.level", "info")
}

func initConfig() {
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("accesspaper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "accesspaper"))
		}
	}

	configDefaults()
	viper.SetEnvPrefix("ACCESSPAPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("firebase.service_account", secrets.ServiceAccountEnv)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged viper settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.SetDefaults()
	return cfg, nil
}

// newLogger builds the process logger from cfg.
func newLogger(cfg types.Config) (logger.Logger, error) {
	return logger.New(cfg.Log.Level)
}

// credential resolves the service account for the firestore backend.
func credential(cfg types.Config) (*secrets.Credential, error) {
	if cfg.LogStore.Backend != types.LogBackendFirestore {
		return nil, nil
	}
	return secrets.ResolveCredential(viper.GetString("firebase.service_account"), loadedSecrets)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
