// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/secrets"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// flagKeys maps CLI flags to the config keys they override.
var flagKeys = map[string]string{
	"api-key":     "api_key",
	"email":       "email",
	"max-results": "max_results",
	"timeout":     "timeout",
}

func bindFlags(cmd *cobra.Command) {
	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

// setDefaults registers every PubMedConfig key so environment variables
// (PUBMED_<KEY>) are seen by Unmarshal. NCBI_API_KEY is accepted as well.
func setDefaults(v *viper.Viper) {
	d := types.DefaultPubMedConfig()
	v.SetDefault("search_url", d.SearchURL)
	v.SetDefault("summary_url", d.SummaryURL)
	v.SetDefault("database", d.Database)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("tool", d.Tool)
	v.SetDefault("email", "")
	v.SetDefault("api_key", "")
	v.SetDefault("max_results", 0)

	v.SetEnvPrefix("PUBMED")
	v.AutomaticEnv()
	_ = v.BindEnv("api_key", "PUBMED_API_KEY", "NCBI_API_KEY")
}

// pubmedConfig resolves the client config. Values from flags, environment,
// and config file win; credentials from the secrets directory fill what
// is still empty.
func pubmedConfig(v *viper.Viper, s secrets.Secrets) (types.PubMedConfig, error) {
	var cfg types.PubMedConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = s.Get(secrets.NCBIAPIKey)
	}
	if cfg.Email == "" {
		cfg.Email = s.Get(secrets.NCBIEmail)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
