// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It searches
// PubMed for a query, flags papers with company-affiliated authors, and
// prints the rows or writes them to a CSV file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/output"
	"github.com/pdiddy/pubmed-papers/internal/pubmed"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets secrets.Secrets

// rootCmd fetches papers for the query given as positional arguments.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list [query...]",
	Short: "Fetch PubMed papers with pharmaceutical or biotech company authors",
	Long: `get-papers-list searches PubMed for a query, retrieves the summary of
every matching paper, and flags authors whose affiliation names a company.
Each paper is reported with its non-academic authors, their company
affiliations, and the corresponding author's email when one can be found.

Results are printed to the console unless --file names a CSV destination.
The query uses PubMed's full search syntax; multiple arguments are joined
with spaces.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, slog.New(slog.NewTextHandler(os.Stderr, nil)))
		if err != nil {
			return err
		}
		loadedSecrets = s
		if debug, _ := cmd.Flags().GetBool("debug"); debug && len(s) > 0 {
			keys := s.Keys()
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of credential files (ncbi-api-key, ncbi-email)")

	rootCmd.Flags().BoolP("debug", "d", false, "print progress messages while fetching")
	rootCmd.Flags().StringP("file", "f", "", "write results to this CSV file instead of the console")
	rootCmd.Flags().String("format", "records", "console format: records, table, json, or yaml")
	rootCmd.Flags().String("api-key", "", "NCBI API key (or PUBMED_API_KEY / NCBI_API_KEY)")
	rootCmd.Flags().String("email", "", "contact email sent to NCBI with each request")
	rootCmd.Flags().Int("max-results", 0, "maximum PMIDs requested from search (0 = PubMed default)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	bindFlags(rootCmd)
}

func initConfig() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return pubmed.ErrEmptyQuery
	}

	debug, _ := cmd.Flags().GetBool("debug")
	file, _ := cmd.Flags().GetString("file")
	formatName, _ := cmd.Flags().GetString("format")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger := newLogger(debug)

	cfg, err := pubmedConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	client, err := pubmed.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	papers, err := client.FetchPapers(cmd.Context(), query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if file != "" {
		if err := output.WriteCSV(file, papers); err != nil {
			return err
		}
		fmt.Fprintf(out, "Results saved to %s\n", file)
		return nil
	}
	return output.Format(out, papers, format)
}

// newLogger writes progress to stdout in debug mode. Otherwise only
// warnings are shown, on stderr.
func newLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
