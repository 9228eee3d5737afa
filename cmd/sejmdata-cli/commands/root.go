package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"sejmdata-backend/lib/configutil"
	"sejmdata-backend/lib/telemetry"
	"sejmdata-backend/lib/webcache"
	"sejmdata-backend/services/sejm"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseURL         string `json:"base_url"`
	CacheTTLMinutes int    `json:"cache_ttl_minutes"`
}

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "sejmdata-cli",
	Short: "sejmdata-cli is a CLI for inspecting Sejm MP data, submissions and voting statistics.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
	os.Exit(1)
}

func newSejmClient() *sejm.Client {
	cfg, err := configutil.ReadRecursively[Config]("sejmdata.json5")
	if err != nil && !os.IsNotExist(err) {
		fatal("read config", err)
	}

	ttl := webcache.DefaultTTL
	if cfg.CacheTTLMinutes > 0 {
		ttl = time.Duration(cfg.CacheTTLMinutes) * time.Minute
	}
	cache, err := webcache.New(ttl)
	if err != nil {
		fatal("init cache", err)
	}
	slog.Debug("response cache initialized", "ttl", cache.TTL())

	return sejm.NewClient(sejm.Options{
		BaseURL: cfg.BaseURL,
		Cache:   cache,
	})
}
