// Package portfolio parses portfolio command flags and starts the web server.
package portfolio

import (
	"context"
	"flag"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	entrypoint "github.com/pbhende/portfolio/internal/platform/cmd"
	"github.com/pbhende/portfolio/internal/platform/timeouts"
	server "github.com/pbhende/portfolio/internal/services/portfolio"
	"github.com/pbhende/portfolio/internal/services/portfolio/content"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/integrity"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/metrics"
)

const tracerName = "github.com/pbhende/portfolio/internal/cmd/portfolio"

// Config holds portfolio command configuration.
type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	CatalogPath         string        `env:"CATALOG_PATH"`
	SessionIdleTimeout  time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	TrustForwardedProto bool          `env:"TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Optional YAML project catalog (defaults to the built-in projects)")
	fs.DurationVar(&cfg.SessionIdleTimeout, "session-idle-timeout", cfg.SessionIdleTimeout, "How long an unused visitor session is kept")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when resolving the request scheme")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdleTimeout <= 0 {
		cfg.SessionIdleTimeout = timeouts.SessionIdle
	}
	return cfg, nil
}

// Run loads the catalog, runs the startup integrity check and serves the
// portfolio until ctx is cancelled. Integrity failures are logged, not fatal.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePortfolio, func(ctx context.Context) error {
		catalog, err := content.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		report := CheckCatalog(ctx, catalog)
		report.Log(log.Default())

		m := metrics.New()
		m.RecordReport(report)

		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr:            cfg.HTTPAddr,
			Catalog:             catalog,
			Profile:             content.DefaultProfile(),
			Report:              report,
			SessionIdleTimeout:  cfg.SessionIdleTimeout,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Metrics:             m,
			Logger:              log.Default(),
		})
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.ListenAndServe(ctx)
	})
}

// CheckCatalog validates catalog inside a trace span that records the outcome.
func CheckCatalog(ctx context.Context, catalog *project.Catalog) integrity.Report {
	_, span := otel.Tracer(tracerName).Start(ctx, "integrity.validate")
	defer span.End()

	report := integrity.Validate(catalog)
	span.SetAttributes(
		attribute.Int("portfolio.catalog.records", catalog.Len()),
		attribute.Bool("portfolio.integrity.passed", report.Passed()),
		attribute.Int("portfolio.integrity.failures", len(report.Failures())),
	)
	return report
}
