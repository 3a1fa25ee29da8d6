// Package catalogcheck runs the integrity check over a project catalog and
// prints the report.
package catalogcheck

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	portfoliocmd "github.com/pbhende/portfolio/internal/cmd/portfolio"
	entrypoint "github.com/pbhende/portfolio/internal/platform/cmd"
	"github.com/pbhende/portfolio/internal/services/portfolio/content"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/integrity"
)

// Output formats accepted by -format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrCheckFailed is returned when the report holds at least one failure.
var ErrCheckFailed = errors.New("catalog integrity check failed")

// Config holds catalog-check command configuration.
type Config struct {
	CatalogPath string `env:"CATALOG_PATH"`
	Format      string `env:"CATALOG_CHECK_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Optional YAML project catalog (defaults to the built-in projects)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Report format: text or json")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return Config{}, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return cfg, nil
}

// Run loads the catalog, checks it and writes the report to out. It returns
// ErrCheckFailed when any check fails.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output writer is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCatalogCheck, func(ctx context.Context) error {
		catalog, err := content.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		report := portfoliocmd.CheckCatalog(ctx, catalog)

		switch cfg.Format {
		case FormatJSON:
			err = writeJSON(out, report)
		default:
			err = writeText(out, report)
		}
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if !report.Passed() {
			return fmt.Errorf("%w: %d of %d results failed", ErrCheckFailed, len(report.Failures()), len(report.Results))
		}
		return nil
	})
}

type jsonReport struct {
	Passed  bool               `json:"passed"`
	Results []integrity.Result `json:"results"`
}

func writeJSON(out io.Writer, report integrity.Report) error {
	results := report.Results
	if results == nil {
		results = []integrity.Result{}
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{Passed: report.Passed(), Results: results})
}

func writeText(out io.Writer, report integrity.Report) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tCHECK\tRECORD\tDETAIL")
	for _, result := range report.Results {
		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", status, result.Check, result.Record, result.Detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d results, %d failures\n", len(report.Results), len(report.Failures()))
	return err
}
