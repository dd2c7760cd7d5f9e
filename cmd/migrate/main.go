// Command migrate applies schema/schema.sql to the configured database with
// the atlas CLI, computing the diff against a throwaway dev database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"sportshub/internal/pkg/config"
	"sportshub/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

const applyTimeout = 5 * time.Minute

var (
	schemaFile = flag.String("schema", "file://schema/schema.sql", "desired schema")
	devURL     = flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "dev database used to plan changes")
	atlasBin   = flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun     = flag.Bool("dry-run", false, "print the planned statements without applying them")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return errs.Wrap(err, "failed to load database config")
	}

	wd, err := os.Getwd()
	if err != nil {
		return errs.Wrap(err, "failed to resolve working directory")
	}
	client, err := atlasexec.NewClient(wd, *atlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          *schemaFile,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return errs.Wrap(err, "schema apply failed")
	}

	for _, stmt := range res.Changes.Pending {
		logger.Info("planned", "statement", stmt)
	}
	logger.Info("schema applied",
		"applied", len(res.Changes.Applied),
		"dry_run", *dryRun)
	return nil
}
