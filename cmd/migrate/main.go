package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"equipment-rental/internal/pkg/config"
	"equipment-rental/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

const applyTimeout = 2 * time.Minute

func main() {
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to process env config", "error", err)
		os.Exit(1)
	}

	if err := run(logger, *atlasBin, dbCfg.BuildDSN(), *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, atlasBin, url string, dryRun bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.Dir()))
	if err != nil {
		return err
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DirURL: "file://migrations",
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("applied migration", "version", f.Version, "dry_run", dryRun)
	}
	logger.Info("schema is up to date", "current", res.Current, "target", res.Target, "pending", len(res.Pending))
	return nil
}
