package main

import (
	"fmt"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/database"
	"github.com/jesses-code-adventures/cms/internal/logger"
	"github.com/jesses-code-adventures/cms/internal/report"
	"github.com/jesses-code-adventures/cms/internal/service"
)

// app holds what the commands share. It is filled on first use so that the
// persistent flags are parsed before the config is loaded.
type app struct {
	overrides config.Overrides

	cfg *config.Config
	db  *database.SQLDB
	svc *service.BackOffice
}

func (a *app) init() error {
	if a.svc != nil {
		return nil
	}

	cfg, err := config.Load(a.overrides)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	renderer := report.New(report.Options{Company: cfg.Company, LogoPath: cfg.LogoPath})
	calc := billing.NewCalculator(cfg.TaxRate, cfg.RoundOff)

	a.cfg = cfg
	a.db = db
	a.svc = service.NewBackOffice(db, renderer, calc)
	return nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}
