package main

import (
	"context"
	"fmt"

	"github.com/MikeRez0/lcmanager/internal/adapter/auth"
	"github.com/MikeRez0/lcmanager/internal/adapter/client/marketplace"
	"github.com/MikeRez0/lcmanager/internal/adapter/config"
	"github.com/MikeRez0/lcmanager/internal/adapter/handler/http"
	"github.com/MikeRez0/lcmanager/internal/adapter/logger"
	"github.com/MikeRez0/lcmanager/internal/adapter/storage"
	"github.com/MikeRez0/lcmanager/internal/adapter/storage/repository"
	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/pipeline"
	"github.com/MikeRez0/lcmanager/internal/core/port"
	"github.com/MikeRez0/lcmanager/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()

	var presets port.PresetRepository
	if conf.Database.DSN != "" {
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		defer db.Close()

		err = db.RunMigrations()
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}

		repo, err := repository.NewRepository(db)
		if err != nil {
			log.Error("preset repo creating error", zap.Error(err))
			return
		}
		presets = repo
	} else {
		log.Warn("database is not configured, presets are disabled")
	}

	for k, v := range conf.Marketplace.Extra {
		log.Debug("passthrough setting", zap.String("key", k), zap.String("value", v))
	}

	client, err := marketplace.NewClient(conf.Marketplace, log.Named("Marketplace"))
	if err != nil {
		log.Error("marketplace client creating error", zap.Error(err))
		return
	}

	policy, err := pipeline.ParseErrorPolicy(conf.Pipeline.FilterErrorPolicy)
	if err != nil {
		log.Error("pipeline config error", zap.Error(err))
		return
	}
	filter := pipeline.NewFilter(policy, conf.Pipeline.Workers, log.Named("Filter"))
	builder := pipeline.NewBuilder(conf.Pipeline.Workers)

	creds := domain.Credentials{Key: conf.Marketplace.Key, InvestorID: conf.Marketplace.InvestorID}
	if err := creds.Validate(); err != nil {
		log.Warn("marketplace credentials are incomplete", zap.Error(err))
	}

	svc, err := service.NewService(creds, client, presets, filter, builder, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New(conf.HTTP.TokenKey)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	authHandler, err := http.NewAuthHandler(svc, tokenService, log.Named("Auth handler"))
	if err != nil {
		log.Error("auth handler creating error", zap.Error(err))
		return
	}
	loanHandler, err := http.NewLoanHandler(svc, log.Named("Loan handler"))
	if err != nil {
		log.Error("loan handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	accountHandler, err := http.NewAccountHandler(svc, log.Named("Account handler"))
	if err != nil {
		log.Error("account handler creating error", zap.Error(err))
		return
	}
	presetHandler, err := http.NewPresetHandler(svc, log.Named("Preset handler"))
	if err != nil {
		log.Error("preset handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		authHandler, loanHandler, orderHandler, accountHandler, presetHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("Starting server", zap.String("address", conf.HTTP.HostString))
	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
