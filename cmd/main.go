package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/KromaEnergia/api-empresas/internal/admin"
	"github.com/KromaEnergia/api-empresas/internal/api"
	"github.com/KromaEnergia/api-empresas/internal/auth"
	"github.com/KromaEnergia/api-empresas/internal/config"
	"github.com/KromaEnergia/api-empresas/internal/empresa"
	"github.com/KromaEnergia/api-empresas/internal/logger"
	"github.com/KromaEnergia/api-empresas/internal/middleware"
	"github.com/KromaEnergia/api-empresas/internal/notificacao"
	"github.com/KromaEnergia/api-empresas/internal/utils/db"
)

func main() {
	task := flag.String("task", "", "tarefa administrativa: seed | token")
	sub := flag.String("sub", "", "subject do token (usado com -task token)")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro ao criar logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, *task, *sub); err != nil {
		log.Errorw("fatal", "err", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger, task, sub string) error {
	var autenticador *auth.Autenticador
	if cfg.AuthEnabled() {
		a, err := auth.NovoAutenticador(cfg.JWTSecret, cfg.JWTIssuer)
		if err != nil {
			return err
		}
		autenticador = a
	}

	// token não precisa de banco
	if task == "token" {
		if autenticador == nil {
			return errors.New("JWT_SECRET não configurado")
		}
		if sub == "" {
			return errors.New("informe -sub")
		}
		return admin.EmitirToken(os.Stdout, autenticador, sub, auth.TTLPadrao)
	}

	database, err := db.GetDB(cfg, log)
	if err != nil {
		return fmt.Errorf("erro ao conectar no banco: %w", err)
	}
	defer func() { _ = db.Close(database) }()

	notificador, fecharNotificador, err := notificacao.Montar(cfg.RabbitURI, cfg.RabbitQueue, cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("erro ao montar notificações: %w", err)
	}
	defer func() {
		if err := fecharNotificador(); err != nil {
			log.Warnw("notificador_close_falhou", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch task {
	case "":
	case "seed":
		svc := empresa.NewService(database, empresa.NewRepository(), notificador)
		return admin.SeedEmpresas(ctx, svc, log.WithComponent("seed"))
	default:
		return fmt.Errorf("task desconhecida: %q", task)
	}

	deps := api.Deps{
		DB:          database,
		Log:         log,
		Notificador: notificador,
		Auth:        autenticador,
		CORSOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.RateLimitRPS > 0 {
		lim := middleware.NovoLimitador(cfg.RateLimitRPS, cfg.RateLimitBurst)
		lim.ConfiarProxy = cfg.TrustProxyHeaders
		go lim.Limpeza(ctx)
		deps.Limitador = lim
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server_started", "port", cfg.Port, "auth", autenticador != nil, "rate_limit_rps", cfg.RateLimitRPS)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
