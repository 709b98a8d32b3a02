package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/api/handler"
	"github.com/obrativa/obras-manager-api/internal/api/handler/router"
	"github.com/obrativa/obras-manager-api/internal/config"
	"github.com/obrativa/obras-manager-api/internal/scheduler"
	"github.com/obrativa/obras-manager-api/internal/usecases/authenticating"
	"github.com/obrativa/obras-manager-api/internal/usecases/portal"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/internal/usecases/reporting"
	"github.com/obrativa/obras-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	registrar registry.Registrar,
	reporter reporting.Reporter,
	porter portal.Porter,
	authenticator authenticating.Authenticator,
	agendaReminderService *scheduler.AgendaReminderService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		AgendaReminderService: agendaReminderService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Clientes(registrar)...),
		router.WithRoutes(handler.Obras(registrar)...),
		router.WithRoutes(handler.Etapas(registrar)...),
		router.WithRoutes(handler.Financeiro(registrar)...),
		router.WithRoutes(handler.Propostas(registrar)...),
		router.WithRoutes(handler.Contratos(registrar)...),
		router.WithRoutes(handler.Agenda(registrar)...),
		router.WithRoutes(handler.Relatorios(reporter)...),
		router.WithRoutes(handler.Portal(porter)...),
		router.WithRoutes(handler.Dashboard(registrar)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
