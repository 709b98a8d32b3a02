package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/infrastructure/database/postgres"
	"github.com/obrativa/obras-manager-api/infrastructure/integrator/geocoding"
	"github.com/obrativa/obras-manager-api/infrastructure/integrator/geocoding/geocodingclient"
	"github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer"
	"github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer/mailerclient"
	"github.com/obrativa/obras-manager-api/infrastructure/repository"
	"github.com/obrativa/obras-manager-api/internal/api"
	"github.com/obrativa/obras-manager-api/internal/config"
	"github.com/obrativa/obras-manager-api/internal/scheduler"
	"github.com/obrativa/obras-manager-api/internal/usecases/authenticating"
	"github.com/obrativa/obras-manager-api/internal/usecases/portal"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	clienteRepo := repository.NewClienteRepository(pgConn)
	obraRepo := repository.NewObraRepository(pgConn)
	etapaRepo := repository.NewEtapaRepository(pgConn)
	financeiroRepo := repository.NewFinanceiroRepository(pgConn)
	propostaRepo := repository.NewPropostaRepository(pgConn)
	contratoRepo := repository.NewContratoRepository(pgConn)
	agendaRepo := repository.NewAgendaRepository(pgConn)
	portalAccessRepo := repository.NewPortalAccessRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	geocodingClient := geocodingclient.NewClient(cfg)
	geocodingIntegrator := geocoding.New(cfg, geocodingClient)

	mailerClient := mailerclient.NewClient(cfg)
	mailerIntegrator := mailer.New(cfg, mailerClient)

	registrar := registry.NewService(
		clienteRepo,
		obraRepo,
		etapaRepo,
		financeiroRepo,
		propostaRepo,
		contratoRepo,
		agendaRepo,
		geocodingIntegrator,
	)

	reporter := reporting.NewService(
		obraRepo,
		clienteRepo,
		etapaRepo,
		financeiroRepo,
	)

	porter := portal.NewService(
		userRepo,
		clienteRepo,
		obraRepo,
		etapaRepo,
		portalAccessRepo,
		mailerIntegrator,
	)

	// Inicializa o agendador de lembretes da agenda
	agendaReminderService := scheduler.NewAgendaReminderService(
		agendaRepo,
		userRepo,
		mailerIntegrator,
		cfg,
	)

	if err := agendaReminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembretes da agenda")
	} else {
		logrus.Info("Agendador de lembretes da agenda iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		registrar,
		reporter,
		porter,
		authenticator,
		agendaReminderService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
