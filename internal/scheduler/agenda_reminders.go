// Package scheduler contém os serviços de agendamento de rotinas periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer"
	"github.com/obrativa/obras-manager-api/infrastructure/repository"
	"github.com/obrativa/obras-manager-api/internal/config"
	"github.com/sirupsen/logrus"
)

type AgendaReminderConfig struct {
	CronSchedule   string
	LookaheadHours int
	Enabled        bool
}

// AgendaReminderService envia por e-mail, uma vez ao dia, os lembretes
// dos compromissos das próximas horas de cada usuário
type AgendaReminderService struct {
	scheduler  *gocron.Scheduler
	agendaRepo repository.AgendaRepository
	userRepo   repository.UserRepository
	mailer     mailer.MailerIntegrator
	config     AgendaReminderConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time

	// now fixa a janela de busca nos testes
	now func() time.Time
}

func NewAgendaReminderService(
	agendaRepo repository.AgendaRepository,
	userRepo repository.UserRepository,
	mailerService mailer.MailerIntegrator,
	cfg *config.Config,
) *AgendaReminderService {
	reminderConfig := AgendaReminderConfig{
		CronSchedule:   cfg.AgendaReminder.CronSchedule,   // Default: 7h da manhã todos os dias
		LookaheadHours: cfg.AgendaReminder.LookaheadHours, // Default: próximas 24h
		Enabled:        cfg.AgendaReminder.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   reminderConfig.CronSchedule,
		"lookahead_hours": reminderConfig.LookaheadHours,
	}).Info("Configuração do agendador de lembretes da agenda carregada")

	return &AgendaReminderService{
		scheduler:  scheduler,
		agendaRepo: agendaRepo,
		userRepo:   userRepo,
		mailer:     mailerService,
		config:     reminderConfig,
		now:        time.Now,
	}
}

func (s *AgendaReminderService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de lembretes da agenda desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de lembretes da agenda")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SendReminders(); err != nil {
			logrus.WithError(err).Error("Erro no envio de lembretes da agenda")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio de lembretes da agenda: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de lembretes da agenda")
		s.scheduler.Stop()
	}()

	return nil
}

// SendReminders busca os compromissos da janela configurada e envia um
// lembrete por e-mail ao dono de cada um. Falha em um lembrete não
// interrompe os demais.
func (s *AgendaReminderService) SendReminders() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Envio de lembretes da agenda já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastRunStartedAt = s.now()
	defer func() {
		s.syncRunning = false
		s.lastRunCompletedAt = s.now()
	}()

	inicio := s.now()
	fim := inicio.Add(time.Duration(s.config.LookaheadHours) * time.Hour)

	eventos, err := s.agendaRepo.ListEventosByPeriodo(inicio, fim)
	if err != nil {
		return fmt.Errorf("erro ao listar eventos para lembretes: %w", err)
	}

	if len(eventos) == 0 {
		logrus.Info("Nenhum compromisso na janela de lembretes")
		return nil
	}

	logrus.WithField("eventos", len(eventos)).Info("Enviando lembretes da agenda")

	enviados := 0
	for _, evento := range eventos {
		user, err := s.userRepo.GetUserByID(evento.UserID)
		if err != nil || user == nil {
			logrus.WithFields(logrus.Fields{
				"evento_id": evento.ID,
				"user_id":   evento.UserID,
			}).Warn("Dono do compromisso não encontrado, lembrete ignorado")
			continue
		}

		if err := s.mailer.SendLembreteAgenda(user.Email, evento); err != nil {
			logrus.WithFields(logrus.Fields{
				"evento_id": evento.ID,
				"user_id":   evento.UserID,
			}).Warnf("Erro ao enviar lembrete: %v", err)
			continue
		}

		enviados++
	}

	logrus.WithFields(logrus.Fields{
		"eventos":  len(eventos),
		"enviados": enviados,
	}).Info("Envio de lembretes da agenda concluído")

	return nil
}

// TriggerManualSync inicia manualmente o envio de lembretes da agenda
func (s *AgendaReminderService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Envio de lembretes já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando envio manual de lembretes da agenda")
	go func() {
		if err := s.SendReminders(); err != nil {
			logrus.WithError(err).Error("Erro no envio manual de lembretes da agenda")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *AgendaReminderService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"lookahead_hours":       s.config.LookaheadHours,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
