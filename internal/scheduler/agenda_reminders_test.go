package scheduler

import (
	"testing"
	"time"

	mailermocks "github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer/mocks"
	"github.com/obrativa/obras-manager-api/infrastructure/repository/mocks"
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestReminderService(
	agendaRepo *mocks.MockAgendaRepository,
	userRepo *mocks.MockUserRepository,
	mailerService *mailermocks.MockMailerIntegrator,
) *AgendaReminderService {
	service := &AgendaReminderService{
		agendaRepo: agendaRepo,
		userRepo:   userRepo,
		mailer:     mailerService,
		config: AgendaReminderConfig{
			CronSchedule:   "0 7 * * *",
			LookaheadHours: 24,
			Enabled:        true,
		},
	}
	service.now = func() time.Time {
		return time.Date(2024, 6, 15, 7, 0, 0, 0, time.UTC)
	}
	return service
}

func TestAgendaReminderService_SendReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgendaRepo := mocks.NewMockAgendaRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockMailer := mailermocks.NewMockMailerIntegrator(ctrl)

	service := newTestReminderService(mockAgendaRepo, mockUserRepo, mockMailer)

	inicio := time.Date(2024, 6, 15, 7, 0, 0, 0, time.UTC)
	fim := inicio.Add(24 * time.Hour)

	eventos := []*domain.Evento{
		{ID: 1, UserID: 10, Titulo: "Visita técnica", Tipo: domain.EventoTipoVisita, DataHora: inicio.Add(3 * time.Hour)},
		{ID: 2, UserID: 20, Titulo: "Reunião de medição", Tipo: domain.EventoTipoReuniao, DataHora: inicio.Add(5 * time.Hour)},
	}

	mockAgendaRepo.EXPECT().ListEventosByPeriodo(inicio, fim).Return(eventos, nil)

	mockUserRepo.EXPECT().GetUserByID(10).Return(&domain.User{ID: 10, Email: "marcos@obrativa.com.br"}, nil)
	mockUserRepo.EXPECT().GetUserByID(20).Return(&domain.User{ID: 20, Email: "julia@obrativa.com.br"}, nil)

	mockMailer.EXPECT().SendLembreteAgenda("marcos@obrativa.com.br", eventos[0]).Return(nil)
	mockMailer.EXPECT().SendLembreteAgenda("julia@obrativa.com.br", eventos[1]).Return(nil)

	err := service.SendReminders()
	assert.NoError(t, err)
}

func TestAgendaReminderService_SendReminders_FalhaIsolada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgendaRepo := mocks.NewMockAgendaRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockMailer := mailermocks.NewMockMailerIntegrator(ctrl)

	service := newTestReminderService(mockAgendaRepo, mockUserRepo, mockMailer)

	inicio := time.Date(2024, 6, 15, 7, 0, 0, 0, time.UTC)

	eventos := []*domain.Evento{
		{ID: 1, UserID: 10, Titulo: "Visita técnica", DataHora: inicio.Add(time.Hour)},
		{ID: 2, UserID: 99, Titulo: "Compromisso órfão", DataHora: inicio.Add(2 * time.Hour)},
		{ID: 3, UserID: 20, Titulo: "Reunião de medição", DataHora: inicio.Add(3 * time.Hour)},
	}

	mockAgendaRepo.EXPECT().ListEventosByPeriodo(gomock.Any(), gomock.Any()).Return(eventos, nil)

	// Usuário do primeiro evento existe mas o envio falha
	mockUserRepo.EXPECT().GetUserByID(10).Return(&domain.User{ID: 10, Email: "marcos@obrativa.com.br"}, nil)
	mockMailer.EXPECT().SendLembreteAgenda("marcos@obrativa.com.br", eventos[0]).Return(errors.New("mailer indisponível"))

	// Usuário do segundo evento não existe
	mockUserRepo.EXPECT().GetUserByID(99).Return(nil, nil)

	// O terceiro lembrete ainda é enviado
	mockUserRepo.EXPECT().GetUserByID(20).Return(&domain.User{ID: 20, Email: "julia@obrativa.com.br"}, nil)
	mockMailer.EXPECT().SendLembreteAgenda("julia@obrativa.com.br", eventos[2]).Return(nil)

	err := service.SendReminders()
	assert.NoError(t, err)
}

func TestAgendaReminderService_SendReminders_SemEventos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgendaRepo := mocks.NewMockAgendaRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockMailer := mailermocks.NewMockMailerIntegrator(ctrl)

	service := newTestReminderService(mockAgendaRepo, mockUserRepo, mockMailer)

	mockAgendaRepo.EXPECT().ListEventosByPeriodo(gomock.Any(), gomock.Any()).Return(nil, nil)

	err := service.SendReminders()
	assert.NoError(t, err)
}

func TestAgendaReminderService_SendReminders_ExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgendaRepo := mocks.NewMockAgendaRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockMailer := mailermocks.NewMockMailerIntegrator(ctrl)

	service := newTestReminderService(mockAgendaRepo, mockUserRepo, mockMailer)

	// Simula uma execução já em andamento: a chamada retorna sem tocar
	// nos repositórios
	service.syncRunning = true

	err := service.SendReminders()
	assert.NoError(t, err)
}
