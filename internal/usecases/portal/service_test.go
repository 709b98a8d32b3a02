package portal

import (
	"testing"
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer"
	mailermocks "github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer/mocks"
	"github.com/obrativa/obras-manager-api/infrastructure/repository/mocks"
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type portalMocks struct {
	userRepo    *mocks.MockUserRepository
	clienteRepo *mocks.MockClienteRepository
	obraRepo    *mocks.MockObraRepository
	etapaRepo   *mocks.MockEtapaRepository
	accessRepo  *mocks.MockPortalAccessRepository
	mailer      *mailermocks.MockMailerIntegrator
}

func newTestPortalService(ctrl *gomock.Controller) (*Service, *portalMocks) {
	m := &portalMocks{
		userRepo:    mocks.NewMockUserRepository(ctrl),
		clienteRepo: mocks.NewMockClienteRepository(ctrl),
		obraRepo:    mocks.NewMockObraRepository(ctrl),
		etapaRepo:   mocks.NewMockEtapaRepository(ctrl),
		accessRepo:  mocks.NewMockPortalAccessRepository(ctrl),
		mailer:      mailermocks.NewMockMailerIntegrator(ctrl),
	}

	service := NewService(m.userRepo, m.clienteRepo, m.obraRepo, m.etapaRepo, m.accessRepo, m.mailer)
	service.now = func() time.Time {
		return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	}

	return service, m
}

var (
	clienteAurora = &domain.Cliente{ID: "CLI001", Nome: "Construtora Aurora Ltda", Responsavel: "Paula Mendes"}
	obraAurora    = &domain.Obra{ID: "OBR001", ClienteID: "CLI001", Nome: "Residencial Aurora", Gestor: "Eng. Marcos Lima", Status: domain.ObraStatusEmAndamento}
)

func TestProvision_NovoUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestPortalService(ctrl)

	m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(clienteAurora, nil)
	m.obraRepo.EXPECT().GetObraByID("OBR001").Return(obraAurora, nil)
	m.userRepo.EXPECT().GetUserByEmail("paula@aurora.com.br").Return(nil, nil)

	var senhaInicial string
	m.userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "paula@aurora.com.br", user.Email)
			assert.Equal(t, roleCliente, user.RoleID)
			assert.True(t, user.Active)
			assert.NotEmpty(t, user.PasswordHash)

			created := *user
			created.ID = 42
			return &created, nil
		})

	m.accessRepo.EXPECT().
		GrantAccess(gomock.Any()).
		DoAndReturn(func(acesso *domain.AcessoPortal) error {
			assert.Equal(t, 42, acesso.UserID)
			assert.Equal(t, "CLI001", acesso.ClienteID)
			assert.Equal(t, "OBR001", acesso.ObraID)
			return nil
		})

	m.mailer.EXPECT().
		SendConvitePortal(gomock.Any()).
		DoAndReturn(func(convite mailer.ConvitePortal) error {
			assert.Equal(t, "paula@aurora.com.br", convite.Email)
			assert.True(t, convite.NovoUsuario)
			assert.NotEmpty(t, convite.SenhaInicial)
			senhaInicial = convite.SenhaInicial
			return nil
		})

	resp, err := service.Provision(&domain.ConvitePortalRequest{
		Email:     "  Paula@Aurora.com.br ",
		ClienteID: "CLI001",
		ObraID:    "OBR001",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Success)
	assert.Equal(t, 42, resp.UserID)
	assert.True(t, resp.IsNewUser)
	assert.NotEmpty(t, senhaInicial)
}

func TestProvision_UsuarioExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestPortalService(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("Senha@123"), bcrypt.MinCost)
	require.NoError(t, err)

	existente := &domain.User{ID: 7, Email: "paula@aurora.com.br", PasswordHash: string(hash), Active: true, RoleID: roleCliente}

	m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(clienteAurora, nil)
	m.obraRepo.EXPECT().GetObraByID("OBR001").Return(obraAurora, nil)
	m.userRepo.EXPECT().GetUserByEmail("paula@aurora.com.br").Return(existente, nil)
	m.accessRepo.EXPECT().GrantAccess(gomock.Any()).Return(nil)

	m.mailer.EXPECT().
		SendConvitePortal(gomock.Any()).
		DoAndReturn(func(convite mailer.ConvitePortal) error {
			// Usuário existente não recebe senha nova no convite
			assert.False(t, convite.NovoUsuario)
			assert.Empty(t, convite.SenhaInicial)
			return nil
		})

	resp, err := service.Provision(&domain.ConvitePortalRequest{
		Email:     "paula@aurora.com.br",
		ClienteID: "CLI001",
		ObraID:    "OBR001",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 7, resp.UserID)
	assert.False(t, resp.IsNewUser)
}

func TestProvision_FalhaNoEnvioDoConvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestPortalService(ctrl)

	existente := &domain.User{ID: 7, Email: "paula@aurora.com.br"}

	m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(clienteAurora, nil)
	m.obraRepo.EXPECT().GetObraByID("OBR001").Return(obraAurora, nil)
	m.userRepo.EXPECT().GetUserByEmail("paula@aurora.com.br").Return(existente, nil)
	m.accessRepo.EXPECT().GrantAccess(gomock.Any()).Return(nil)
	m.mailer.EXPECT().SendConvitePortal(gomock.Any()).Return(errors.New("mailer indisponível"))

	// O acesso já foi concedido, a falha no e-mail não desfaz o provisionamento
	resp, err := service.Provision(&domain.ConvitePortalRequest{
		Email:     "paula@aurora.com.br",
		ClienteID: "CLI001",
		ObraID:    "OBR001",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "falhou")
}

func TestProvision_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestPortalService(ctrl)

	tests := []struct {
		name        string
		req         *domain.ConvitePortalRequest
		setup       func()
		expectedErr error
	}{
		{
			name:        "Email ausente",
			req:         &domain.ConvitePortalRequest{ClienteID: "CLI001", ObraID: "OBR001"},
			setup:       func() {},
			expectedErr: ErrEmailInvalido,
		},
		{
			name:        "Email sem arroba",
			req:         &domain.ConvitePortalRequest{Email: "paula.aurora", ClienteID: "CLI001", ObraID: "OBR001"},
			setup:       func() {},
			expectedErr: ErrEmailInvalido,
		},
		{
			name:        "Cliente ausente",
			req:         &domain.ConvitePortalRequest{Email: "paula@aurora.com.br", ObraID: "OBR001"},
			setup:       func() {},
			expectedErr: ErrConviteInvalido,
		},
		{
			name: "Cliente inexistente",
			req:  &domain.ConvitePortalRequest{Email: "paula@aurora.com.br", ClienteID: "CLI404", ObraID: "OBR001"},
			setup: func() {
				m.clienteRepo.EXPECT().GetClienteByID("CLI404").Return(nil, nil)
			},
			expectedErr: ErrClienteNaoEncontrado,
		},
		{
			name: "Obra inexistente",
			req:  &domain.ConvitePortalRequest{Email: "paula@aurora.com.br", ClienteID: "CLI001", ObraID: "OBR404"},
			setup: func() {
				m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(clienteAurora, nil)
				m.obraRepo.EXPECT().GetObraByID("OBR404").Return(nil, nil)
			},
			expectedErr: ErrObraNaoEncontrada,
		},
		{
			name: "Obra de outro cliente",
			req:  &domain.ConvitePortalRequest{Email: "paula@aurora.com.br", ClienteID: "CLI001", ObraID: "OBR002"},
			setup: func() {
				m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(clienteAurora, nil)
				m.obraRepo.EXPECT().GetObraByID("OBR002").Return(&domain.Obra{ID: "OBR002", ClienteID: "CLI999"}, nil)
			},
			expectedErr: ErrObraDeOutroCliente,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			resp, err := service.Provision(tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestListObrasDoUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestPortalService(ctrl)

	m.accessRepo.EXPECT().ListAccessByUser(42).Return([]*domain.AcessoPortal{
		{UserID: 42, ClienteID: "CLI001", ObraID: "OBR001"},
		{UserID: 42, ClienteID: "CLI001", ObraID: "OBR-REMOVIDA"},
	}, nil)

	m.obraRepo.EXPECT().GetObraByID("OBR001").Return(obraAurora, nil)
	m.obraRepo.EXPECT().GetObraByID("OBR-REMOVIDA").Return(nil, nil)

	fim := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	m.etapaRepo.EXPECT().ListEtapasByObra("OBR001").Return([]*domain.Etapa{
		{Nome: "Fundação", Status: domain.EtapaStatusConcluido, Peso: 0.5, ReportEndDate: &fim},
		{Nome: "Acabamento", Status: domain.EtapaStatusPendente, Peso: 0.5, ReportEndDate: &fim},
	}, nil)

	obras, err := service.ListObrasDoUsuario(42)
	require.NoError(t, err)
	require.Len(t, obras, 1)

	assert.Equal(t, "OBR001", obras[0].ID)
	assert.Equal(t, "Residencial Aurora", obras[0].Nome)
	assert.Equal(t, 50.0, obras[0].IFEC)
	assert.Equal(t, 50.0, obras[0].IEC)
	assert.Len(t, obras[0].Etapas, 2)
}
