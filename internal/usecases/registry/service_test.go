package registry

import (
	"testing"
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/integrator/geocoding/geocodingclient"
	geomocks "github.com/obrativa/obras-manager-api/infrastructure/integrator/geocoding/mocks"
	"github.com/obrativa/obras-manager-api/infrastructure/repository/mocks"
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registryMocks struct {
	clienteRepo    *mocks.MockClienteRepository
	obraRepo       *mocks.MockObraRepository
	etapaRepo      *mocks.MockEtapaRepository
	financeiroRepo *mocks.MockFinanceiroRepository
	propostaRepo   *mocks.MockPropostaRepository
	contratoRepo   *mocks.MockContratoRepository
	agendaRepo     *mocks.MockAgendaRepository
	geocoder       *geomocks.MockGeocodingIntegrator
}

func newTestRegistry(ctrl *gomock.Controller) (*Service, *registryMocks) {
	m := &registryMocks{
		clienteRepo:    mocks.NewMockClienteRepository(ctrl),
		obraRepo:       mocks.NewMockObraRepository(ctrl),
		etapaRepo:      mocks.NewMockEtapaRepository(ctrl),
		financeiroRepo: mocks.NewMockFinanceiroRepository(ctrl),
		propostaRepo:   mocks.NewMockPropostaRepository(ctrl),
		contratoRepo:   mocks.NewMockContratoRepository(ctrl),
		agendaRepo:     mocks.NewMockAgendaRepository(ctrl),
		geocoder:       geomocks.NewMockGeocodingIntegrator(ctrl),
	}

	service := NewService(
		m.clienteRepo, m.obraRepo, m.etapaRepo, m.financeiroRepo,
		m.propostaRepo, m.contratoRepo, m.agendaRepo, m.geocoder,
	)
	service.now = func() time.Time {
		return time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	}

	return service, m
}

func TestCreateCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestRegistry(ctrl)

	m.clienteRepo.EXPECT().
		CreateCliente(gomock.Any()).
		DoAndReturn(func(cliente *domain.Cliente) (*domain.Cliente, error) {
			// ID e código curto são gerados quando não informados
			assert.Len(t, cliente.ID, 6)
			assert.Len(t, cliente.Codigo, 6)
			return cliente, nil
		})

	cliente, err := service.CreateCliente(&domain.Cliente{Nome: "Construtora Aurora Ltda"})
	require.NoError(t, err)
	assert.NotEmpty(t, cliente.ID)

	_, err = service.CreateCliente(&domain.Cliente{Nome: "   "})
	assert.ErrorIs(t, err, ErrNomeObrigatorio)
}

func TestCreateObra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestRegistry(ctrl)

	tests := []struct {
		name        string
		req         *domain.CreateObraRequest
		setup       func()
		expectedErr error
		validate    func(t *testing.T, obra *domain.Obra)
	}{
		{
			name: "Cadastro completo com datas",
			req: &domain.CreateObraRequest{
				ClienteID:             "CLI001",
				Nome:                  "Residencial Aurora",
				Gestor:                "Eng. Marcos Lima",
				DataInicio:            "2024-01-01",
				DataConclusaoPrevista: "2024-12-20",
			},
			setup: func() {
				m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(&domain.Cliente{ID: "CLI001"}, nil)
				m.obraRepo.EXPECT().
					CreateObra(gomock.Any()).
					DoAndReturn(func(obra *domain.Obra) (*domain.Obra, error) {
						return obra, nil
					})
			},
			validate: func(t *testing.T, obra *domain.Obra) {
				assert.Len(t, obra.ID, 6)
				assert.Equal(t, domain.ObraStatusPlanejamento, obra.Status)
				require.NotNil(t, obra.DataInicio)
				assert.Equal(t, "2024-01-01", obra.DataInicio.Format("2006-01-02"))
			},
		},
		{
			name:        "Nome ausente",
			req:         &domain.CreateObraRequest{ClienteID: "CLI001"},
			setup:       func() {},
			expectedErr: ErrNomeObrigatorio,
		},
		{
			name: "Cliente inexistente",
			req:  &domain.CreateObraRequest{ClienteID: "CLI404", Nome: "Obra Fantasma"},
			setup: func() {
				m.clienteRepo.EXPECT().GetClienteByID("CLI404").Return(nil, nil)
			},
			expectedErr: ErrClienteNaoEncontrado,
		},
		{
			name: "Status inválido",
			req:  &domain.CreateObraRequest{ClienteID: "CLI001", Nome: "Obra", Status: "demolida"},
			setup: func() {
				m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(&domain.Cliente{ID: "CLI001"}, nil)
			},
			expectedErr: ErrStatusInvalido,
		},
		{
			name: "Data em formato inválido",
			req:  &domain.CreateObraRequest{ClienteID: "CLI001", Nome: "Obra", DataInicio: "01/01/2024"},
			setup: func() {
				m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(&domain.Cliente{ID: "CLI001"}, nil)
			},
			expectedErr: ErrDataInvalida,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			obra, err := service.CreateObra(tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, obra)
		})
	}
}

func TestCreateEtapa_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestRegistry(ctrl)

	_, err := service.CreateEtapa(&domain.CreateEtapaRequest{ObraID: "OBR001", Nome: "Fundação", Peso: 0})
	assert.ErrorIs(t, err, ErrPesoInvalido)

	_, err = service.CreateEtapa(&domain.CreateEtapaRequest{ObraID: "OBR001", Nome: "Fundação", Peso: -0.2})
	assert.ErrorIs(t, err, ErrPesoInvalido)

	m.obraRepo.EXPECT().GetObraByID("OBR001").Return(&domain.Obra{ID: "OBR001"}, nil)
	m.etapaRepo.EXPECT().
		CreateEtapa(gomock.Any()).
		DoAndReturn(func(etapa *domain.Etapa) (*domain.Etapa, error) {
			assert.Equal(t, domain.EtapaStatusPendente, etapa.Status)
			require.NotNil(t, etapa.ReportEndDate)
			return etapa, nil
		})

	_, err = service.CreateEtapa(&domain.CreateEtapaRequest{
		ObraID:        "OBR001",
		Nome:          "Fundação",
		Peso:          0.2,
		ReportEndDate: "2024-03-31",
	})
	assert.NoError(t, err)
}

func TestCreateProposta_GeocodificacaoMelhorEsforco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestRegistry(ctrl)

	cliente := &domain.Cliente{ID: "CLI001"}

	t.Run("Coordenadas preenchidas quando a geocodificação responde", func(t *testing.T) {
		m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(cliente, nil)
		m.geocoder.EXPECT().
			Geocode("Rua das Acácias, 120, Belo Horizonte").
			Return(&geocodingclient.Coordenadas{Latitude: -19.92, Longitude: -43.94}, nil)
		m.propostaRepo.EXPECT().
			CreateProposta(gomock.Any()).
			DoAndReturn(func(proposta *domain.Proposta) (*domain.Proposta, error) {
				require.NotNil(t, proposta.Latitude)
				assert.Equal(t, -19.92, *proposta.Latitude)
				return proposta, nil
			})

		_, err := service.CreateProposta(&domain.Proposta{
			ClienteID: "CLI001",
			Titulo:    "Reforma do galpão",
			Valor:     180000,
			Endereco:  "Rua das Acácias, 120, Belo Horizonte",
		})
		assert.NoError(t, err)
	})

	t.Run("Falha na geocodificação não bloqueia o cadastro", func(t *testing.T) {
		m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(cliente, nil)
		m.geocoder.EXPECT().
			Geocode(gomock.Any()).
			Return(nil, errors.New("serviço indisponível"))
		m.propostaRepo.EXPECT().
			CreateProposta(gomock.Any()).
			DoAndReturn(func(proposta *domain.Proposta) (*domain.Proposta, error) {
				assert.Nil(t, proposta.Latitude)
				assert.Nil(t, proposta.Longitude)
				return proposta, nil
			})

		_, err := service.CreateProposta(&domain.Proposta{
			ClienteID: "CLI001",
			Titulo:    "Reforma do galpão",
			Valor:     180000,
			Endereco:  "Rua das Acácias, 120, Belo Horizonte",
		})
		assert.NoError(t, err)
	})

	t.Run("Sem endereço não consulta o geocodificador", func(t *testing.T) {
		m.clienteRepo.EXPECT().GetClienteByID("CLI001").Return(cliente, nil)
		m.propostaRepo.EXPECT().
			CreateProposta(gomock.Any()).
			DoAndReturn(func(proposta *domain.Proposta) (*domain.Proposta, error) {
				return proposta, nil
			})

		_, err := service.CreateProposta(&domain.Proposta{
			ClienteID: "CLI001",
			Titulo:    "Reforma do galpão",
			Valor:     180000,
		})
		assert.NoError(t, err)
	})
}

func TestGetResumoDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestRegistry(ctrl)

	m.obraRepo.EXPECT().CountObrasPorStatus().Return(map[string]int{
		domain.ObraStatusEmAndamento:  3,
		domain.ObraStatusPlanejamento: 2,
		domain.ObraStatusConcluida:    5,
	}, nil)
	m.clienteRepo.EXPECT().CountClientes().Return(8, nil)
	m.contratoRepo.EXPECT().SumValorContratosAtivos().Return(1250000.0, nil)

	inicio := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	m.agendaRepo.EXPECT().
		ListEventosByPeriodo(inicio, inicio.AddDate(0, 0, 7)).
		Return([]*domain.Evento{{ID: 1, Titulo: "Visita técnica"}}, nil)

	resumo, err := service.GetResumoDashboard()
	require.NoError(t, err)

	assert.Equal(t, 10, resumo.TotalObras)
	assert.Equal(t, 8, resumo.TotalClientes)
	assert.Equal(t, 1250000.0, resumo.ValorContratadoAtivo)
	assert.Len(t, resumo.ProximosEventos, 1)
}

func TestListEventos_PeriodoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestRegistry(ctrl)

	inicio := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := service.ListEventos(0, inicio, inicio)
	assert.ErrorIs(t, err, ErrPeriodoInvalido)

	_, err = service.ListEventos(0, inicio, inicio.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrPeriodoInvalido)
}
