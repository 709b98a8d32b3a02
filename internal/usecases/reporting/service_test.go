package reporting

import (
	"testing"
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/repository/mocks"
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportService(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockObraRepository,
	*mocks.MockClienteRepository,
	*mocks.MockEtapaRepository,
	*mocks.MockFinanceiroRepository,
) {
	obraRepo := mocks.NewMockObraRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	etapaRepo := mocks.NewMockEtapaRepository(ctrl)
	financeiroRepo := mocks.NewMockFinanceiroRepository(ctrl)

	service := NewService(obraRepo, clienteRepo, etapaRepo, financeiroRepo)
	service.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	return service, obraRepo, clienteRepo, etapaRepo, financeiroRepo
}

func TestGenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, obraRepo, clienteRepo, etapaRepo, financeiroRepo := newTestReportService(ctrl)

	obra := &domain.Obra{
		ID:                    "OBR001",
		ClienteID:             "CLI001",
		Nome:                  "Residencial Aurora",
		Gestor:                "Eng. Marcos Lima",
		Status:                domain.ObraStatusEmAndamento,
		DataInicio:            dataRef(2024, 1, 1),
		DataConclusaoPrevista: dataRef(2024, 1, 31),
	}

	cliente := &domain.Cliente{
		ID:          "CLI001",
		Codigo:      "AUR123",
		Nome:        "Construtora Aurora Ltda",
		Responsavel: "Paula Mendes",
		Telefone:    "(31) 99999-0000",
		Logradouro:  "Rua das Acácias",
		Numero:      "120",
		Cidade:      "Belo Horizonte",
	}

	obraRepo.EXPECT().GetObraByID("OBR001").Return(obra, nil)
	clienteRepo.EXPECT().GetClienteByID("CLI001").Return(cliente, nil)
	etapaRepo.EXPECT().ListEtapasByObra("OBR001").Return([]*domain.Etapa{
		{Nome: "Fundação", Status: domain.EtapaStatusConcluido, Peso: 0.5, ReportEndDate: dataRef(2024, 3, 31)},
		{Nome: "Acabamento", Status: domain.EtapaStatusPendente, Peso: 0.5, ReportEndDate: dataRef(2024, 9, 30)},
	}, nil)
	financeiroRepo.EXPECT().ListCustosByObra("OBR001").Return([]*domain.LancamentoCusto{
		{Tipo: domain.CustoTipoDireto, ValorPrevisto: 100000, ValorReal: 90000},
	}, nil)
	financeiroRepo.EXPECT().ListReceitasByObra("OBR001").Return([]*domain.LancamentoReceita{
		{ValorPrevisto: 150000, ValorReal: 120000},
	}, nil)

	relatorio, err := service.GenerateReport("OBR001")
	require.NoError(t, err)
	require.NotNil(t, relatorio)

	// Bloco da obra
	assert.Equal(t, "OBR001", relatorio.Obra.ID)
	assert.Equal(t, "Residencial Aurora", relatorio.Obra.Nome)
	require.NotNil(t, relatorio.Obra.DataInicio)
	assert.Equal(t, "2024-01-01", *relatorio.Obra.DataInicio)
	require.NotNil(t, relatorio.Obra.PrazoDias)
	assert.Equal(t, 30, *relatorio.Obra.PrazoDias)

	// Bloco do cliente, com endereço montado das partes preenchidas
	assert.Equal(t, "Construtora Aurora Ltda", relatorio.Cliente.Nome)
	assert.Equal(t, "Rua das Acácias, 120, Belo Horizonte", relatorio.Cliente.Endereco)

	// Análises recalculadas a partir dos dados correntes
	require.NotNil(t, relatorio.AnaliseFisica)
	assert.Equal(t, 50.0, relatorio.AnaliseFisica.IFEC.Valor)
	assert.Equal(t, 100.0, relatorio.AnaliseFisica.IEC.Valor)

	require.NotNil(t, relatorio.AnaliseFinanceira)
	assert.Equal(t, 90000.0, relatorio.AnaliseFinanceira.CustoTotalReal)
	assert.Equal(t, 30000.0, relatorio.AnaliseFinanceira.Saldo)
	assert.Equal(t, 25.0, relatorio.AnaliseFinanceira.Margem)

	assert.Empty(t, relatorio.ObservacoesGerenciais)
}

func TestGenerateReport_ObraNaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, obraRepo, _, _, _ := newTestReportService(ctrl)

	obraRepo.EXPECT().GetObraByID("OBR999").Return(nil, nil)

	relatorio, err := service.GenerateReport("OBR999")
	assert.Nil(t, relatorio)
	assert.ErrorIs(t, err, ErrObraNaoEncontrada)
}

func TestGenerateReport_ClienteNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, obraRepo, clienteRepo, _, _ := newTestReportService(ctrl)

	obraRepo.EXPECT().GetObraByID("OBR001").Return(&domain.Obra{ID: "OBR001", ClienteID: "CLI404"}, nil)
	clienteRepo.EXPECT().GetClienteByID("CLI404").Return(nil, nil)

	relatorio, err := service.GenerateReport("OBR001")
	assert.Nil(t, relatorio)
	assert.ErrorIs(t, err, ErrClienteNaoEncontrado)
}

func TestGenerateReport_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, obraRepo, clienteRepo, etapaRepo, financeiroRepo := newTestReportService(ctrl)

	obraRepo.EXPECT().GetObraByID("OBR001").Return(&domain.Obra{ID: "OBR001", ClienteID: "CLI001"}, nil)
	clienteRepo.EXPECT().GetClienteByID("CLI001").Return(&domain.Cliente{ID: "CLI001"}, nil)
	etapaRepo.EXPECT().ListEtapasByObra("OBR001").Return(nil, errors.New("connection reset"))
	financeiroRepo.EXPECT().ListCustosByObra("OBR001").Return(nil, nil)
	financeiroRepo.EXPECT().ListReceitasByObra("OBR001").Return(nil, nil)

	relatorio, err := service.GenerateReport("OBR001")
	assert.Nil(t, relatorio)
	assert.Error(t, err)
}

func TestPrazoDias(t *testing.T) {
	tests := []struct {
		name     string
		inicio   *time.Time
		fim      *time.Time
		expected *int
	}{
		{
			name:     "Mês completo em dias corridos",
			inicio:   dataRef(2024, 1, 1),
			fim:      dataRef(2024, 1, 31),
			expected: intPtr(30),
		},
		{
			name:     "Fração de dia arredonda para cima",
			inicio:   dataRef(2024, 1, 1),
			fim:      timeRef(2024, 1, 2, 6),
			expected: intPtr(2),
		},
		{
			name:     "Sem data de início não há prazo",
			inicio:   nil,
			fim:      dataRef(2024, 1, 31),
			expected: nil,
		},
		{
			name:     "Sem data de conclusão não há prazo",
			inicio:   dataRef(2024, 1, 1),
			fim:      nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrazoDias(tt.inicio, tt.fim))
		})
	}
}

func intPtr(i int) *int {
	return &i
}

func timeRef(ano int, mes time.Month, dia, hora int) *time.Time {
	d := time.Date(ano, mes, dia, hora, 0, 0, 0, time.UTC)
	return &d
}
