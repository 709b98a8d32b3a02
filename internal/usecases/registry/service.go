package registry

import (
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/integrator/geocoding"
	"github.com/obrativa/obras-manager-api/infrastructure/repository"
	"github.com/obrativa/obras-manager-api/internal/domain"
)

// Registrar concentra o cadastro de clientes, obras, etapas,
// lançamentos financeiros, propostas, contratos e agenda, além do
// resumo do dashboard
type Registrar interface {
	CreateCliente(cliente *domain.Cliente) (*domain.Cliente, error)
	GetCliente(id string) (*domain.Cliente, error)
	ListClientes() ([]*domain.Cliente, error)
	UpdateCliente(req *domain.UpdateClienteRequest) error
	DeleteCliente(id string) error

	CreateObra(req *domain.CreateObraRequest) (*domain.Obra, error)
	GetObra(id string) (*domain.Obra, error)
	ListObras(status string) ([]*domain.Obra, error)
	ListObrasByCliente(clienteID string) ([]*domain.Obra, error)
	UpdateObra(req *domain.UpdateObraRequest) error
	DeleteObra(id string) error

	CreateEtapa(req *domain.CreateEtapaRequest) (*domain.Etapa, error)
	ListEtapasByObra(obraID string) ([]*domain.Etapa, error)
	UpdateEtapa(req *domain.UpdateEtapaRequest) error
	DeleteEtapa(id int64) error

	CreateCusto(custo *domain.LancamentoCusto) (*domain.LancamentoCusto, error)
	UpdateCusto(custo *domain.LancamentoCusto) error
	DeleteCusto(id int64) error
	CreateReceita(receita *domain.LancamentoReceita) (*domain.LancamentoReceita, error)
	UpdateReceita(receita *domain.LancamentoReceita) error
	DeleteReceita(id int64) error
	ListFinanceiroByObra(obraID string) ([]*domain.LancamentoCusto, []*domain.LancamentoReceita, error)

	CreateProposta(proposta *domain.Proposta) (*domain.Proposta, error)
	GetProposta(id int64) (*domain.Proposta, error)
	ListPropostas(clienteID string) ([]*domain.Proposta, error)
	UpdateProposta(proposta *domain.Proposta) error
	DeleteProposta(id int64) error

	CreateContrato(req *domain.CreateContratoRequest) (*domain.Contrato, error)
	ListContratosByObra(obraID string) ([]*domain.Contrato, error)
	UpdateContrato(contrato *domain.Contrato) error
	DeleteContrato(id int64) error

	CreateEvento(evento *domain.Evento) (*domain.Evento, error)
	ListEventos(userID int, inicio, fim time.Time) ([]*domain.Evento, error)
	UpdateEvento(evento *domain.Evento) error
	DeleteEvento(id int64) error

	GetResumoDashboard() (*domain.ResumoDashboard, error)
}

type Service struct {
	clienteRepo    repository.ClienteRepository
	obraRepo       repository.ObraRepository
	etapaRepo      repository.EtapaRepository
	financeiroRepo repository.FinanceiroRepository
	propostaRepo   repository.PropostaRepository
	contratoRepo   repository.ContratoRepository
	agendaRepo     repository.AgendaRepository
	geocoder       geocoding.GeocodingIntegrator

	now func() time.Time
}

func NewService(
	clienteRepo repository.ClienteRepository,
	obraRepo repository.ObraRepository,
	etapaRepo repository.EtapaRepository,
	financeiroRepo repository.FinanceiroRepository,
	propostaRepo repository.PropostaRepository,
	contratoRepo repository.ContratoRepository,
	agendaRepo repository.AgendaRepository,
	geocoder geocoding.GeocodingIntegrator,
) *Service {
	return &Service{
		clienteRepo:    clienteRepo,
		obraRepo:       obraRepo,
		etapaRepo:      etapaRepo,
		financeiroRepo: financeiroRepo,
		propostaRepo:   propostaRepo,
		contratoRepo:   contratoRepo,
		agendaRepo:     agendaRepo,
		geocoder:       geocoder,
		now:            time.Now,
	}
}
