package portal

import (
	"strings"
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer"
	"github.com/obrativa/obras-manager-api/infrastructure/repository"
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/internal/usecases/authenticating"
	"github.com/obrativa/obras-manager-api/internal/usecases/reporting"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const roleCliente = 3

// Porter provisiona acessos do portal do cliente e monta a visão das
// obras liberadas para um usuário
type Porter interface {
	Provision(req *domain.ConvitePortalRequest) (*domain.ConvitePortalResponse, error)
	ListObrasDoUsuario(userID int) ([]*domain.ObraPortal, error)
}

type Service struct {
	userRepo    repository.UserRepository
	clienteRepo repository.ClienteRepository
	obraRepo    repository.ObraRepository
	etapaRepo   repository.EtapaRepository
	accessRepo  repository.PortalAccessRepository
	mailer      mailer.MailerIntegrator

	// now fixa a data de referência dos índices nos testes
	now func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	clienteRepo repository.ClienteRepository,
	obraRepo repository.ObraRepository,
	etapaRepo repository.EtapaRepository,
	accessRepo repository.PortalAccessRepository,
	mailerService mailer.MailerIntegrator,
) *Service {
	return &Service{
		userRepo:    userRepo,
		clienteRepo: clienteRepo,
		obraRepo:    obraRepo,
		etapaRepo:   etapaRepo,
		accessRepo:  accessRepo,
		mailer:      mailerService,
		now:         time.Now,
	}
}

// Provision concede a um e-mail acesso de portal a uma obra de um
// cliente. Se o e-mail ainda não tem usuário, um usuário com perfil de
// cliente é criado com senha inicial gerada e enviada no convite.
// Reprovisionar um acesso existente é idempotente.
//
// A falha no envio do e-mail não desfaz a concessão: o acesso já está
// gravado e o convite pode ser reenviado.
func (s *Service) Provision(req *domain.ConvitePortalRequest) (*domain.ConvitePortalResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	cliente, err := s.clienteRepo.GetClienteByID(req.ClienteID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar cliente do convite")
	}
	if cliente == nil {
		return nil, ErrClienteNaoEncontrado
	}

	obra, err := s.obraRepo.GetObraByID(req.ObraID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar obra do convite")
	}
	if obra == nil {
		return nil, ErrObraNaoEncontrada
	}
	if obra.ClienteID != cliente.ID {
		return nil, ErrObraDeOutroCliente
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário do convite")
	}

	isNewUser := user == nil
	var senhaInicial string

	if isNewUser {
		senhaInicial, err = authenticating.NewRandomPassword(12)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar senha inicial")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(senhaInicial), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar hash da senha inicial")
		}

		user, err = s.userRepo.CreateUser(&domain.User{
			Name:         cliente.Responsavel,
			Lastname:     cliente.Nome,
			Email:        email,
			PasswordHash: string(hash),
			Active:       true,
			RoleID:       roleCliente,
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar usuário do portal")
		}
	}

	err = s.accessRepo.GrantAccess(&domain.AcessoPortal{
		UserID:    user.ID,
		ClienteID: cliente.ID,
		ObraID:    obra.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conceder acesso ao portal")
	}

	message := "Acesso ao portal concedido"

	err = s.mailer.SendConvitePortal(mailer.ConvitePortal{
		Email:        email,
		NomeCliente:  cliente.Nome,
		NomeObra:     obra.Nome,
		SenhaInicial: senhaInicial,
		NovoUsuario:  isNewUser,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"obra_id": obra.ID,
		}).Warnf("Acesso concedido, mas o envio do convite falhou: %v", err)
		message = "Acesso concedido, mas o envio do convite por e-mail falhou"
	}

	return &domain.ConvitePortalResponse{
		Success:   true,
		UserID:    user.ID,
		IsNewUser: isNewUser,
		Message:   message,
	}, nil
}

// ListObrasDoUsuario monta a visão de portal das obras liberadas para o
// usuário: etapas e índices físicos, sem os dados financeiros
func (s *Service) ListObrasDoUsuario(userID int) ([]*domain.ObraPortal, error) {
	acessos, err := s.accessRepo.ListAccessByUser(userID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar acessos do usuário")
	}

	obras := make([]*domain.ObraPortal, 0, len(acessos))
	for _, acesso := range acessos {
		obra, err := s.obraRepo.GetObraByID(acesso.ObraID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar obra do portal")
		}
		if obra == nil {
			// Acesso órfão de obra removida, apenas ignora
			continue
		}

		etapas, err := s.etapaRepo.ListEtapasByObra(obra.ID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao listar etapas da obra do portal")
		}

		analise := reporting.CalculateProgress(etapas, s.now())

		obras = append(obras, &domain.ObraPortal{
			ID:     obra.ID,
			Nome:   obra.Nome,
			Status: obra.Status,
			Gestor: obra.Gestor,
			IFEC:   analise.IFEC.Valor,
			IEC:    analise.IEC.Valor,
			Etapas: etapas,
		})
	}

	return obras, nil
}

func validateRequest(req *domain.ConvitePortalRequest) error {
	if req == nil {
		return ErrConviteInvalido
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailInvalido
	}

	if strings.TrimSpace(req.ClienteID) == "" || strings.TrimSpace(req.ObraID) == "" {
		return ErrConviteInvalido
	}

	return nil
}
