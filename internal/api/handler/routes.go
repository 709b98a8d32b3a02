package handler

import (
	"net/http"

	"github.com/obrativa/obras-manager-api/internal/api/handler/router"
	"github.com/obrativa/obras-manager-api/internal/usecases/authenticating"
	"github.com/obrativa/obras-manager-api/internal/usecases/portal"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/internal/usecases/reporting"
	"github.com/obrativa/obras-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Clientes(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clientes",
			Method:      http.MethodPost,
			Handler:     CreateCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/clientes",
			Method:      http.MethodGet,
			Handler:     ListClientes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/clientes/:id",
			Method:      http.MethodGet,
			Handler:     GetCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/clientes/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/clientes/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clientes/:id/obras",
			Method:      http.MethodGet,
			Handler:     ListObrasDoCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Obras(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/obras",
			Method:      http.MethodPost,
			Handler:     CreateObra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras",
			Method:      http.MethodGet,
			Handler:     ListObras(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras/:id",
			Method:      http.MethodGet,
			Handler:     GetObra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras/:id",
			Method:      http.MethodPut,
			Handler:     UpdateObra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteObra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Etapas(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/obras/:id/etapas",
			Method:      http.MethodPost,
			Handler:     CreateEtapa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras/:id/etapas",
			Method:      http.MethodGet,
			Handler:     ListEtapas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/etapas/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEtapa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/etapas/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEtapa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Financeiro(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/obras/:id/financeiro",
			Method:      http.MethodGet,
			Handler:     ListFinanceiro(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras/:id/custos",
			Method:      http.MethodPost,
			Handler:     CreateCusto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/custos/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCusto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/custos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCusto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras/:id/receitas",
			Method:      http.MethodPost,
			Handler:     CreateReceita(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/receitas/:id",
			Method:      http.MethodPut,
			Handler:     UpdateReceita(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/receitas/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteReceita(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Propostas(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/propostas",
			Method:      http.MethodPost,
			Handler:     CreateProposta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/propostas",
			Method:      http.MethodGet,
			Handler:     ListPropostas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/propostas/:id",
			Method:      http.MethodGet,
			Handler:     GetProposta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/propostas/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProposta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/propostas/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProposta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Contratos(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contratos",
			Method:      http.MethodPost,
			Handler:     CreateContrato(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/obras/:id/contratos",
			Method:      http.MethodGet,
			Handler:     ListContratos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/contratos/:id",
			Method:      http.MethodPut,
			Handler:     UpdateContrato(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/contratos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteContrato(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Agenda(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/agenda/eventos",
			Method:      http.MethodPost,
			Handler:     CreateEvento(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/agenda/eventos",
			Method:      http.MethodGet,
			Handler:     ListEventos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/agenda/eventos/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEvento(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/agenda/eventos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEvento(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Relatorios(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/relatorios/gerencial",
			Method:      http.MethodPost,
			Handler:     GenerateRelatorioGerencial(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Portal(service portal.Porter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/portal/convites",
			Method:      http.MethodPost,
			Handler:     CreateConvitePortal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/portal/obras",
			Method:      http.MethodGet,
			Handler:     ListObrasPortal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClienteOnly()},
		},
	}
}

func Dashboard(service registry.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/resumo",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}
