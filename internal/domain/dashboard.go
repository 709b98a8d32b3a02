package domain

// ResumoDashboard agrega os números exibidos no painel inicial
type ResumoDashboard struct {
	ObrasPorStatus       map[string]int `json:"obras_por_status"`
	TotalObras           int            `json:"total_obras"`
	TotalClientes        int            `json:"total_clientes"`
	ValorContratadoAtivo float64        `json:"valor_contratado_ativo"`
	ProximosEventos      []*Evento      `json:"proximos_eventos"`
}
