// internal/mensalidade/dto.go
package mensalidade

// DTO usado no POST /alunos/{id}/mensalidades/gerar
type GerarDTO struct {
	Ano int `json:"ano" validate:"required,gte=2000,lte=2100"`
	// Confirmação do operador de que as mensalidades pagas do ano serão
	// preservadas e apenas as pendentes serão regeradas.
	ConfirmadoPreservarPagas bool `json:"confirmadoPreservarPagas"`
}

// DTO usado no POST /mensalidades/gerar-em-lote
type GerarLoteDTO struct {
	Ano int `json:"ano" validate:"required,gte=2000,lte=2100"`
}

// DTO usado no POST /mensalidades/deduplicar
type DeduplicarDTO struct {
	Ano int `json:"ano" validate:"required,gte=2000,lte=2100"`
}

// DTO usado no PATCH /mensalidades/{id}/pagamento
type QuitarDTO struct {
	FormaPagamento string `json:"formaPagamento" validate:"required"`
}

// DTO usado no DELETE /alunos/{id}/mensalidades
type ZerarAnoDTO struct {
	Ano int `json:"ano" validate:"required,gte=2000,lte=2100"`
	// Nome exato do aluno, redigitado pelo operador como segundo fator da
	// confirmação da exclusão.
	NomeConfirmacao string `json:"nomeConfirmacao" validate:"required"`
}
