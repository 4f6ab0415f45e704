// internal/aluno/dto.go
package aluno

// DTO usado no POST /alunos
type CriarAlunoDTO struct {
	Nome             string  `json:"nome" validate:"required"`
	ValorMensalidade float64 `json:"valorMensalidade" validate:"gte=0"`
	Bolsista         bool    `json:"bolsista"`
	Unidade          string  `json:"unidade"`
}

// DTO usado no PUT /alunos/{id}
type AtualizarAlunoDTO struct {
	Nome             string  `json:"nome" validate:"required"`
	ValorMensalidade float64 `json:"valorMensalidade" validate:"gte=0"`
	Bolsista         bool    `json:"bolsista"`
	Unidade          string  `json:"unidade"`
}
