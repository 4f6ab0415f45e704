// internal/mensalidade/errors.go
package mensalidade

import (
	"errors"
	"fmt"
)

// Erros de validação detectados antes de qualquer escrita.
var (
	// ErrAlunoBolsista sinaliza geração para aluno isento; é informativo,
	// não uma falha do sistema.
	ErrAlunoBolsista = errors.New("aluno bolsista é isento de mensalidades")

	// ErrValorMensalidadeInvalido sinaliza mensalidade não cadastrada,
	// zerada ou abaixo do valor mínimo.
	ErrValorMensalidadeInvalido = errors.New("valor de mensalidade ausente ou abaixo do mínimo")

	// ErrAnoEncerrado sinaliza geração para um ano já totalmente decorrido.
	ErrAnoEncerrado = errors.New("ano alvo já encerrado")

	// ErrConfirmacaoNome sinaliza que o nome digitado na confirmação não
	// confere com o cadastro do aluno.
	ErrConfirmacaoNome = errors.New("nome de confirmação não confere")

	// ErrMensalidadeJaPaga protege contra quitação dupla.
	ErrMensalidadeJaPaga = errors.New("mensalidade já está paga")

	// ErrMensalidadeNaoPaga sinaliza estorno de mensalidade pendente.
	ErrMensalidadeNaoPaga = errors.New("mensalidade não está paga")
)

// ConfirmacaoNecessariaError indica que o aluno possui mensalidades pagas e
// o operador ainda não confirmou que elas serão preservadas na regeneração.
type ConfirmacaoNecessariaError struct {
	QtdPagas int
}

func (e *ConfirmacaoNecessariaError) Error() string {
	return fmt.Sprintf("aluno possui %d mensalidade(s) paga(s); confirme para preservá-las e regerar as demais", e.QtdPagas)
}
