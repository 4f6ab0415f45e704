// internal/mensalidade/gerador.go
package mensalidade

import (
	"fmt"
	"time"

	"github.com/EscolaConecta/api-mensalidades/internal/aluno"
)

// NomesMeses são os rótulos usados no campo Mes, na ordem do calendário.
var NomesMeses = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// DiaVencimento é o dia fixo de vencimento de toda mensalidade gerada.
const DiaVencimento = 10

// ValorMinimo é o menor valor de mensalidade aceito na geração.
const ValorMinimo = 1.00

// MontarID monta o ID determinístico de uma mensalidade gerada.
// É a chave de idempotência da geração: contrato estável, não mude o formato.
func MontarID(alunoID string, ano, numMes int) string {
	return fmt.Sprintf("fee-%s-%d-%d", alunoID, ano, numMes)
}

// RotuloMes devolve o rótulo canônico "Mês/Ano" de um índice de mês (0 = Janeiro).
func RotuloMes(indiceMes, ano int) string {
	return fmt.Sprintf("%s/%d", NomesMeses[indiceMes], ano)
}

// GerarMensalidades monta as mensalidades de um aluno para o ano informado,
// do mês inicial (0 = Janeiro) até Dezembro, pulando os rótulos excluídos
// (meses já quitados). Não grava nada: devolve os registros prontos para um
// único lote atômico.
func GerarMensalidades(a aluno.Aluno, ano int, excluidos map[string]bool, mesInicial int, agora time.Time) []Mensalidade {
	if mesInicial < 0 {
		mesInicial = 0
	}
	var geradas []Mensalidade
	for i := mesInicial; i < 12; i++ {
		rotulo := RotuloMes(i, ano)
		if excluidos[rotulo] {
			continue
		}
		numMes := i + 1
		geradas = append(geradas, Mensalidade{
			ID:             MontarID(a.ID, ano, numMes),
			AlunoID:        a.ID,
			Mes:            rotulo,
			Valor:          a.ValorMensalidade,
			DataVencimento: time.Date(ano, time.Month(numMes), DiaVencimento, 0, 0, 0, 0, time.UTC),
			Status:         StatusPendente,
			CriadoEm:       agora,
			AtualizadoEm:   agora,
		})
	}
	return geradas
}
