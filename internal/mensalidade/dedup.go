// internal/mensalidade/dedup.go
package mensalidade

import (
	"fmt"
	"log"
	"math"
	"sort"
)

// ToleranciaValor é a margem usada para comparar o valor de uma mensalidade
// com o valor atual cadastrado do aluno.
const ToleranciaValor = 0.01

// ResultadoDeduplicacao resume uma passada de normalização e deduplicação.
type ResultadoDeduplicacao struct {
	Ano            int      `json:"ano"`
	QtdNormalizada int      `json:"qtdNormalizada"`
	QtdExcluida    int      `json:"qtdExcluida"`
	AlunosAfetados []string `json:"alunosAfetados"`
}

// DeduplicarENormalizar converge a base para no máximo uma mensalidade por
// (aluno, mês):
//
//  1. Rótulos legados sem o sufixo de ano, com vencimento dentro do ano
//     alvo, são reescritos para "Mês/Ano" (mesmo ID, via update).
//  2. Grupos (aluno, mês canônico) com mais de um registro são resolvidos:
//     havendo paga, toda pendente do grupo é excluída — uma mensalidade
//     paga nunca é escolhida para exclusão aqui; mais de uma paga no mesmo
//     grupo é anomalia de dados, apenas registrada em log.
//     Grupos só de pendentes mantêm a que bate com o valor atual do aluno
//     (se exatamente uma bater), senão a de AtualizadoEm mais recente, com
//     o ID como desempate final para manter o resultado determinístico.
//
// Reescritas e exclusões vão em um único lote atômico.
func (s *Service) DeduplicarENormalizar(ano int) (*ResultadoDeduplicacao, error) {
	todas, err := s.Mensalidades.ListarTodas()
	if err != nil {
		return nil, fmt.Errorf("listar mensalidades: %w", err)
	}

	agora := s.Agora()
	resultado := &ResultadoDeduplicacao{Ano: ano, AlunosAfetados: []string{}}

	normalizadas := make(map[string]bool)
	for i := range todas {
		m := &todas[i]
		if m.Mes == rotuloCanonico(*m) {
			continue
		}
		if m.DataVencimento.Year() != ano {
			continue
		}
		m.Mes = rotuloCanonico(*m)
		m.AtualizadoEm = agora
		normalizadas[m.ID] = true
	}

	grupos := make(map[string][]Mensalidade)
	for _, m := range todas {
		chave := m.AlunoID + "|" + rotuloCanonico(m)
		grupos[chave] = append(grupos[chave], m)
	}

	chaves := make([]string, 0, len(grupos))
	for chave, grupo := range grupos {
		if len(grupo) > 1 {
			chaves = append(chaves, chave)
		}
	}
	sort.Strings(chaves)

	excluir := make(map[string]bool)
	afetados := make(map[string]bool)
	for _, chave := range chaves {
		grupo := grupos[chave]

		var pagas, pendentes []Mensalidade
		for _, m := range grupo {
			if m.Paga() {
				pagas = append(pagas, m)
			} else {
				pendentes = append(pendentes, m)
			}
		}

		if len(pagas) > 0 {
			for _, m := range pendentes {
				excluir[m.ID] = true
			}
			if len(pagas) > 1 {
				log.Printf("deduplicação: %d mensalidades pagas para %s; anomalia de dados, nenhuma será excluída", len(pagas), chave)
			}
			if len(pendentes) > 0 {
				afetados[grupo[0].AlunoID] = true
			}
			continue
		}

		mantida := s.escolherSobrevivente(pendentes)
		for _, m := range pendentes {
			if m.ID != mantida.ID {
				excluir[m.ID] = true
			}
		}
		afetados[grupo[0].AlunoID] = true
	}

	var lote Lote
	for _, m := range todas {
		if normalizadas[m.ID] && !excluir[m.ID] {
			lote.Upserts = append(lote.Upserts, m)
			resultado.QtdNormalizada++
		}
	}
	for id := range excluir {
		lote.Exclusoes = append(lote.Exclusoes, id)
	}
	sort.Strings(lote.Exclusoes)

	if err := s.Mensalidades.AplicarLote(lote); err != nil {
		return nil, fmt.Errorf("gravar deduplicação (%d): %w", ano, err)
	}

	resultado.QtdExcluida = len(lote.Exclusoes)
	for alunoID := range afetados {
		resultado.AlunosAfetados = append(resultado.AlunosAfetados, s.nomeDoAluno(alunoID))
	}
	sort.Strings(resultado.AlunosAfetados)
	return resultado, nil
}

// escolherSobrevivente aplica o desempate de um grupo só de pendentes.
func (s *Service) escolherSobrevivente(pendentes []Mensalidade) Mensalidade {
	if valor, ok := s.valorAtualDoAluno(pendentes[0].AlunoID); ok {
		var compativeis []Mensalidade
		for _, m := range pendentes {
			if math.Abs(m.Valor-valor) <= ToleranciaValor {
				compativeis = append(compativeis, m)
			}
		}
		if len(compativeis) == 1 {
			return compativeis[0]
		}
	}

	mantida := pendentes[0]
	for _, m := range pendentes[1:] {
		if m.AtualizadoEm.After(mantida.AtualizadoEm) ||
			(m.AtualizadoEm.Equal(mantida.AtualizadoEm) && m.ID > mantida.ID) {
			mantida = m
		}
	}
	return mantida
}

// valorAtualDoAluno busca o valor de mensalidade vigente no cadastro; aluno
// removido cai no desempate por AtualizadoEm.
func (s *Service) valorAtualDoAluno(alunoID string) (float64, bool) {
	a, err := s.Alunos.BuscarPorID(alunoID)
	if err != nil {
		return 0, false
	}
	return a.ValorMensalidade, true
}

// nomeDoAluno resolve o nome para o relatório; aluno removido aparece pelo ID.
func (s *Service) nomeDoAluno(alunoID string) string {
	a, err := s.Alunos.BuscarPorID(alunoID)
	if err != nil {
		return alunoID
	}
	return a.Nome
}
