// internal/mensalidade/service.go
package mensalidade

import (
	"fmt"
	"strings"
	"time"

	"github.com/EscolaConecta/api-mensalidades/internal/aluno"
	"github.com/EscolaConecta/api-mensalidades/internal/financeiro"
)

// Service orquestra os fluxos de geração, quitação e limpeza de mensalidades.
// Toda decisão de escrita é tomada a partir das leituras feitas na própria
// invocação e aplicada em um único lote atômico; não há exclusão mútua entre
// invocações concorrentes (último que grava vence, por documento).
type Service struct {
	Mensalidades Store
	Alunos       aluno.Store

	// Agora é o relógio injetado dos fluxos; os testes fixam datas
	// arbitrárias do ano letivo sem mexer no relógio do sistema.
	Agora func() time.Time
}

// NewService cria o serviço com o relógio padrão.
func NewService(m Store, a aluno.Store) *Service {
	return &Service{Mensalidades: m, Alunos: a, Agora: time.Now}
}

// ResultadoGeracao resume uma (re)geração individual.
type ResultadoGeracao struct {
	AlunoID          string `json:"alunoId"`
	Ano              int    `json:"ano"`
	QtdGeradas       int    `json:"qtdGeradas"`
	PagasPreservadas int    `json:"pagasPreservadas"`
}

// AlunoIgnorado registra por que um aluno ficou de fora da geração em lote.
type AlunoIgnorado struct {
	AlunoID string `json:"alunoId"`
	Nome    string `json:"nome"`
	Motivo  string `json:"motivo"`
}

// ResultadoGeracaoLote resume a geração em lote de um ano.
type ResultadoGeracaoLote struct {
	Ano        int             `json:"ano"`
	QtdGeradas int             `json:"qtdGeradas"`
	Ignorados  []AlunoIgnorado `json:"ignorados"`
}

// ResultadoZerarAno resume a exclusão total de um ano de um aluno.
type ResultadoZerarAno struct {
	AlunoID     string `json:"alunoId"`
	Ano         int    `json:"ano"`
	QtdExcluida int    `json:"qtdExcluida"`
}

// mesInicialParaAno aplica a regra de geração proporcional: ano corrente
// começa no mês de hoje, ano futuro começa em Janeiro e ano já decorrido é
// recusado.
func (s *Service) mesInicialParaAno(ano int) (int, error) {
	agora := s.Agora()
	switch {
	case ano < agora.Year():
		return 0, ErrAnoEncerrado
	case ano == agora.Year():
		return int(agora.Month()) - 1, nil
	default:
		return 0, nil
	}
}

// validarAlunoParaGeracao aplica as pré-condições de geração de um aluno.
func validarAlunoParaGeracao(a *aluno.Aluno) error {
	if a.Bolsista {
		return ErrAlunoBolsista
	}
	if a.ValorMensalidade < ValorMinimo {
		return ErrValorMensalidadeInvalido
	}
	return nil
}

// doAno filtra as mensalidades cujo vencimento cai no ano informado.
func doAno(todas []Mensalidade, ano int) []Mensalidade {
	var filtradas []Mensalidade
	for _, m := range todas {
		if m.DataVencimento.Year() == ano {
			filtradas = append(filtradas, m)
		}
	}
	return filtradas
}

// GerarParaAluno limpa e regera as mensalidades pendentes de um aluno para o
// ano alvo, preservando as pagas. Se existirem mensalidades pagas e o
// operador ainda não confirmou, devolve ConfirmacaoNecessariaError sem
// gravar nada. Limpeza e regeração vão no mesmo lote atômico.
func (s *Service) GerarParaAluno(alunoID string, ano int, confirmadoPreservarPagas bool) (*ResultadoGeracao, error) {
	a, err := s.Alunos.BuscarPorID(alunoID)
	if err != nil {
		return nil, fmt.Errorf("buscar aluno %s: %w", alunoID, err)
	}
	if err := validarAlunoParaGeracao(a); err != nil {
		return nil, err
	}
	mesInicial, err := s.mesInicialParaAno(ano)
	if err != nil {
		return nil, err
	}

	existentes, err := s.Mensalidades.ListarPorAluno(alunoID)
	if err != nil {
		return nil, fmt.Errorf("listar mensalidades do aluno %s: %w", alunoID, err)
	}

	var pagas, pendentes []Mensalidade
	for _, m := range doAno(existentes, ano) {
		if m.Paga() {
			pagas = append(pagas, m)
		} else {
			pendentes = append(pendentes, m)
		}
	}

	if len(pagas) > 0 && !confirmadoPreservarPagas {
		return nil, &ConfirmacaoNecessariaError{QtdPagas: len(pagas)}
	}

	excluidos := make(map[string]bool, len(pagas))
	for _, m := range pagas {
		excluidos[rotuloCanonico(m)] = true
	}

	lote := Lote{Upserts: GerarMensalidades(*a, ano, excluidos, mesInicial, s.Agora())}
	for _, m := range pendentes {
		lote.Exclusoes = append(lote.Exclusoes, m.ID)
	}

	if err := s.Mensalidades.AplicarLote(lote); err != nil {
		return nil, fmt.Errorf("gravar mensalidades do aluno %s (%d): %w", alunoID, ano, err)
	}
	return &ResultadoGeracao{
		AlunoID:          alunoID,
		Ano:              ano,
		QtdGeradas:       len(lote.Upserts),
		PagasPreservadas: len(pagas),
	}, nil
}

// Motivos registrados no relatório da geração em lote.
const (
	MotivoBolsista      = "Bolsista (isento)"
	MotivoValorInvalido = "Mensalidade não cadastrada ou abaixo do mínimo"
)

// GerarParaTodos gera as mensalidades do ano alvo para toda a base de
// alunos, pulando bolsistas, alunos sem valor cadastrado e alunos que já
// possuem a mensalidade de Janeiro do ano. As escritas de todos os alunos
// vão em um único lote atômico.
func (s *Service) GerarParaTodos(ano int) (*ResultadoGeracaoLote, error) {
	mesInicial, err := s.mesInicialParaAno(ano)
	if err != nil {
		return nil, err
	}

	alunos, err := s.Alunos.ListarTodos()
	if err != nil {
		return nil, fmt.Errorf("listar alunos: %w", err)
	}
	todas, err := s.Mensalidades.ListarTodas()
	if err != nil {
		return nil, fmt.Errorf("listar mensalidades: %w", err)
	}

	janeiro := RotuloMes(0, ano)
	jaGerado := make(map[string]bool)
	for _, m := range todas {
		if rotuloCanonico(m) == janeiro {
			jaGerado[m.AlunoID] = true
		}
	}

	agora := s.Agora()
	resultado := &ResultadoGeracaoLote{Ano: ano, Ignorados: []AlunoIgnorado{}}
	var lote Lote
	for _, a := range alunos {
		if jaGerado[a.ID] {
			continue
		}
		if a.Bolsista {
			resultado.Ignorados = append(resultado.Ignorados, AlunoIgnorado{AlunoID: a.ID, Nome: a.Nome, Motivo: MotivoBolsista})
			continue
		}
		if a.ValorMensalidade < ValorMinimo {
			resultado.Ignorados = append(resultado.Ignorados, AlunoIgnorado{AlunoID: a.ID, Nome: a.Nome, Motivo: MotivoValorInvalido})
			continue
		}
		lote.Upserts = append(lote.Upserts, GerarMensalidades(a, ano, nil, mesInicial, agora)...)
	}

	if err := s.Mensalidades.AplicarLote(lote); err != nil {
		return nil, fmt.Errorf("gravar geração em lote (%d): %w", ano, err)
	}
	resultado.QtdGeradas = len(lote.Upserts)
	return resultado, nil
}

// QuitarMensalidade marca a mensalidade como paga, congelando no campo Valor
// o total com encargos devido na data da quitação.
func (s *Service) QuitarMensalidade(id, formaPagamento string) (*Mensalidade, error) {
	m, err := s.Mensalidades.BuscarPorID(id)
	if err != nil {
		return nil, fmt.Errorf("buscar mensalidade %s: %w", id, err)
	}
	if m.Paga() {
		return nil, ErrMensalidadeJaPaga
	}

	agora := s.Agora()
	encargos := financeiro.Calcular(m.Cobranca(), agora)

	m.Status = StatusPago
	m.Valor = encargos.Total
	m.DataPagamento = &agora
	m.FormaPagamento = formaPagamento
	m.AtualizadoEm = agora

	if err := s.Mensalidades.AplicarLote(Lote{Upserts: []Mensalidade{*m}}); err != nil {
		return nil, fmt.Errorf("quitar mensalidade %s: %w", id, err)
	}
	return m, nil
}

// EstornarPagamento devolve a mensalidade para Pendente. O Valor congelado na
// quitação não é restaurado ao valor base original: comportamento herdado do
// sistema de origem (ver DESIGN.md).
func (s *Service) EstornarPagamento(id string) (*Mensalidade, error) {
	m, err := s.Mensalidades.BuscarPorID(id)
	if err != nil {
		return nil, fmt.Errorf("buscar mensalidade %s: %w", id, err)
	}
	if !m.Paga() {
		return nil, ErrMensalidadeNaoPaga
	}

	m.Status = StatusPendente
	m.DataPagamento = nil
	m.ComprovanteURL = ""
	m.AtualizadoEm = s.Agora()

	if err := s.Mensalidades.AplicarLote(Lote{Upserts: []Mensalidade{*m}}); err != nil {
		return nil, fmt.Errorf("estornar mensalidade %s: %w", id, err)
	}
	return m, nil
}

// ZerarAno exclui TODAS as mensalidades (pagas e pendentes) de um aluno no
// ano alvo. É o único caminho do sistema autorizado a excluir mensalidades
// pagas, por isso exige o nome exato do aluno como segundo fator de
// confirmação; divergência é ErrConfirmacaoNome e nada é gravado.
func (s *Service) ZerarAno(alunoID string, ano int, nomeConfirmacao string) (*ResultadoZerarAno, error) {
	a, err := s.Alunos.BuscarPorID(alunoID)
	if err != nil {
		return nil, fmt.Errorf("buscar aluno %s: %w", alunoID, err)
	}
	if nomeConfirmacao != a.Nome {
		return nil, ErrConfirmacaoNome
	}

	existentes, err := s.Mensalidades.ListarPorAluno(alunoID)
	if err != nil {
		return nil, fmt.Errorf("listar mensalidades do aluno %s: %w", alunoID, err)
	}

	var lote Lote
	for _, m := range doAno(existentes, ano) {
		lote.Exclusoes = append(lote.Exclusoes, m.ID)
	}
	if err := s.Mensalidades.AplicarLote(lote); err != nil {
		return nil, fmt.Errorf("zerar ano %d do aluno %s: %w", ano, alunoID, err)
	}
	return &ResultadoZerarAno{AlunoID: alunoID, Ano: ano, QtdExcluida: len(lote.Exclusoes)}, nil
}

// ComputarEncargos calcula multa e juros da mensalidade na data de hoje (ou
// na data de pagamento, se quitada). Não grava nada.
func (s *Service) ComputarEncargos(id string) (*financeiro.Encargos, error) {
	m, err := s.Mensalidades.BuscarPorID(id)
	if err != nil {
		return nil, fmt.Errorf("buscar mensalidade %s: %w", id, err)
	}
	encargos := financeiro.Calcular(m.Cobranca(), s.Agora())
	return &encargos, nil
}

// rotuloCanonico devolve o rótulo "Mês/Ano" da mensalidade, completando o
// ano a partir do vencimento quando o registro legado guarda só o mês.
func rotuloCanonico(m Mensalidade) string {
	if strings.Contains(m.Mes, "/") {
		return m.Mes
	}
	return fmt.Sprintf("%s/%d", m.Mes, m.DataVencimento.Year())
}
