package mensalidade

import (
	"testing"
	"time"

	"github.com/EscolaConecta/api-mensalidades/internal/aluno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontarID(t *testing.T) {
	assert.Equal(t, "fee-a1-2026-3", MontarID("a1", 2026, 3))
	// mesmo aluno/ano/mês sempre produz o mesmo ID
	assert.Equal(t, MontarID("a1", 2026, 3), MontarID("a1", 2026, 3))
}

func TestRotuloMes(t *testing.T) {
	assert.Equal(t, "Janeiro/2026", RotuloMes(0, 2026))
	assert.Equal(t, "Março/2026", RotuloMes(2, 2026))
	assert.Equal(t, "Dezembro/2026", RotuloMes(11, 2026))
}

func TestGerarMensalidades_AnoCompleto(t *testing.T) {
	a := aluno.Aluno{ID: "a1", Nome: "Ana Souza", ValorMensalidade: 850.00}
	agora := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC)

	geradas := GerarMensalidades(a, 2026, nil, 0, agora)
	require.Len(t, geradas, 12)

	for i, m := range geradas {
		assert.Equal(t, MontarID("a1", 2026, i+1), m.ID)
		assert.Equal(t, RotuloMes(i, 2026), m.Mes)
		assert.Equal(t, 850.00, m.Valor)
		assert.Equal(t, StatusPendente, m.Status)
		assert.Equal(t, DiaVencimento, m.DataVencimento.Day())
		assert.Equal(t, time.Month(i+1), m.DataVencimento.Month())
		assert.Equal(t, 2026, m.DataVencimento.Year())
		assert.Equal(t, agora, m.AtualizadoEm)
	}
}

func TestGerarMensalidades_PulaMesesExcluidos(t *testing.T) {
	a := aluno.Aluno{ID: "a1", ValorMensalidade: 850.00}
	excluidos := map[string]bool{"Março/2026": true, "Julho/2026": true}

	geradas := GerarMensalidades(a, 2026, excluidos, 0, time.Now())
	require.Len(t, geradas, 10)
	for _, m := range geradas {
		assert.NotEqual(t, "Março/2026", m.Mes)
		assert.NotEqual(t, "Julho/2026", m.Mes)
	}
}

func TestGerarMensalidades_MesInicial(t *testing.T) {
	a := aluno.Aluno{ID: "a1", ValorMensalidade: 850.00}

	// matrícula em Abril: nada de Janeiro a Março
	geradas := GerarMensalidades(a, 2026, nil, 3, time.Now())
	require.Len(t, geradas, 9)
	assert.Equal(t, "Abril/2026", geradas[0].Mes)
	assert.Equal(t, "Dezembro/2026", geradas[len(geradas)-1].Mes)
}

func TestGerarMensalidades_MesInicialNegativo(t *testing.T) {
	a := aluno.Aluno{ID: "a1", ValorMensalidade: 850.00}
	geradas := GerarMensalidades(a, 2026, nil, -2, time.Now())
	assert.Len(t, geradas, 12)
}
