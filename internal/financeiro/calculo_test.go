package financeiro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestCalcular(t *testing.T) {
	vencimentoMarco := data(2026, time.March, 10)

	testes := []struct {
		nome       string
		cobranca   Cobranca
		agora      time.Time
		multa      float64
		juros      float64
		total      float64
		diasAtraso int
	}{
		{
			nome:     "em dia não gera encargos",
			cobranca: Cobranca{Valor: 100.00, DataVencimento: vencimentoMarco},
			agora:    data(2026, time.March, 5),
			total:    100.00,
		},
		{
			nome:     "no dia do vencimento não gera encargos",
			cobranca: Cobranca{Valor: 100.00, DataVencimento: vencimentoMarco},
			agora:    data(2026, time.March, 10),
			total:    100.00,
		},
		{
			nome:       "um dia de atraso",
			cobranca:   Cobranca{Valor: 100.00, DataVencimento: vencimentoMarco},
			agora:      data(2026, time.March, 11),
			multa:      2.00,
			juros:      0.033,
			total:      102.033,
			diasAtraso: 1,
		},
		{
			nome:       "quinze dias de atraso",
			cobranca:   Cobranca{Valor: 100.00, DataVencimento: vencimentoMarco},
			agora:      data(2026, time.March, 25),
			multa:      2.00,
			juros:      0.495,
			total:      102.495,
			diasAtraso: 15,
		},
		{
			nome: "paga usa a data do pagamento como referência",
			cobranca: Cobranca{
				Valor:          100.00,
				DataVencimento: vencimentoMarco,
				Paga:           true,
				DataPagamento:  ponteiro(data(2026, time.March, 25)),
			},
			agora:      data(2026, time.July, 1),
			multa:      2.00,
			juros:      0.495,
			total:      102.495,
			diasAtraso: 15,
		},
		{
			nome: "paga sem data de pagamento é legado resolvido",
			cobranca: Cobranca{
				Valor:          100.00,
				DataVencimento: vencimentoMarco,
				Paga:           true,
			},
			agora: data(2026, time.July, 1),
			total: 100.00,
		},
		{
			nome:     "vencimento é normalizado para o dia 10",
			cobranca: Cobranca{Valor: 200.00, DataVencimento: data(2026, time.March, 28)},
			agora:    data(2026, time.March, 15),
			multa:    4.00,
			juros:    200.00 * JurosDiario * 5,
			total:    200.00 + 4.00 + 200.00*JurosDiario*5,
			// do fim do dia 10 ao início do dia 15
			diasAtraso: 5,
		},
	}

	for _, tt := range testes {
		t.Run(tt.nome, func(t *testing.T) {
			enc := Calcular(tt.cobranca, tt.agora)
			assert.Equal(t, tt.cobranca.Valor, enc.ValorOriginal)
			assert.InDelta(t, tt.multa, enc.Multa, 1e-9)
			assert.InDelta(t, tt.juros, enc.Juros, 1e-9)
			assert.InDelta(t, tt.total, enc.Total, 1e-9)
			assert.Equal(t, tt.diasAtraso, enc.DiasAtraso)
		})
	}
}

func TestCalcularNaoTemEfeitoColateral(t *testing.T) {
	c := Cobranca{Valor: 100.00, DataVencimento: data(2026, time.March, 10)}
	agora := data(2026, time.March, 25)

	primeira := Calcular(c, agora)
	segunda := Calcular(c, agora)
	assert.Equal(t, primeira, segunda)
}

func ponteiro(t time.Time) *time.Time {
	return &t
}
