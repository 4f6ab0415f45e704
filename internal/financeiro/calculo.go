// internal/financeiro/calculo.go
package financeiro

import (
	"math"
	"time"
)

// Percentuais de encargos aplicados após o vencimento.
const (
	MultaPercentual = 0.02    // multa fixa de 2%
	JurosDiario     = 0.00033 // juros simples de ~0,033% ao dia
)

// Cobranca é a visão mínima de uma mensalidade necessária para o cálculo.
type Cobranca struct {
	Valor          float64
	DataVencimento time.Time
	Paga           bool
	DataPagamento  *time.Time
}

// Encargos é o detalhamento do valor devido em uma data de referência.
type Encargos struct {
	ValorOriginal float64 `json:"valorOriginal"`
	Multa         float64 `json:"multa"`
	Juros         float64 `json:"juros"`
	DiasAtraso    int     `json:"diasAtraso"`
	Total         float64 `json:"total"`
}

// Calcular computa multa e juros de uma cobrança na data de referência.
//
// O vencimento é normalizado para o dia 10 do mês da cobrança, fim do dia.
// Para cobranças pagas a referência é a data do pagamento; para pendentes,
// o início do dia de "agora". Cobrança paga sem data de pagamento é legado:
// devolve encargos zerados e total igual ao valor original.
func Calcular(c Cobranca, agora time.Time) Encargos {
	enc := Encargos{ValorOriginal: c.Valor, Total: c.Valor}

	venc := c.DataVencimento
	vencimento := time.Date(venc.Year(), venc.Month(), 10, 23, 59, 59, 0, venc.Location())

	var referencia time.Time
	if c.Paga {
		if c.DataPagamento == nil {
			return enc
		}
		referencia = *c.DataPagamento
	} else {
		referencia = time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	}

	if !referencia.After(vencimento) {
		return enc
	}

	dias := int(math.Ceil(referencia.Sub(vencimento).Hours() / 24))
	enc.DiasAtraso = dias
	enc.Multa = c.Valor * MultaPercentual
	enc.Juros = c.Valor * JurosDiario * float64(dias)
	enc.Total = c.Valor + enc.Multa + enc.Juros
	return enc
}
