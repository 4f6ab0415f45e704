// internal/mensalidade/model.go
package mensalidade

import (
	"time"

	"github.com/EscolaConecta/api-mensalidades/internal/financeiro"
	"gorm.io/gorm"
)

// Status possíveis de uma mensalidade.
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
)

// Mensalidade representa a obrigação de um mês de um aluno.
//
// O ID é determinístico para registros criados pelo gerador (ver MontarID);
// registros legados podem carregar IDs arbitrários. Após a quitação, Valor
// passa a guardar o total com encargos efetivamente cobrado.
type Mensalidade struct {
	ID             string     `gorm:"primaryKey;size:100" json:"id"`
	AlunoID        string     `gorm:"size:64;not null;index" json:"alunoId"`
	Mes            string     `gorm:"size:30;not null" json:"mes"` // "Março/2026"; legado pode vir sem o ano
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	DataVencimento time.Time  `gorm:"not null" json:"dataVencimento"`
	Status         string     `gorm:"size:20;not null;default:'Pendente';index" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	FormaPagamento string     `gorm:"size:50" json:"formaPagamento,omitempty"`
	ComprovanteURL string     `gorm:"size:255" json:"comprovanteUrl,omitempty"`
	CriadoEm       time.Time  `json:"criadoEm"`
	AtualizadoEm   time.Time  `gorm:"index" json:"atualizadoEm"` // desempate na deduplicação
}

// Cobranca converte a mensalidade para a visão do cálculo de encargos.
func (m Mensalidade) Cobranca() financeiro.Cobranca {
	return financeiro.Cobranca{
		Valor:          m.Valor,
		DataVencimento: m.DataVencimento,
		Paga:           m.Status == StatusPago,
		DataPagamento:  m.DataPagamento,
	}
}

// Paga informa se a mensalidade já foi quitada.
func (m Mensalidade) Paga() bool {
	return m.Status == StatusPago
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Mensalidade{})
}
