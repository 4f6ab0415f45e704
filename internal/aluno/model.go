package aluno

import (
	"time"

	"gorm.io/gorm"
)

// Aluno representa o cadastro básico de um aluno. O restante da ficha
// (responsáveis, turma, documentos) pertence a outros módulos do console.
type Aluno struct {
	ID               string    `gorm:"primaryKey;size:64" json:"id"`
	Nome             string    `gorm:"size:255;not null" json:"nome"`
	ValorMensalidade float64   `gorm:"not null;default:0" json:"valorMensalidade"`
	Bolsista         bool      `gorm:"not null;default:false" json:"bolsista"`
	Unidade          string    `gorm:"size:100" json:"unidade"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Aluno{})
}
