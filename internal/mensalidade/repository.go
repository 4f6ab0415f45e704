// internal/mensalidade/repository.go
package mensalidade

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Lote agrupa upserts e exclusões a aplicar de forma atômica: ou tudo é
// gravado, ou nada é.
type Lote struct {
	Upserts   []Mensalidade
	Exclusoes []string
}

// Vazio informa se o lote não tem nenhuma escrita planejada.
func (l Lote) Vazio() bool {
	return len(l.Upserts) == 0 && len(l.Exclusoes) == 0
}

// Store é a visão do armazenamento de mensalidades usada pelos fluxos.
type Store interface {
	ListarTodas() ([]Mensalidade, error)
	ListarPorAluno(alunoID string) ([]Mensalidade, error)
	BuscarPorID(id string) (*Mensalidade, error)
	AplicarLote(lote Lote) error
}

// Repository encapsula o acesso a dados de mensalidades via gorm.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarTodas devolve todas as mensalidades cadastradas.
func (r *Repository) ListarTodas() ([]Mensalidade, error) {
	var lista []Mensalidade
	err := r.DB.Order("data_vencimento ASC").Find(&lista).Error
	return lista, err
}

// ListarPorAluno devolve as mensalidades de um aluno, por vencimento.
func (r *Repository) ListarPorAluno(alunoID string) ([]Mensalidade, error) {
	var lista []Mensalidade
	err := r.DB.
		Where("aluno_id = ?", alunoID).
		Order("data_vencimento ASC").
		Find(&lista).Error
	return lista, err
}

// BuscarPorID busca uma única mensalidade pelo seu ID.
func (r *Repository) BuscarPorID(id string) (*Mensalidade, error) {
	var m Mensalidade
	if err := r.DB.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// AplicarLote grava exclusões e upserts em uma única transação.
// As exclusões rodam antes dos upserts: na regeneração, a pendente antiga e
// a recém-gerada podem ter o mesmo ID determinístico, e a ordem inversa
// apagaria o registro novo. O upsert é por ID, então reexecutar a geração
// sobrescreve em vez de duplicar.
func (r *Repository) AplicarLote(lote Lote) error {
	if lote.Vazio() {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(lote.Exclusoes) > 0 {
			if err := tx.Delete(&Mensalidade{}, "id IN ?", lote.Exclusoes).Error; err != nil {
				return err
			}
		}
		if len(lote.Upserts) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(lote.Upserts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
