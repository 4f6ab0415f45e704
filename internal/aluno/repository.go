// internal/aluno/repository.go
package aluno

import "gorm.io/gorm"

// Store é a visão somente-leitura usada pelos fluxos de mensalidade.
type Store interface {
	BuscarPorID(id string) (*Aluno, error)
	ListarTodos() ([]Aluno, error)
}

// Repository encapsula o acesso a dados de alunos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorID busca um aluno pelo seu ID.
func (r *Repository) BuscarPorID(id string) (*Aluno, error) {
	var a Aluno
	if err := r.DB.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListarTodos devolve todos os alunos em ordem alfabética.
func (r *Repository) ListarTodos() ([]Aluno, error) {
	var alunos []Aluno
	err := r.DB.Order("nome ASC").Find(&alunos).Error
	return alunos, err
}

// Salvar insere ou atualiza um aluno (Save exige PK preenchida).
func (r *Repository) Salvar(a *Aluno) error {
	return r.DB.Save(a).Error
}

// Deletar remove o aluno; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) Deletar(id string) error {
	res := r.DB.Delete(&Aluno{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
