// internal/aluno/handler.go
package aluno

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo     *Repository
	Validate *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db), Validate: validator.New()}
}

// POST /alunos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CriarAlunoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a := Aluno{
		ID:               uuid.NewString(),
		Nome:             in.Nome,
		ValorMensalidade: in.ValorMensalidade,
		Bolsista:         in.Bolsista,
		Unidade:          in.Unidade,
	}
	if err := h.Repo.Salvar(&a); err != nil {
		http.Error(w, "Erro ao salvar aluno", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /alunos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	alunos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar alunos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(alunos)
}

// GET /alunos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	a, err := h.Repo.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Aluno não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// PUT /alunos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	a, err := h.Repo.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Aluno não encontrado", http.StatusNotFound)
		return
	}

	var in AtualizarAlunoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.Nome = in.Nome
	a.ValorMensalidade = in.ValorMensalidade
	a.Bolsista = in.Bolsista
	a.Unidade = in.Unidade

	if err := h.Repo.Salvar(a); err != nil {
		http.Error(w, "Erro ao atualizar aluno", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// DELETE /alunos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Deletar(mux.Vars(r)["id"]); err != nil {
		http.Error(w, "Aluno não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
