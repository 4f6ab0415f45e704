package usuario

import (
	"encoding/json"
	"net/http"

	"github.com/EscolaConecta/api-mensalidades/internal/auth"
	"github.com/EscolaConecta/api-mensalidades/internal/utils"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Validate   *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Validate: validator.New()}
}

type LoginDTO struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type CriarUsuarioDTO struct {
	Nome    string `json:"nome" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Senha   string `json:"senha" validate:"required,min=8"`
	IsAdmin bool   `json:"isAdmin"`
}

// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarPorEmail(h.DB, in.Email)
	if err != nil || !utils.VerificarSenha(u.Senha, in.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"nome":    u.Nome,
		"isAdmin": u.IsAdmin,
	})
}

// POST /usuarios (somente admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CriarUsuarioDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(in.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{Nome: in.Nome, Email: in.Email, Senha: hash, IsAdmin: in.IsAdmin}
	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "Erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}
