// internal/mensalidade/handler.go
package mensalidade

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

/* ============================== Handler ============================== */

type Handler struct {
	Service  *Service
	Validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service, Validate: validator.New()}
}

// Converte erros de negócio dos fluxos para a resposta HTTP adequada.
// Validações viram 4xx com a mensagem do próprio erro; o resto é 500.
func responderErro(w http.ResponseWriter, err error) {
	var confirmacao *ConfirmacaoNecessariaError
	switch {
	case errors.As(err, &confirmacao):
		http.Error(w, confirmacao.Error(), http.StatusConflict)
	case errors.Is(err, ErrAlunoBolsista),
		errors.Is(err, ErrValorMensalidadeInvalido),
		errors.Is(err, ErrAnoEncerrado),
		errors.Is(err, ErrMensalidadeJaPaga),
		errors.Is(err, ErrMensalidadeNaoPaga):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrConfirmacaoNome):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Registro não encontrado", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func responderJSON(w http.ResponseWriter, status int, corpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(corpo)
}

/* ============================== Endpoints ============================== */

// GET /mensalidades
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Service.Mensalidades.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao listar mensalidades", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, lista)
}

// GET /alunos/{id}/mensalidades
func (h *Handler) ListarPorAluno(w http.ResponseWriter, r *http.Request) {
	alunoID := mux.Vars(r)["id"]
	lista, err := h.Service.Mensalidades.ListarPorAluno(alunoID)
	if err != nil {
		http.Error(w, "Erro ao listar mensalidades do aluno", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, lista)
}

// GET /mensalidades/{id}/encargos
func (h *Handler) ComputarEncargos(w http.ResponseWriter, r *http.Request) {
	encargos, err := h.Service.ComputarEncargos(mux.Vars(r)["id"])
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, encargos)
}

// POST /alunos/{id}/mensalidades/gerar
func (h *Handler) GerarParaAluno(w http.ResponseWriter, r *http.Request) {
	alunoID := mux.Vars(r)["id"]

	var in GerarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resultado, err := h.Service.GerarParaAluno(alunoID, in.Ano, in.ConfirmadoPreservarPagas)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, resultado)
}

// POST /mensalidades/gerar-em-lote
func (h *Handler) GerarParaTodos(w http.ResponseWriter, r *http.Request) {
	var in GerarLoteDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resultado, err := h.Service.GerarParaTodos(in.Ano)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, resultado)
}

// POST /mensalidades/deduplicar
func (h *Handler) DeduplicarENormalizar(w http.ResponseWriter, r *http.Request) {
	var in DeduplicarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resultado, err := h.Service.DeduplicarENormalizar(in.Ano)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, resultado)
}

// PATCH /mensalidades/{id}/pagamento
func (h *Handler) Quitar(w http.ResponseWriter, r *http.Request) {
	var in QuitarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.Service.QuitarMensalidade(mux.Vars(r)["id"], in.FormaPagamento)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, m)
}

// DELETE /mensalidades/{id}/pagamento
func (h *Handler) Estornar(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.EstornarPagamento(mux.Vars(r)["id"])
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, m)
}

// DELETE /alunos/{id}/mensalidades
func (h *Handler) ZerarAno(w http.ResponseWriter, r *http.Request) {
	alunoID := mux.Vars(r)["id"]

	var in ZerarAnoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resultado, err := h.Service.ZerarAno(alunoID, in.Ano, in.NomeConfirmacao)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, resultado)
}
