package mensalidade

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotearHandler(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/alunos/{id}/mensalidades/gerar", h.GerarParaAluno).Methods("POST")
	r.HandleFunc("/alunos/{id}/mensalidades", h.ZerarAno).Methods("DELETE")
	r.HandleFunc("/mensalidades/{id}/pagamento", h.Quitar).Methods("PATCH")
	return r
}

func TestHandlerGerarParaAluno(t *testing.T) {
	store := novoStoreFake()
	s := servicoDeTeste(store, novoAlunosFake(alunaAna()), inicioDe2026())
	router := rotearHandler(NewHandler(s))

	req := httptest.NewRequest("POST", "/alunos/a1/mensalidades/gerar", strings.NewReader(`{"ano":2026}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"qtdGeradas":12`)
}

func TestHandlerGerarParaAluno_ConfirmacaoNecessaria(t *testing.T) {
	pagamento := inicioDe2026()
	paga := Mensalidade{
		ID:             MontarID("a1", 2026, 1),
		AlunoID:        "a1",
		Mes:            "Janeiro/2026",
		Valor:          850.00,
		DataVencimento: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		Status:         StatusPago,
		DataPagamento:  &pagamento,
	}
	store := novoStoreFake(paga)
	s := servicoDeTeste(store, novoAlunosFake(alunaAna()), inicioDe2026())
	router := rotearHandler(NewHandler(s))

	req := httptest.NewRequest("POST", "/alunos/a1/mensalidades/gerar", strings.NewReader(`{"ano":2026}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandlerQuitar_SemFormaDePagamento(t *testing.T) {
	store := novoStoreFake()
	s := servicoDeTeste(store, novoAlunosFake(alunaAna()), inicioDe2026())
	router := rotearHandler(NewHandler(s))

	req := httptest.NewRequest("PATCH", "/mensalidades/x/pagamento", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerZerarAno_NomeErrado(t *testing.T) {
	store := novoStoreFake()
	s := servicoDeTeste(store, novoAlunosFake(alunaAna()), inicioDe2026())
	router := rotearHandler(NewHandler(s))

	corpo := `{"ano":2026,"nomeConfirmacao":"Nome Errado"}`
	req := httptest.NewRequest("DELETE", "/alunos/a1/mensalidades", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
