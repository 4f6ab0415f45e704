package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/EscolaConecta/api-mensalidades/internal/aluno"
	"github.com/EscolaConecta/api-mensalidades/internal/auth"
	"github.com/EscolaConecta/api-mensalidades/internal/mensalidade"
	"github.com/EscolaConecta/api-mensalidades/internal/usuario"
	utilsdb "github.com/EscolaConecta/api-mensalidades/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	db, err := utilsdb.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := aluno.Migrate(db); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := mensalidade.Migrate(db); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := usuario.Migrate(db); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Serviço e handlers
	service := mensalidade.NewService(mensalidade.NewRepository(db), aluno.NewRepository(db))
	mensalidadeHandler := mensalidade.NewHandler(service)
	alunoHandler := aluno.NewHandler(db)
	usuarioHandler := usuario.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de alunos
	api.HandleFunc("/alunos", alunoHandler.Criar).Methods("POST")
	api.HandleFunc("/alunos", alunoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/alunos/{id}", alunoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/alunos/{id}", alunoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/alunos/{id}", alunoHandler.Deletar).Methods("DELETE")

	// Rotas de mensalidades
	api.HandleFunc("/mensalidades", mensalidadeHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/alunos/{id}/mensalidades", mensalidadeHandler.ListarPorAluno).Methods("GET")
	api.HandleFunc("/mensalidades/{id}/encargos", mensalidadeHandler.ComputarEncargos).Methods("GET")
	api.HandleFunc("/alunos/{id}/mensalidades/gerar", mensalidadeHandler.GerarParaAluno).Methods("POST")
	api.HandleFunc("/mensalidades/gerar-em-lote", mensalidadeHandler.GerarParaTodos).Methods("POST")
	api.HandleFunc("/mensalidades/{id}/pagamento", mensalidadeHandler.Quitar).Methods("PATCH")
	api.HandleFunc("/mensalidades/{id}/pagamento", mensalidadeHandler.Estornar).Methods("DELETE")

	// Rotas destrutivas (somente admin)
	admin := r.NewRoute().Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/mensalidades/deduplicar", mensalidadeHandler.DeduplicarENormalizar).Methods("POST")
	admin.HandleFunc("/alunos/{id}/mensalidades", mensalidadeHandler.ZerarAno).Methods("DELETE")

	origem := os.Getenv("CORS_ORIGIN")
	if origem == "" {
		origem = "http://localhost:3000"
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origem},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
