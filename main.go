package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "github.com/petrmazanek/pozar-drevo/internal/auth"
	autodesign "github.com/petrmazanek/pozar-drevo/internal/calc/autodesign"
	batch "github.com/petrmazanek/pozar-drevo/internal/calc/batch"
	fire "github.com/petrmazanek/pozar-drevo/internal/calc/fire"
	importer "github.com/petrmazanek/pozar-drevo/internal/calc/importer"
	loads "github.com/petrmazanek/pozar-drevo/internal/calc/loads"
	report "github.com/petrmazanek/pozar-drevo/internal/calc/report"
	sls "github.com/petrmazanek/pozar-drevo/internal/calc/sls"
	uls "github.com/petrmazanek/pozar-drevo/internal/calc/uls"
	verify "github.com/petrmazanek/pozar-drevo/internal/calc/verify"
	material "github.com/petrmazanek/pozar-drevo/internal/material"
	profile "github.com/petrmazanek/pozar-drevo/internal/profile"
	repo "github.com/petrmazanek/pozar-drevo/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")

	materialH := &material.Handler{}
	loadsH := &loads.Handler{}
	ulsH := &uls.Handler{}
	slsH := &sls.Handler{}
	fireH := &fire.Handler{}
	verifyH := &verify.Handler{Repo: userRepo}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autodesignH := &autodesign.Handler{}

	secureApi.HandleFunc("/materials", materialH.List).Methods("GET")
	secureApi.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/uls/calc", ulsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/sls/calc", slsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/fire/calc", fireH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/verify/calc", verifyH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/verify/history", profileH.History).Methods("GET")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/batch/verify", batchH.Verify).Methods("POST")
	secureApi.HandleFunc("/tools/import/verify", importerH.Verify).Methods("POST")
	secureApi.HandleFunc("/tools/autodesign/fire", autodesignH.Fire).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		certFile := os.Getenv("CERT_FILE")
		keyFile := os.Getenv("KEY_FILE")
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
