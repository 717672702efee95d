package main

import (
	auth "Pipeguard/internal/auth"
	assess "Pipeguard/internal/calc/assess"
	asme "Pipeguard/internal/calc/asme"
	batch "Pipeguard/internal/calc/batch"
	dnv "Pipeguard/internal/calc/dnv"
	importer "Pipeguard/internal/calc/importer"
	report "Pipeguard/internal/calc/report"
	profile "Pipeguard/internal/profile"
	repo "Pipeguard/internal/repo"
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
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
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	// The DNV partial-safety-factor table is operator configuration, built
	// once and shared read-only by every handler.
	factors, err := dnv.TableFromEnv()
	if err != nil {
		log.Fatalf("DNV factor table: %v", err)
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	assessH := &assess.Handler{Factors: factors}
	api.HandleFunc("/example", assessH.Example).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/upload-avatar", profileH.UploadAvatar).Methods("POST")

	asmeH := &asme.Handler{}
	dnvH := &dnv.Handler{Factors: factors}
	batchH := &batch.Handler{Factors: factors}
	importerH := &importer.Handler{Factors: factors}
	reportH := &report.Handler{Factors: factors}

	secureApi.HandleFunc("/tools/assess/calc", assessH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/asme/calc", asmeH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/dnv/calc", dnvH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/import/ili", importerH.Assess).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	mux.PathPrefix("/uploads/").
		Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir("./static/uploads/"))))

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
