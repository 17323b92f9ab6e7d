package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"rogue-engine/internal/engine"
	"rogue-engine/internal/version"
	"rogue-engine/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Engine *engine.GameService
	Port   string

	router *chi.Mux
	// baseCtx живет дольше запроса: контекст запроса /ws отменяется,
	// как только хендлер вернул управление.
	baseCtx context.Context
}

func New(ctx context.Context, engine *engine.GameService, port string) *Server {
	s := &Server{
		Engine:  engine,
		Port:    port,
		router:  chi.NewRouter(),
		baseCtx: ctx,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)
	r.Use(enableCORS)

	r.Get("/ws", s.handleWS)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)

		NewDebugHandler(s.Engine).RegisterRoutes(r)
	})

	r.Mount("/debug/pprof", chimw.Profiler())
}

// Router нужен тестам (httptest.NewServer).
func (s *Server) Router() http.Handler { return s.router }

// Run запускает HTTP сервер и останавливает его по отмене ctx.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("Rogue Engine server running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger пишет каждый запрос в logrus.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		logger.Log.WithFields(logrus.Fields{
			"component":  "http",
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
			"request_id": chimw.GetReqID(r.Context()),
		}).Debug("HTTP request")
	})
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.baseCtx, s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Info())
}
