package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine"
	"github.com/rpruizc/rustoguelike/internal/version"
	"github.com/rpruizc/rustoguelike/pkg/logger"
	"github.com/rpruizc/rustoguelike/pkg/utils"
)

// Server раздает подземелья по WebSocket: одно подключение - одна
// приватная партия.
type Server struct {
	Port     string
	Registry *Registry

	cfg engine.Config
	gen domain.TerrainGenerator
}

func New(cfg engine.Config, gen domain.TerrainGenerator, port string) *Server {
	return &Server{
		Port:     port,
		Registry: NewRegistry(),
		cfg:      cfg,
		gen:      gen,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux // pprof регистрируется именно сюда

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Registry)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("🏰 Dungeon server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error.")
		return
	}

	// Нулевой сид означает случайную партию на каждое подключение.
	// Явный -seed дает всем подключениям одинаковое подземелье.
	cfg := s.cfg
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := engine.NewGame(cfg, s.gen)
	session := NewSession(utils.GenerateID(), game)
	s.Registry.Add(session)

	logger.Log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"seed":       cfg.Seed,
		"remote":     r.RemoteAddr,
	}).Info("Client connected. Session created.")

	client := NewClient(session, s.Registry, conn)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("Health write failed.")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("Version write failed.")
	}
}
