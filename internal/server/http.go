package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"github.com/th3w1zard1/Andastra-sub005/internal/engine"
	"github.com/th3w1zard1/Andastra-sub005/internal/network"
	"github.com/th3w1zard1/Andastra-sub005/internal/version"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// Server - наблюдательный HTTP/WS сервер поверх одного инстанса.
// Только чтение: команды в симуляцию отсюда не проходят.
type Server struct {
	Instance *engine.Instance
	Hub      *network.Broadcaster
	Port     string
}

func New(inst *engine.Instance, hub *network.Broadcaster, port string) *Server {
	return &Server{
		Instance: inst,
		Hub:      hub,
		Port:     port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/snapshot", enableCORS(s.handleSnapshot))

	logger.Log.Infof("Observer server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

// handleWS обрабатывает подключение наблюдателя по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Hub, conn)
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

// handleSnapshot отдает разовый кадр без подписки (для curl-диагностики)
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Instance.Snapshot())
}
