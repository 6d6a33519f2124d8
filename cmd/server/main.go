package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc"

	"DRIVER_MONITOR/go-backend/internal/config"
	"DRIVER_MONITOR/go-backend/internal/database"
	"DRIVER_MONITOR/go-backend/internal/handlers"
	"DRIVER_MONITOR/go-backend/internal/models"
	"DRIVER_MONITOR/go-backend/internal/pipeline"
	"DRIVER_MONITOR/go-backend/internal/services"
	pb "DRIVER_MONITOR/go-backend/pkg/pb"
)

var (
	grpcServer *grpc.Server
	httpServer *http.Server

	detectorClient *services.DetectorClient
	pipelineConfig pipeline.Config
	serverStart    = time.Now()

	// REST /api/evaluate shares one pipeline instance.
	restMu       sync.Mutex
	restPipeline *pipeline.Pipeline

	wsClients = &WebSocketClients{
		clients: make(map[string]*WebSocketClient),
	}
)

type WebSocketClient struct {
	conn     *websocket.Conn
	clientID string
	send     chan interface{}

	// Каждый клиент получает собственный конвейер: свой буфер, свой cooldown
	pipeline *pipeline.Pipeline
	mu       sync.Mutex
}

type WebSocketClients struct {
	mu      sync.RWMutex
	clients map[string]*WebSocketClient
	count   int32
}

type WebSocketMessage struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

type outboundMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// FramePayload is what a client sends per cycle: either pre-detected
// landmarks, or a raw frame for the external detector. The affect block is
// optional; absent means zero confidences.
type FramePayload struct {
	Landmarks      []models.Point       `json:"landmarks,omitempty"`
	Frame          string               `json:"frame,omitempty"`
	Affect         *models.AffectSignal `json:"affect,omitempty"`
	CapturedAtMs   int64                `json:"captured_at_ms,omitempty"`
	SequenceNumber int32                `json:"sequence_number,omitempty"`
}

func main() {
	httpPort := flag.String("http-port", ":8080", "HTTP port")
	grpcPort := flag.String("grpc-port", ":50051", "gRPC port")
	detectorURL := flag.String("detector-url", "localhost:9000", "Landmark detector service URL")
	flag.Parse()

	cfg := config.LoadConfig()

	log.Println("Starting...")
	log.Printf("gRPC port: %s", *grpcPort)
	log.Printf("HTTP port: %s", *httpPort)
	log.Printf("Detector service: %s", *detectorURL)
	log.Printf("Enviroment: %s", cfg.Environment)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	var err error
	pipelineConfig, err = config.LoadThresholds(cfg.ThresholdsPath)
	if err != nil {
		log.Fatalf("Invalid thresholds file: %v", err)
	}
	restPipeline = pipeline.New(pipelineConfig)

	// База данных
	if err := database.InitDB(cfg.DSN()); err != nil {
		log.Printf("Database unavailable: %v", err)
		log.Println("Continuing without persistence (sessions/events disabled)")
	} else {
		defer database.CloseDB()
	}

	// Подключение к детектору лицевых точек
	detectorClient, err = services.NewDetectorClient(*detectorURL)
	if err != nil {
		log.Printf("Detector service unavailable: %v", err)
		log.Println("Continuing without detector (landmark-only clients)")
	}

	if detectorClient != nil {
		defer detectorClient.Close()
	}

	// gRPC сервер
	grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(50*1024*1024),
		grpc.MaxSendMsgSize(50*1024*1024),
	)
	grpcHandler := handlers.NewGRPCHandler(detectorClient, pipelineConfig)
	pb.RegisterDrowsinessMonitorServer(grpcServer, grpcHandler)

	log.Println("\n Starting gRPC server...")
	go startGRPCServer(*grpcPort)

	log.Println("\n Starting HTTP server...")
	go startHTTPServer(*httpPort)

	// Ждём сигнала
	<-done
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		log.Println("Stopping gRPC server...")
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Println("Stopped")
	case <-shutdownCtx.Done():
		log.Println("Forced shutdown")
		grpcServer.Stop()
	}

	if httpServer != nil {
		httpShutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Println("Stopping HTTP server...")
		if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		} else {
			log.Println("HTTP server gracefully stopped")
		}
	}
	log.Println("Closing WebSocket connections...")
	closeAllWebSocketConnections()
	log.Println("All WebSocket connections closed...")

	log.Println("Goodbye!")
}

func startGRPCServer(grpcPort string) {
	port := grpcPort
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatalf("failed to listen on gRPC port %v", err)
	}

	log.Printf("gRPC server listening on port %s", port)
	log.Println("Waiting for gRPC connections")

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve gRPC server %v", err)
	}
}

func startHTTPServer(httpPort string) {
	port := httpPort
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", handleWebSocket)

	mux.HandleFunc("/api/evaluate", handleEvaluate)
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/metrics", handleMetrics)

	mux.HandleFunc("/api/auth/register", handlers.Register)
	mux.HandleFunc("/api/auth/login", handlers.Login)
	mux.HandleFunc("/api/auth/logout", handlers.Logout)
	mux.HandleFunc("/api/auth/me", handlers.GetCurrentUser)
	mux.HandleFunc("/api/sessions", handleSessions)
	mux.HandleFunc("/api/sessions/end", handlers.EndSession)
	mux.HandleFunc("/api/sessions/delete", handlers.DeleteSession)
	mux.HandleFunc("/api/events", handleEvents)

	httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("HTTP server listening on port %s", port)
	log.Printf("WebSocket:  ws://localhost:%s/ws", port)
	log.Printf("REST API:   http://localhost:%s/api/*", port)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}

func handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		handlers.CreateSession(w, r)
	default:
		handlers.GetSessions(w, r)
	}
}

func handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		handlers.SaveEvent(w, r)
	default:
		handlers.GetEvents(w, r)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = generateClientID()
	}

	log.Printf("WebSocket client connected: %s", clientID)

	// Структура клиента
	client := &WebSocketClient{
		conn:     conn,
		clientID: clientID,
		send:     make(chan interface{}, 256),
		pipeline: pipeline.New(pipelineConfig),
	}

	// Регистрируем клиента
	wsClients.mu.Lock()
	wsClients.clients[clientID] = client
	wsClients.mu.Unlock()
	atomic.AddInt32(&wsClients.count, 1)
	services.GetMetrics().IncrementWebSocketConnections()

	defer func() {
		// Удаляем клиента при отключении
		wsClients.mu.Lock()
		delete(wsClients.clients, clientID)
		wsClients.mu.Unlock()
		atomic.AddInt32(&wsClients.count, -1)
		services.GetMetrics().DecrementWebSocketConnections()

		conn.Close()
		log.Printf("WebSocket client disconnected: %s", clientID)
	}()

	// Запускаем цикл чтения и записи
	go writePump(client)

	// Отправляем приветственное сообщение
	welcomeMsg := outboundMessage{
		Type:      "WELCOME",
		ClientID:  clientID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"message": "Connected to Driver Monitoring Server",
			"version": "1.0",
		},
	}

	client.send <- welcomeMsg

	readPump(client)
}

// Цикл чтения из WebSocket
func readPump(client *WebSocketClient) {
	defer func() {
		client.conn.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg WebSocketMessage
		err := client.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for %s: %v", client.clientID, err)
				services.GetMetrics().IncrementWebSocketErrors()
			}
			break
		}

		services.GetMetrics().IncrementWebSocketMessages()

		// Обработка сообщений
		switch msg.Type {
		case "PING":
			client.send <- outboundMessage{
				Type:      "PONG",
				ClientID:  client.clientID,
				Timestamp: time.Now().Unix(),
			}

		case "FRAME":
			handleFrameMessage(client, msg.Payload)

		case "STOP":
			// Остановка мониторинга: сбрасываем буфер и cooldown
			client.mu.Lock()
			client.pipeline.Reset()
			client.mu.Unlock()
			client.send <- outboundMessage{
				Type:      "STOPPED",
				ClientID:  client.clientID,
				Timestamp: time.Now().Unix(),
			}

		default:
			log.Printf("Unknown message type: %s", msg.Type)
		}
	}
}

// handleFrameMessage runs one evaluation cycle for a FRAME message and
// pushes the per-cycle result (plus an ALERT message when one fires).
func handleFrameMessage(client *WebSocketClient, raw json.RawMessage) {
	metrics := services.GetMetrics()

	var payload FramePayload
	if raw != nil {
		if err := json.Unmarshal(raw, &payload); err != nil {
			log.Printf("Bad FRAME payload from %s: %v", client.clientID, err)
			metrics.IncrementWebSocketErrors()
			return
		}
	}

	affect := models.AffectSignal{}
	if payload.Affect != nil {
		affect = *payload.Affect
	}

	frame, status := resolveFrame(payload)

	var result models.CycleResult
	if status == models.StatusDetectorUnavailable {
		// Сбой внешней модели: нулевой балл и диагностика, без восстановления
		result = models.CycleResult{
			Status:         status,
			TimestampMs:    time.Now().UnixMilli(),
			SequenceNumber: payload.SequenceNumber,
		}
		metrics.IncrementErrors()
	} else {
		client.mu.Lock()
		result = client.pipeline.Process(frame, affect, time.Now())
		client.mu.Unlock()
	}

	metrics.IncrementFrames()
	if result.Status == models.StatusNoFace {
		metrics.IncrementNoFace()
	}

	client.send <- outboundMessage{
		Type:      "RESULT",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   result,
	}

	if result.Alert != nil {
		metrics.IncrementAlerts(string(result.Alert.Severity))
		log.Printf("Alert for %s: %s (%s)", client.clientID, result.Alert.Severity, result.Alert.Message)
		client.send <- outboundMessage{
			Type:      "ALERT",
			ClientID:  client.clientID,
			Timestamp: time.Now().Unix(),
			Payload:   result.Alert,
		}
	}
}

// resolveFrame turns a FRAME payload into a landmark frame, calling the
// external detector for raw frames. An empty frame means "no face".
func resolveFrame(payload FramePayload) (models.LandmarkFrame, string) {
	if len(payload.Landmarks) > 0 {
		return models.LandmarkFrame{
			Points:         payload.Landmarks,
			CapturedAtMs:   payload.CapturedAtMs,
			SequenceNumber: payload.SequenceNumber,
		}, models.StatusOK
	}

	if payload.Frame == "" {
		return models.LandmarkFrame{SequenceNumber: payload.SequenceNumber}, models.StatusNoFace
	}

	if detectorClient == nil {
		return models.LandmarkFrame{}, models.StatusDetectorUnavailable
	}

	frameData, err := base64.StdEncoding.DecodeString(payload.Frame)
	if err != nil {
		return models.LandmarkFrame{}, models.StatusDetectorUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	obs, err := detectorClient.Detect(ctx, &pb.VideoFrame{
		FrameData:      frameData,
		Timestamp:      payload.CapturedAtMs,
		SequenceNumber: payload.SequenceNumber,
	})
	if err != nil {
		log.Printf("Detector error: %v", err)
		return models.LandmarkFrame{}, models.StatusDetectorUnavailable
	}

	if !obs.FaceDetected || obs.Frame == nil {
		return models.LandmarkFrame{SequenceNumber: payload.SequenceNumber}, models.StatusNoFace
	}

	points := make([]models.Point, len(obs.Frame.Points))
	for i, p := range obs.Frame.Points {
		points[i] = models.Point{X: float64(p.GetX()), Y: float64(p.GetY()), Z: float64(p.GetZ())}
	}
	return models.LandmarkFrame{
		Points:         points,
		CapturedAtMs:   obs.Frame.CapturedAtMs,
		SequenceNumber: payload.SequenceNumber,
	}, models.StatusOK
}

// Цикл отправки в WebSocket
func writePump(client *WebSocketClient) {
	ticker := time.NewTicker(10 * time.Minute)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Обработчик REST API - одиночный цикл оценки
func handleEvaluate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Method not allowed",
		})
		return
	}

	var payload FramePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Invalid payload",
		})
		return
	}

	affect := models.AffectSignal{}
	if payload.Affect != nil {
		affect = *payload.Affect
	}

	frame, status := resolveFrame(payload)

	var result models.CycleResult
	if status == models.StatusDetectorUnavailable {
		result = models.CycleResult{
			Status:      status,
			TimestampMs: time.Now().UnixMilli(),
		}
		services.GetMetrics().IncrementErrors()
	} else {
		restMu.Lock()
		result = restPipeline.Process(frame, affect, time.Now())
		restMu.Unlock()
	}

	services.GetMetrics().IncrementFrames()
	if result.Alert != nil {
		services.GetMetrics().IncrementAlerts(string(result.Alert.Severity))
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// Обработчик REST API - Проверка здоровья
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Method not allowed",
		})
		return
	}

	wsClients.mu.RLock()
	activeClients := len(wsClients.clients)
	wsClients.mu.RUnlock()

	detectorHealthy := false
	if detectorClient != nil {
		detectorHealthy = detectorClient.HealthCheck()
	}

	metrics := services.GetMetrics()
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":          "healthy",
		"gRPC_status":     "running",
		"HTTP_status":     "running",
		"detector":        detectorHealthy,
		"active_clients":  activeClients,
		"total_processed": metrics.GetTotalFrames(),
		"total_errors":    metrics.GetTotalErrors(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

// Обработчик REST API - Метрики
func handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Method not allowed",
		})
		return
	}

	wsClients.mu.RLock()
	activeClients := len(wsClients.clients)
	wsClients.mu.RUnlock()

	metrics := services.GetMetrics()
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_frames":      metrics.GetTotalFrames(),
		"total_errors":      metrics.GetTotalErrors(),
		"no_face_frames":    metrics.GetNoFaceFrames(),
		"active_clients":    activeClients,
		"avg_latency_ms":    metrics.GetAvgLatency(),
		"alerts":            metrics.GetAlertCounts(),
		"websocket":         metrics.GetWebSocketMetrics(),
		"system_uptime_sec": int(time.Since(serverStart).Seconds()),
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}

// Генерация ID клиента
func generateClientID() string {
	return "client-" + time.Now().Format("20060102150405")
}

func closeAllWebSocketConnections() {
	wsClients.mu.Lock()
	defer wsClients.mu.Unlock()

	for clientID, client := range wsClients.clients {
		close(client.send)
		client.conn.Close()
		log.Printf("Closed connection for client: %s", clientID)
	}
	wsClients.clients = make(map[string]*WebSocketClient)
}
