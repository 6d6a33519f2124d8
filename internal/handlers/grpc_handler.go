package handlers

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"DRIVER_MONITOR/go-backend/internal/models"
	"DRIVER_MONITOR/go-backend/internal/pipeline"
	"DRIVER_MONITOR/go-backend/internal/services"
	pb "DRIVER_MONITOR/go-backend/pkg/pb"
)

type GRPCHandler struct {
	pb.UnimplementedDrowsinessMonitorServer
	detector *services.DetectorClient
	metrics  *services.Metrics
	pipeCfg  pipeline.Config

	// Unary Evaluate calls share one pipeline instance (single-camera
	// deployments); each EvaluateStream gets its own.
	mu   sync.Mutex
	pipe *pipeline.Pipeline
}

func NewGRPCHandler(detector *services.DetectorClient, pipeCfg pipeline.Config) *GRPCHandler {
	return &GRPCHandler{
		detector: detector,
		metrics:  services.GetMetrics(),
		pipeCfg:  pipeCfg,
		pipe:     pipeline.New(pipeCfg),
	}
}

func frameFromPB(frame *pb.LandmarkFrame) models.LandmarkFrame {
	if frame == nil {
		return models.LandmarkFrame{}
	}
	points := make([]models.Point, len(frame.Points))
	for i, p := range frame.Points {
		points[i] = models.Point{X: float64(p.GetX()), Y: float64(p.GetY()), Z: float64(p.GetZ())}
	}
	return models.LandmarkFrame{
		Points:         points,
		CapturedAtMs:   frame.CapturedAtMs,
		SequenceNumber: frame.SequenceNumber,
	}
}

func affectFromPB(affect *pb.AffectSignal) models.AffectSignal {
	// Absent affect collaborator means zero confidences.
	if affect == nil {
		return models.AffectSignal{}
	}
	return models.AffectSignal{
		DrowsyConfidence:   float64(affect.DrowsyConfidence),
		StressedConfidence: float64(affect.StressedConfidence),
	}
}

func resultToPB(result models.CycleResult) *pb.CycleResult {
	out := &pb.CycleResult{
		Score:           result.Score,
		EyeOpenness:     result.Metrics.EyeOpenness,
		MouthOpenness:   result.Metrics.MouthOpenness,
		ClosureFraction: result.Metrics.ClosureFraction,
		Status:          result.Status,
		TimestampMs:     result.TimestampMs,
		SequenceNumber:  result.SequenceNumber,
	}
	if result.Alert != nil {
		out.Alert = &pb.AlertEvent{
			Id:          result.Alert.ID,
			Message:     result.Alert.Message,
			Severity:    string(result.Alert.Severity),
			EmittedAtMs: result.Alert.EmittedAt.UnixMilli(),
		}
	}
	return out
}

func (h *GRPCHandler) Evaluate(ctx context.Context, req *pb.EvaluateRequest) (*pb.CycleResult, error) {
	start := time.Now()

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	frame := models.LandmarkFrame{}
	if req.FaceDetected {
		frame = frameFromPB(req.Frame)
	}
	affect := affectFromPB(req.Affect)

	h.mu.Lock()
	result := h.pipe.Process(frame, affect, time.Now())
	h.mu.Unlock()

	h.metrics.IncrementFrames()
	if result.Status == models.StatusNoFace {
		h.metrics.IncrementNoFace()
	}
	if result.Alert != nil {
		h.metrics.IncrementAlerts(string(result.Alert.Severity))
		log.Printf("Frame #%d: %s alert emitted, score %.1f", result.SequenceNumber, result.Alert.Severity, result.Score)
	}
	h.metrics.RecordLatency(time.Since(start))

	return resultToPB(result), nil
}

func (h *GRPCHandler) EvaluateStream(stream pb.DrowsinessMonitor_EvaluateStreamServer) error {
	log.Println("Evaluate stream started")

	// Own buffer, own cooldown state: streams never share pipeline state.
	pipe := pipeline.New(h.pipeCfg)

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			log.Println("Evaluate stream completed")
			return nil
		}
		if err != nil {
			log.Printf("Recv error: %v", err)
			return status.Error(codes.Internal, err.Error())
		}

		frame := models.LandmarkFrame{}
		if req.FaceDetected {
			frame = frameFromPB(req.Frame)
		}

		result := pipe.Process(frame, affectFromPB(req.Affect), time.Now())

		h.metrics.IncrementFrames()
		if result.Alert != nil {
			h.metrics.IncrementAlerts(string(result.Alert.Severity))
		}

		if err := stream.Send(resultToPB(result)); err != nil {
			log.Printf("Send error: %v", err)
			return status.Error(codes.Internal, err.Error())
		}
	}
}

func (h *GRPCHandler) Health(ctx context.Context, _ *pb.Empty) (*pb.HealthStatus, error) {
	detectorHealthy := false
	if h.detector != nil {
		detectorHealthy = h.detector.HealthCheck()
	}

	log.Printf("Health: Detector=%v, Clients=%d", detectorHealthy, h.metrics.GetActiveClients())

	return &pb.HealthStatus{
		Status:          "healthy",
		DetectorService: detectorHealthy,
		ActiveClients:   int32(h.metrics.GetActiveClients()),
	}, nil
}
