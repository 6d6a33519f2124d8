package integration

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"DRIVER_MONITOR/go-backend/pkg/pb"
)

// testFrame builds a 68-point landmark set with open eyes and a closed
// mouth, enough for one evaluation cycle.
func testFrame(seq int32) *pb.LandmarkFrame {
	points := make([]*pb.Point, 68)
	for i := range points {
		points[i] = &pb.Point{X: float32(i), Y: 200}
	}

	// Eye contour: horizontal 4, verticals 2v, EAR = v/2.
	v := float32(0.6) // EAR 0.3
	for _, start := range []int{36, 42} {
		off := float32(start)
		points[start+0] = &pb.Point{X: off + 0, Y: 0}
		points[start+1] = &pb.Point{X: off + 1, Y: v}
		points[start+2] = &pb.Point{X: off + 3, Y: v}
		points[start+3] = &pb.Point{X: off + 4, Y: 0}
		points[start+4] = &pb.Point{X: off + 3, Y: -v}
		points[start+5] = &pb.Point{X: off + 1, Y: -v}
	}

	// Inner mouth: horizontal 6, verticals 2w, MAR = w/3.
	w := float32(0.9) // MAR 0.3
	points[60] = &pb.Point{X: 0, Y: 100}
	points[61] = &pb.Point{X: 1, Y: 100 + w}
	points[62] = &pb.Point{X: 3, Y: 100 + w}
	points[63] = &pb.Point{X: 5, Y: 100 + w}
	points[64] = &pb.Point{X: 6, Y: 100}
	points[65] = &pb.Point{X: 5, Y: 100 - w}
	points[66] = &pb.Point{X: 3, Y: 100 - w}
	points[67] = &pb.Point{X: 1, Y: 100 - w}

	return &pb.LandmarkFrame{
		Points:         points,
		CapturedAtMs:   time.Now().UnixMilli(),
		SequenceNumber: seq,
	}
}

func TestGRPCEvaluate(t *testing.T) {
	// Подключение
	conn, err := grpc.Dial("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewDrowsinessMonitorClient(conn)

	// Запрос
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := &pb.EvaluateRequest{
		Frame:        testFrame(1),
		FaceDetected: true,
		Affect: &pb.AffectSignal{
			DrowsyConfidence:   0.1,
			StressedConfidence: 0.0,
		},
	}

	// Вызов
	result, err := client.Evaluate(ctx, req)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	// Проверка
	if result == nil {
		t.Fatalf("Result is nil")
	}
	if result.Status != "ok" {
		t.Errorf("Expected status ok, got %s", result.Status)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("Score out of range: %v", result.Score)
	}

	t.Logf("Success! score=%.2f eye=%.3f mouth=%.3f", result.Score, result.EyeOpenness, result.MouthOpenness)
}

func TestGRPCEvaluateStream(t *testing.T) {
	conn, err := grpc.Dial("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewDrowsinessMonitorClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := client.EvaluateStream(ctx)
	if err != nil {
		t.Fatalf("EvaluateStream failed: %v", err)
	}

	for i := int32(1); i <= 5; i++ {
		if err := stream.Send(&pb.EvaluateRequest{Frame: testFrame(i), FaceDetected: true}); err != nil {
			t.Fatalf("Send failed: %v", err)
		}

		result, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv failed: %v", err)
		}
		if result.SequenceNumber != i {
			t.Errorf("Expected sequence %d, got %d", i, result.SequenceNumber)
		}
	}

	if err := stream.CloseSend(); err != nil {
		t.Errorf("CloseSend failed: %v", err)
	}
}

func TestGRPCHealth(t *testing.T) {
	conn, err := grpc.Dial("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewDrowsinessMonitorClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := client.Health(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	if status.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", status.Status)
	}

	t.Logf("Health: %+v", status)
}
