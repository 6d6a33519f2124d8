package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	pb "DRIVER_MONITOR/go-backend/pkg/pb"
)

// DetectorClient talks to the external face-landmark/affect model.
// The model is a dependency whose result may arrive late or not at all;
// retry and recovery are its own responsibility, not ours.
type DetectorClient struct {
	conn   *grpc.ClientConn
	client pb.LandmarkDetectorClient
	url    string
}

func NewDetectorClient(url string) (*DetectorClient, error) {
	log.Printf("Connecting to landmark detector gRPC at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to landmark detector at %s: %s", url, err)
	}

	client := pb.NewLandmarkDetectorClient(conn)
	log.Printf("Connected to landmark detector at %s", url)

	return &DetectorClient{
		conn:   conn,
		client: client,
		url:    url,
	}, nil
}

// Detect sends one raw video frame and returns the landmark observation.
// A "no face" outcome is not an error; it comes back with FaceDetected=false.
func (dc *DetectorClient) Detect(ctx context.Context, frame *pb.VideoFrame) (*pb.LandmarkObservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	obs, err := dc.client.Detect(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("could not detect landmarks: %w", err)
	}
	return obs, nil
}

func (dc *DetectorClient) StartStream(ctx context.Context) (pb.LandmarkDetector_DetectStreamClient, error) {
	stream, err := dc.client.DetectStream(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not start detector stream: %w", err)
	}
	return stream, nil
}

func (dc *DetectorClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := dc.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (dc *DetectorClient) Close() error {
	if dc.conn != nil {
		return dc.conn.Close()
	}
	return nil
}
