// Package grpc implements the gRPC transport for lingodesk.
//
// The transport exposes lingodesk.v1.Support/Respond as a unary method. Messages
// travel with the "json" content-subtype, so clients send the same Utterance and
// Reply documents the HTTP transport uses. The standard grpc.health.v1 service is
// registered alongside it for load balancers and orchestrators.
package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/nadzzz/lingodesk/internal/message"
	"github.com/nadzzz/lingodesk/internal/transport"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "lingodesk.v1.Support"

// RespondMethod is the full method path of the unary Respond call.
const RespondMethod = "/" + ServiceName + "/Respond"

// Codec is the content-subtype clients must request ("application/grpc+json").
const Codec = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec marshals gRPC messages as JSON.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return Codec }

// supportServer is the service implementation contract.
type supportServer interface {
	Respond(ctx context.Context, u *message.Utterance) (*message.Reply, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*supportServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Respond", Handler: respondHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lingodesk/v1/support",
}

func respondHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(message.Utterance)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(supportServer).Respond(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RespondMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(supportServer).Respond(ctx, req.(*message.Utterance))
	}
	return interceptor(ctx, in, info, handler)
}

// service adapts a transport.Handler to supportServer.
type service struct {
	handler transport.Handler
}

func (s *service) Respond(ctx context.Context, u *message.Utterance) (*message.Reply, error) {
	if strings.TrimSpace(u.Text) == "" {
		return nil, status.Error(codes.InvalidArgument, "text must not be empty")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Source == "" {
		u.Source = "grpc"
	}
	u.Timestamp = time.Now().UTC()

	reply, err := s.handler(ctx, u)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "respond: %v", err)
	}
	return reply, nil
}

// logUnary logs every unary call with its outcome.
func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	slog.Debug("grpc call", "method", info.FullMethod, "code", status.Code(err), "duration", time.Since(start))
	return resp, err
}

// Transport implements transport.Transport over gRPC.
type Transport struct {
	port int

	mu     sync.Mutex
	server *grpc.Server
	health *grpchealth.Server
}

// New creates a new gRPC transport on the given port.
func New(port int) *Transport {
	return &Transport{port: port}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "grpc" }

// Listen starts the gRPC server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", t.port))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	slog.Info("grpc transport listening", "port", t.port)
	return t.Serve(ctx, lis, handler)
}

// Serve runs the gRPC server on lis until the context is cancelled.
func (t *Transport) Serve(ctx context.Context, lis net.Listener, handler transport.Handler) error {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary))
	server.RegisterService(&serviceDesc, &service{handler: handler})

	hs := grpchealth.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)

	t.mu.Lock()
	t.server, t.health = server, hs
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		slog.Info("grpc transport shutting down")
		hs.Shutdown()
		server.GracefulStop()
	}()

	if err := server.Serve(lis); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Close gracefully stops the gRPC server.
func (t *Transport) Close() error {
	t.mu.Lock()
	server, hs := t.server, t.health
	t.mu.Unlock()

	if hs != nil {
		hs.Shutdown()
	}
	if server != nil {
		server.GracefulStop()
	}
	return nil
}
