package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestPoolReusesConnection(t *testing.T) {
	p := NewPool(WithKeepalive(0))
	defer p.Close()

	a, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	b, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := p.GetConnection("localhost:50052")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestPoolReplacesClosedConnection(t *testing.T) {
	p := NewPool()
	defer p.Close()

	a, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	require.NoError(t, a.Close())
	assert.Equal(t, connectivity.Shutdown, a.GetState())

	b, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestPoolClose(t *testing.T) {
	p := NewPool()
	conn, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.Equal(t, connectivity.Shutdown, conn.GetState())
}

func TestPoolInterceptor(t *testing.T) {
	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, health.NewServer())
	go func() { _ = s.Serve(lis) }()
	defer s.Stop()

	var methods []string
	p := NewPool(WithKeepalive(0), WithInterceptor(
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			methods = append(methods, method)
			return invoker(ctx, method, req, reply, cc, opts...)
		},
	))
	defer p.Close()

	conn, err := p.GetConnection("passthrough:///bufnet", grpc.WithContextDialer(
		func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) },
	))
	require.NoError(t, err)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	assert.Equal(t, []string{healthpb.Health_Check_FullMethodName}, methods)
}
