package intake

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"uconn.dev/tracecheck/tracecid"
)

func TestMemStore(t *testing.T) {
	st := NewMemStore()
	if st.Has("checker.log") {
		t.Fatalf("Has on empty store")
	}
	if _, err := st.Get("checker.log"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.Put("", []byte("x")); err != ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	body := []byte("connected,peerA\n")
	id, err := st.Put("checker.log", body)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if id != tracecid.Fingerprint(body) {
		t.Fatalf("Put digest mismatch: %s", id)
	}
	got, err := st.Get("checker.log")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(body) {
		t.Fatalf("Get returned %q", got)
	}
}

func TestIntake_GRPCRoundTrip(t *testing.T) {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterIntakeServer(srv, &Server{Store: NewMemStore()})

	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	defer cc.Close()

	client := &Client{cc: cc, client: NewIntakeClient(cc), Timeout: 2 * time.Second}

	body := []byte("incoming,/ip4/10.0.0.2/tcp/9000,listening\n")
	id, err := client.Put("checker.log", body)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if id != tracecid.Fingerprint(body) {
		t.Fatalf("digest mismatch: %s", id)
	}

	if !client.Has("checker.log") {
		t.Fatalf("Has: expected true")
	}
	if client.Has("server.log") {
		t.Fatalf("Has: expected false for unknown name")
	}

	got, err := client.Get("checker.log")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(body) {
		t.Fatalf("Get returned %q", got)
	}

	if _, err := client.Get("server.log"); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := client.Put("", []byte("x")); err != ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}
