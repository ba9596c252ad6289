package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"forest-ca/internal/server"
	"forest-ca/pkg/forest"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(server.SetupRoutes(server.NewConfig()))
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestRandomFieldAndStep(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	s := forest.Seeding{Size: 12, Grass: 40, Trees: 30, Flames: 3, Seed: 9}
	f, err := c.RandomField(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := s.Field()
	if !slices.Equal(f, want) {
		t.Fatal("remote field differs from local generation")
	}

	next, err := c.Step(ctx, f)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(next, forest.Step(f)) {
		t.Fatal("remote step differs from forest.Step")
	}

	counts, err := c.Census(ctx, next)
	if err != nil {
		t.Fatal(err)
	}
	if counts != forest.Census(next) {
		t.Fatalf("census = %+v", counts)
	}
}

func TestStatusErrorCarriesServerMessage(t *testing.T) {
	c := newTestClient(t)
	_, err := c.RandomField(context.Background(), forest.Seeding{Size: 2, Grass: 5})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusBadRequest || se.Message == "" {
		t.Fatalf("status error = %+v", se)
	}
}

func TestStepRejectsMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"age":0,"cell_type":"Empty","propagation":1},{"age":0,"cell_type":"Empty","propagation":1}]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Step(context.Background(), forest.EmptyField(1))
	if !errors.Is(err, forest.ErrNotSquare) {
		t.Fatalf("err = %v, want ErrNotSquare", err)
	}
}

func TestContextCancellation(t *testing.T) {
	c := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Step(ctx, forest.EmptyField(2)); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
