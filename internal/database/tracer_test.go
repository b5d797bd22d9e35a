package database

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

func TestSlowQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tracer := newSlowQueryTracer(&logger, 100*time.Millisecond)
	tracer.now = func() time.Time { return clock }

	tests := []struct {
		name    string
		elapsed time.Duration
		logged  bool
	}{
		{"fast", 20 * time.Millisecond, false},
		{"at threshold", 100 * time.Millisecond, true},
		{"slow", time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
			clock = clock.Add(tt.elapsed)
			tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

			out := buf.String()
			if got := strings.Contains(out, "slow query"); got != tt.logged {
				t.Fatalf("logged = %v, want %v (%s)", got, tt.logged, out)
			}
			if tt.logged && !strings.Contains(out, "SELECT 1") {
				t.Fatalf("log lacks sql: %s", out)
			}
		})
	}
}

func TestSlowQueryTracerWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	tracer := newSlowQueryTracer(&logger, time.Nanosecond)

	tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	if buf.Len() != 0 {
		t.Fatalf("unexpected log: %s", buf.String())
	}
}

type recordingTracer struct {
	starts, ends int
}

func (r *recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	r.starts++
	return ctx
}

func (r *recordingTracer) TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData) {
	r.ends++
}

func TestMultiTracerFansOut(t *testing.T) {
	a, b := &recordingTracer{}, &recordingTracer{}
	mt := &multiTracer{tracers: []pgx.QueryTracer{a, b}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	if a.starts != 1 || a.ends != 1 || b.starts != 1 || b.ends != 1 {
		t.Fatalf("a = %+v, b = %+v", a, b)
	}
}
