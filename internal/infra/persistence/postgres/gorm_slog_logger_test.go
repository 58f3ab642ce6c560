package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"nutria/config"
	logs "nutria/internal/infra/log"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = 100 * time.Millisecond

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg).(*gormSlogLogger)
	l.now = func() time.Time { return time.Unix(100, 0) }

	return l
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 3 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	begin := time.Unix(100, 0)

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "failure", begin: begin, err: assert.AnError, want: "GORM query failed"},
		{name: "missing row is quiet", begin: begin, err: gorm.ErrRecordNotFound, wantNot: "GORM"},
		{name: "slow query", begin: begin.Add(-time.Second), want: "GORM slow query"},
		{name: "fast query hidden outside debug", begin: begin, wantNot: "GORM"},
		{name: "fast query in debug", debug: true, begin: begin, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn(`SELECT * FROM "products"`), tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
				assert.Contains(t, buf.String(), "products")
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newTestGormLogger(&base, false)
	ctx := logs.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With("request_id", "r-1"))

	l.Trace(ctx, time.Unix(100, 0), sqlFn("SELECT 1"), assert.AnError)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=r-1")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Unix(0, 0), sqlFn("SELECT 1"), assert.AnError)
	silent.Error(context.Background(), "dropped %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, buf.String(), "pool busy")
}
