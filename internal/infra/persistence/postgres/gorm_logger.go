package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "nexus/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output to slog. Queries run inside a request or job log through that
// request's logger, so SQL lines carry its request_id and job_id.
type gormLogger struct {
	base  *slog.Logger
	level logger.LogLevel
}

func newGormLogger(base *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gormLogger{base: base, level: level}
}

func (l *gormLogger) from(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if reqLogger, ok := ctx.Value(deliverycontext.KeyLogger).(*slog.Logger); ok && reqLogger != nil {
			return reqLogger
		}
	}

	return l.base
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}
	l.from(ctx).Log(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries, slow queries and, in debug mode, every query.
// Missing rows and unique violations are outcomes the repositories map to domain errors.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	var level slog.Level
	msg := "GORM query"
	switch {
	case err != nil && l.level >= logger.Error && !expectedQueryError(err):
		level, msg = slog.LevelError, "GORM query failed"
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "GORM slow query"
	case l.level >= logger.Info:
		level = slog.LevelDebug
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func expectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)
}
