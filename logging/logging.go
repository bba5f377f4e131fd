// Package logging is a small wrapper around zap, trimmed down from the
// teacher's full logging package to the handful of methods the image
// pipeline core's diagnostic hooks actually call.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger is the subset of the teacher's logging.Logger this module needs:
// leveled, printf-style diagnostics with no structured fields, no network
// appender, and no cloud config.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (z *zapLogger) Debugf(template string, args ...interface{}) { z.sugar.Debugf(template, args...) }
func (z *zapLogger) Infof(template string, args ...interface{})  { z.sugar.Infof(template, args...) }
func (z *zapLogger) Warnf(template string, args ...interface{})  { z.sugar.Warnf(template, args...) }
func (z *zapLogger) Errorf(template string, args ...interface{}) { z.sugar.Errorf(template, args...) }

// NewLogger returns a production-configured Logger named name.
func NewLogger(name string) Logger {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return &zapLogger{sugar: base.Named(name).Sugar()}
}

// NewTestLogger returns a Logger that writes through testing.TB's log
// output, for use in _test.go files that want to observe diagnostic lines.
func NewTestLogger(tb testing.TB) Logger {
	return &zapLogger{sugar: zaptest.NewLogger(tb).Sugar()}
}
