// Copyright 2025 The Trustplane Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides leveled, structured logging on top of zap. Loggers
// carry context as key value pairs, in the same calling convention as the
// serrors package.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger describes the logger interface.
type Logger interface {
	// New returns a child logger with the given context attached to every
	// entry it emits.
	New(ctx ...interface{}) Logger
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	// Enabled reports whether entries at the given level are emitted.
	Enabled(lvl Level) bool
}

// Level is the log level.
type Level = zapcore.Level

// The different log levels.
const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	ErrorLevel = zapcore.ErrorLevel
)

var root = newLogger(zap.NewNop())

// Setup instantiates the root logger at the given level. It must be called
// before the first logger is used; typically by the hosting application's
// initialization code.
func Setup(lvl string) error {
	level, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	root = newLogger(logger)
	return nil
}

// Root returns the root logger. It's a logger without any context.
func Root() Logger {
	return root
}

// New creates a logger with the given context attached to the root logger.
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

// Discard sets the root logger up to discard all log entries. This is useful
// for testing.
func Discard() {
	root = newLogger(zap.NewNop())
}

type logger struct {
	logger *zap.Logger
}

func newLogger(l *zap.Logger) *logger {
	return &logger{logger: l}
}

func (l *logger) New(ctx ...interface{}) Logger {
	return newLogger(l.logger.With(fields(ctx)...))
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.logger.Debug(msg, fields(ctx)...)
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	l.logger.Info(msg, fields(ctx)...)
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	l.logger.Error(msg, fields(ctx)...)
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(lvl)
}

func fields(ctx []interface{}) []zap.Field {
	fs := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		fs = append(fs, zap.Any(fmt.Sprint(ctx[i]), ctx[i+1]))
	}
	return fs
}
