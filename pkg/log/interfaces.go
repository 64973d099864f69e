package log

import (
	"context"
	"fmt"
	"time"
)

type Log interface {
	Log(level Level, msg string, fields ...Field)

	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Log
	WithContext(ctx context.Context) Log

	SetLevel(level Level)
	GetLevel() Level
}

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent Level = 101
)

// ParseLevel maps debug|info|warn|error|silent to a Level. Unknown names are LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Field is a key/value pair attached to an entry. Values are encoded by
// their dynamic type; anything unrecognised falls back to reflection.
type Field struct {
	Key   string
	Value any
}

func Any(key string, val any) Field                { return Field{key, val} }
func Bool(key string, val bool) Field              { return Field{key, val} }
func Duration(key string, val time.Duration) Field { return Field{key, val} }
func Float64(key string, val float64) Field        { return Field{key, val} }
func Int(key string, val int) Field                { return Field{key, val} }
func Int64(key string, val int64) Field            { return Field{key, val} }
func String(key string, val string) Field          { return Field{key, val} }
func Uint64(key string, val uint64) Field          { return Field{key, val} }

// Stringer logs a shape or vector by its String form.
func Stringer(key string, val fmt.Stringer) Field { return Field{key, val} }

// Error logs err under the "error" key.
func Error(err error) Field { return Field{"error", err} }
