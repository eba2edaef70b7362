package logger

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
)

// Init builds the process logger. Production gets JSON output at info level,
// everything else a console encoder at debug level.
func Init(env string) {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	case "test":
		mu.Lock()
		sugar = zap.NewNop().Sugar()
		mu.Unlock()
		return
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Printf("logger init failed, falling back to nop: %v\n", err)
		return
	}

	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Sync() {
	_ = get().Sync()
}

func Debug(msg string, args ...any) { get().Debugw(msg, pairs(args)...) }
func Info(msg string, args ...any)  { get().Infow(msg, pairs(args)...) }
func Warn(msg string, args ...any)  { get().Warnw(msg, pairs(args)...) }
func Error(msg string, args ...any) { get().Errorw(msg, pairs(args)...) }
func Fatal(msg string, args ...any) { get().Fatalw(msg, pairs(args)...) }

// With returns a child logger carrying the given key/values.
func With(args ...any) *zap.SugaredLogger {
	return get().With(pairs(args)...)
}

// pairs turns loose call-site args into key/value pairs. Callers often pass
// a bare error or value, so anything that is not in key position under a
// string key is logged as "error" (for errors) or "arg".
func pairs(args []any) []any {
	if len(args) == 0 {
		return nil
	}

	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); i++ {
		key, isKey := args[i].(string)
		if isKey && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i++
			continue
		}
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err)
			continue
		}
		out = append(out, "arg", args[i])
	}
	return out
}
