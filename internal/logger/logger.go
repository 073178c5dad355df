package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu sync.RWMutex
	l  *zap.Logger
)

// Init builds the process-wide JSON logger at the given level
// ("debug", "info", "warn", "error").
func Init(level string) error {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return err
		}
		lvl = parsed
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "@timestamp"
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
	Set(zap.New(core).With(zap.String("service", "portal")))
	return nil
}

// Set replaces the process-wide logger. Tests use it with zap.NewNop().
func Set(z *zap.Logger) {
	mu.Lock()
	l = z
	mu.Unlock()
	zap.ReplaceGlobals(z)
}

func L() *zap.Logger {
	mu.RLock()
	z := l
	mu.RUnlock()
	if z == nil {
		_ = Init("info")
		return L()
	}
	return z
}

// WithSession scopes a logger to one browser session.
func WithSession(sessionID string) *zap.Logger {
	return L().With(zap.String("session_id", sessionID))
}
