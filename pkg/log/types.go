package log

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or anything else for development
	Encoding     string // json or console
	ColorEnabled bool
}

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"

	modeProduction   = "production"
	encodingConsole  = "console"
	requestIDLogName = "request_id"
)
