package middleware

// diagnostics.go defines the sink the credential middleware reports its
// decisions to.  Authenticate never writes logs itself: production wires a
// ZapSink, tests capture events with a SinkFunc.

import (
	"go.uber.org/zap" // structured logger used by the production sink
)

// Decision names a checkpoint outcome inside Authenticate.
type Decision string

const (
	DecisionTokenFound   Decision = "token_found"   // a credential was located
	DecisionTokenMissing Decision = "token_missing" // neither cookie nor bearer header carried one
	DecisionTokenValid   Decision = "token_valid"   // verification succeeded
	DecisionTokenInvalid Decision = "token_invalid" // verification failed
)

// Credential sources reported in Event.Source.
const (
	SourceCookie = "cookie"
	SourceHeader = "header"
)

// Event describes one decision point for one request.
type Event struct {
	Decision Decision
	Source   string // SourceCookie or SourceHeader; empty when no token was found
	Path     string
	UserID   string // set on DecisionTokenValid
	Err      error  // set on DecisionTokenInvalid
}

// Sink receives diagnostic events.  Implementations must be safe for
// concurrent use since one sink serves every request.
type Sink interface {
	Record(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Record calls f(ev).
func (f SinkFunc) Record(ev Event) { f(ev) }

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Record(Event) {}

// ZapSink writes events to a zap logger.  Rejections are logged at warn level
// and the rest at debug, so a production logger only surfaces failures.
type ZapSink struct {
	Logger *zap.Logger
}

// NewZapSink returns a sink that logs under the "auth" logger name.
func NewZapSink(l *zap.Logger) ZapSink {
	return ZapSink{Logger: l.Named("auth")}
}

func (s ZapSink) Record(ev Event) {
	fields := []zap.Field{
		zap.String("decision", string(ev.Decision)),
		zap.String("path", ev.Path),
	}
	if ev.Source != "" {
		fields = append(fields, zap.String("source", ev.Source))
	}
	switch ev.Decision {
	case DecisionTokenMissing:
		s.Logger.Warn("no credentials were given", fields...)
	case DecisionTokenInvalid:
		s.Logger.Warn("token verification failed", append(fields, zap.Error(ev.Err))...)
	case DecisionTokenValid:
		s.Logger.Debug("token verified", append(fields, zap.String("user_id", ev.UserID))...)
	default:
		s.Logger.Debug("token found", fields...)
	}
}
