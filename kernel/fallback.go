package kernel

import "go.uber.org/zap"

// Router is the terminal handler for unmatched signals. It acknowledges
// the signal on behalf of a future intelligence layer and does nothing
// else: no graph mutation, no file or process operations. Unmatched
// intents are observably routed rather than silently dropped.
type Router struct {
	log *zap.SugaredLogger
}

// NewRouter creates a fallback router.
func NewRouter(log *zap.SugaredLogger) *Router {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Router{log: log}
}

// Route records that signal was forwarded to the stub intelligence
// layer and returns the acknowledgement text.
func (r *Router) Route(signal string) string {
	r.log.Infow("no edge matched, routing to intelligence layer", "signal", signal)
	return "Signal '" + signal + "' buffered for intelligence layer."
}
