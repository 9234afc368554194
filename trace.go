package kopyt

import "github.com/juju/loggo"

// tracer emits entry/exit trace lines for top-level parse operations
// through a loggo logger, mirroring the way the lexer's own
// production pipeline surfaces diagnostics. It is a thin wrapper
// rather than a direct *loggo.Logger field so call sites never pay
// for formatting when tracing is at its default level.
type tracer struct {
	log loggo.Logger
}

var defaultTracer = &tracer{log: loggo.GetLogger("kopyt.parser")}

func (t *tracer) enter(rule string) {
	t.log.Tracef("enter %s", rule)
}

func (t *tracer) exit(rule string) {
	t.log.Tracef("exit %s", rule)
}
