package forth

import (
	"io"

	"github.com/jcorbin/wordforth/internal/panicerr"
)

// New creates an Evaluator whose dictionary holds only the primitive words.
func New(opts ...Option) *Evaluator {
	var e Evaluator
	e.dict.init()
	Options(opts...).apply(&e)
	if lim := e.stack.limit; lim != 0 && len(e.stack.values) > lim {
		e.stack.values = e.stack.values[:lim]
	}
	return &e
}

// Evaluate runs one line of input, returning the full stack, bottom to top,
// after it. Evaluation is atomic with respect to the stack: on any error the
// stack is left as it was before the call. Definitions completed earlier in a
// failing line are kept.
func (e *Evaluator) Evaluate(line string) ([]int, error) {
	snap := e.stack.snapshot()
	err := panicerr.Recover("evaluate", haltErr, func() {
		e.evaluate(line)
	})
	e.word = ""
	if err != nil {
		e.stack.restore(snap)
		return nil, err
	}
	return e.Stack(), nil
}

// Stack returns a copy of the current stack, bottom to top.
func (e *Evaluator) Stack() []int { return e.stack.snapshot() }

// Lookup returns the current definition of a word, case-insensitively.
func (e *Evaluator) Lookup(name string) (Definition, bool) { return e.dict.lookup(name) }

// Words returns the sorted names of every defined word.
func (e *Evaluator) Words() []string { return e.dict.names() }

// Dump writes a textual rendering of the stack and dictionary to w.
func (e *Evaluator) Dump(w io.Writer) { e.dump(w) }

// WithStackLimit bounds the stack depth; pushing past it fails with
// ErrStackOverflow. Zero means unbounded.
func WithStackLimit(limit int) Option { return stackLimitOption(limit) }

// WithStack seeds the stack, bottom to top. Seed values beyond any stack limit
// are discarded, whichever order the two options are given in.
func WithStack(values ...int) Option { return stackOption(values) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
