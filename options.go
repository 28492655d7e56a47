package forth

// Option customizes an Evaluator at construction.
type Option interface{ apply(e *Evaluator) }

// Options combines zero or more options into one; nil options are skipped.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(e *Evaluator) {
	for _, opt := range opts {
		opt.apply(e)
	}
}

type withLogfn func(mess string, args ...interface{})
type stackLimitOption int
type stackOption []int

func (logfn withLogfn) apply(e *Evaluator) {
	e.logfn = logfn
}

func (lim stackLimitOption) apply(e *Evaluator) {
	e.stack.limit = int(lim)
}

func (values stackOption) apply(e *Evaluator) {
	e.stack.values = append(e.stack.values, values...)
}
