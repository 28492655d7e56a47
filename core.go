package forth

import (
	"fmt"

	"github.com/jcorbin/wordforth/internal/logio"
)

func (e *Evaluator) halt(err error) {
	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		if e.logfn != nil {
			e.logf("#", "halt error: %v", err)
			e.dump(&logio.Writer{Logf: e.logfn, Prefix: "# "})
		}
	}()

	panic(haltError{err})
}

func (e *Evaluator) haltif(err error) {
	if err != nil {
		e.halt(err)
	}
}

// haltErr extracts the error carried by a halt panic.
func haltErr(e interface{}) (error, bool) {
	halt, ok := e.(haltError)
	return halt.error, ok
}

// haltWord halts with err attributed to the input token being processed.
func (e *Evaluator) haltWord(err error) {
	e.halt(&WordError{Word: e.word, Err: err})
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
