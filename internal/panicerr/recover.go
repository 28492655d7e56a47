// Package panicerr converts panics within a function into ordinary error
// returns.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover calls f, returning any panic that it raises as an error.
//
// When halted is non-nil, it is offered each panic value first; a value it
// accepts is returned as the error it extracts, without a stack trace. Any
// other panic is returned as an error carrying the stack trace where it was
// recovered.
func Recover(name string, halted func(e interface{}) (error, bool), f func()) (err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if halted != nil {
			if herr, ok := halted(e); ok {
				err = herr
				return
			}
		}
		err = panicError{name, e, debug.Stack()}
	}()
	f()
	return nil
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns the stack trace captured with a recovered panic, or ""
// if err is not one.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
