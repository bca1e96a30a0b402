package logging

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"runtime"
	"runtime/debug"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Innermost follows the errors.Unwrap chain of err and returns its last link.
func Innermost(err error) error {
	for err != nil {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// FormatException renders the innermost cause of err as
// "<type>: <message> \n<stack>", where type is the unqualified type name. The stack is the deepest pkg/errors stack
// trace in the chain, or the current goroutine's stack when there is none.
func FormatException(err error) string {
	if err == nil {
		return ""
	}
	inner := Innermost(err)
	return fmt.Sprintf("%s: %s \n%s", typeName(inner), inner.Error(), stackOf(err))
}

// typeName returns the unqualified name of v's type, without pointers.
func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

func stackOf(err error) string {
	var deepest stackTracer
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest != nil {
		return strings.TrimPrefix(fmt.Sprintf("%+v", deepest.StackTrace()), "\n")
	}
	return string(debug.Stack())
}

// PrintException logs the innermost cause of err with its stack trace at
// SeverityError. A nil err is ignored.
func (l *Logger) PrintException(err error) {
	l.printException(err, isFacilityFrame)
}

func (l *Logger) printException(err error, skipFrame func(runtime.Frame) bool) {
	if err == nil {
		return
	}
	l.log(SeverityError, FormatException(err), nil, skipFrame)
}

// HandlePanic reports a panic through PrintException and panics again with
// the same value. It must be deferred directly:
//
//	defer logger.HandlePanic()
func (l *Logger) HandlePanic() {
	if r := recover(); r != nil {
		// The runtime's panic frames sit between here and the panicking function.
		l.printException(panicError(r), isFacilityOrStdFrame)
		panic(r)
	}
}

// Go runs fn in a new goroutine whose panics are reported before they
// crash the process.
func (l *Logger) Go(fn func()) {
	go func() {
		defer l.HandlePanic()
		fn()
	}()
}

// panicError converts a recovered value to an error that carries the stack
// of the panicking goroutine.
func panicError(r interface{}) error {
	err, ok := r.(error)
	if !ok {
		err = &PanicError{Value: r}
	}
	return pkgerrors.WithStack(err)
}
