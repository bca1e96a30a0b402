package logging

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{}

func (w *widget) emit() CallSite { return Caller() }

func (w widget) emitValue() CallSite { return Caller() }

func (w *widget) emitFromClosure() CallSite {
	var site CallSite
	func() { site = Caller() }()
	return site
}

var hook = func() CallSite { return caller(true, isFacilityFrame) }

func (w *widget) emitThroughHook() CallSite { return hook() }

type box[T any] struct{ v T }

func (b *box[T]) emit() CallSite { return Caller() }

func plainHelper() CallSite { return Caller() }

func TestParseFunction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pkg     string
		typ     string
		method  string
		closure bool
	}{
		{"main", "main.main", "main", "", "main", false},
		{"function", "github.com/a/b/store.Open", "github.com/a/b/store", "", "Open", false},
		{"pointer receiver", "github.com/a/b/store.(*Cache).Get", "github.com/a/b/store", "Cache", "Get", false},
		{"value receiver", "github.com/a/b/store.Cache.Len", "github.com/a/b/store", "Cache", "Len", false},
		{"closure", "github.com/a/b/store.Open.func1", "github.com/a/b/store", "", "Open", true},
		{"nested closure", "github.com/a/b/store.Open.func1.2", "github.com/a/b/store", "", "Open", true},
		{"method closure", "github.com/a/b/store.(*Cache).Get.func3", "github.com/a/b/store", "Cache", "Get", true},
		{"go wrapper", "github.com/a/b/store.Open.gowrap1", "github.com/a/b/store", "", "Open", true},
		{"defer wrapper", "github.com/a/b/store.(*Cache).Close.deferwrap1", "github.com/a/b/store", "Cache", "Close", true},
		{"generic receiver", "github.com/a/b/store.(*Set[...]).Add", "github.com/a/b/store", "Set", "Add", false},
		{"generic function", "github.com/a/b/store.Map[go.shape.int]", "github.com/a/b/store", "", "Map", false},
		{"package init", "github.com/a/b/store.init", "github.com/a/b/store", "", "ctor", false},
		{"numbered init", "github.com/a/b/store.init.0", "github.com/a/b/store", "", "ctor", true},
		{"var initializer", "github.com/a/b/store.glob..func1", "github.com/a/b/store", "", "ctor", true},
		{"escaped dot", "gopkg.in/yaml%2ev3.Marshal", "gopkg.in/yaml.v3", "", "Marshal", false},
		{"no slash", "store.(*Cache).Get", "store", "Cache", "Get", false},
		{"method value", "main.(*T).Run-fm", "main", "T", "Run", false},
		{"dotless module", "myapp/internal/worker.(*Pool).run", "myapp/internal/worker", "Pool", "run", false},
		{"empty", "", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, typ, method, closure := parseFunction(tt.input)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.method, method)
			assert.Equal(t, tt.closure, closure)
		})
	}
}

func TestUnknownSite(t *testing.T) {
	site := UnknownSite()

	assert.Equal(t, Unknown, site.Namespace)
	assert.Equal(t, Unknown, site.Type)
	assert.Equal(t, Unknown, site.FullType)
	assert.Equal(t, Unknown, site.Method)
	assert.Equal(t, UnknownLine, site.Line)
	assert.True(t, site.IsUnknown())
}

func TestTag(t *testing.T) {
	site := Tag("example.com/app/store", "Cache", "Get")

	assert.Equal(t, "example.com/app/store", site.Namespace)
	assert.Equal(t, "Cache", site.Type)
	assert.Equal(t, "example.com/app/store.Cache", site.FullType)
	assert.Equal(t, "Get", site.Method)
	assert.Equal(t, UnknownLine, site.Line)
	assert.False(t, site.IsUnknown())
}

func TestTag_EmptyNames(t *testing.T) {
	site := Tag("", "", "")

	assert.Equal(t, Unknown, site.Namespace)
	assert.Empty(t, site.Type)
	assert.Empty(t, site.FullType)
	assert.Equal(t, Unknown, site.Method)
}

func TestCaller_TestFunction(t *testing.T) {
	_, _, line, _ := runtime.Caller(0)
	site := Caller()

	assert.Equal(t, "TestCaller_TestFunction", site.Method)
	assert.Empty(t, site.Type)
	assert.True(t, strings.HasSuffix(site.Namespace, "internal/logging"))
	assert.Equal(t, line+1, site.Line)
	assert.False(t, site.Closure)
}

func TestCaller_Methods(t *testing.T) {
	w := &widget{}

	site := w.emit()
	assert.Equal(t, "widget", site.Type)
	assert.Equal(t, "emit", site.Method)
	assert.Equal(t, site.Namespace+".widget", site.FullType)

	site = w.emitValue()
	assert.Equal(t, "widget", site.Type)
	assert.Equal(t, "emitValue", site.Method)
}

func TestCaller_Closure(t *testing.T) {
	site := (&widget{}).emitFromClosure()

	assert.Equal(t, "widget", site.Type)
	assert.Equal(t, "emitFromClosure", site.Method)
	assert.True(t, site.Closure)
}

func TestCaller_ClosureBorrowsDeclaringType(t *testing.T) {
	site := (&widget{}).emitThroughHook()

	assert.Equal(t, "ctor", site.Method)
	assert.True(t, site.Closure)
	assert.Equal(t, "widget", site.Type)
}

func TestCaller_GenericReceiver(t *testing.T) {
	site := (&box[int]{}).emit()

	assert.Equal(t, "box", site.Type)
	assert.Equal(t, "emit", site.Method)
}

func TestCaller_PlainFunction(t *testing.T) {
	site := plainHelper()

	assert.Empty(t, site.Type)
	assert.Empty(t, site.FullType)
	assert.Equal(t, "plainHelper", site.Method)
}

func TestResolve(t *testing.T) {
	site := Resolve(0)
	assert.Equal(t, "TestResolve", site.Method)

	outer := func() CallSite { return Resolve(1) }
	site = outer()
	assert.Equal(t, "TestResolve", site.Method)
	assert.False(t, site.Closure)
}

func TestResolve_BeyondStack(t *testing.T) {
	site := Resolve(10000)
	assert.True(t, site.IsUnknown())
}

func TestBorrowDeclaringType(t *testing.T) {
	closure := CallSite{Namespace: "example.com/app", Method: "Run", Closure: true, Line: 3}
	next := runtime.Frame{Function: "example.com/app.(*Server).Run"}

	got := borrowDeclaringType(closure, next)
	assert.Equal(t, "Server", got.Type)
	assert.Equal(t, "example.com/app.Server", got.FullType)

	notClosure := CallSite{Namespace: "example.com/app", Method: "Run"}
	assert.Equal(t, notClosure, borrowDeclaringType(notClosure, next))
}

func TestIsFacilityFrame(t *testing.T) {
	site := Caller()
	require.NotEqual(t, Unknown, site.Method)

	assert.False(t, isFacilityFrame(runtime.Frame{Function: "main.main", File: "/src/app/main.go"}))
}

func withStdLayout(t *testing.T, src, module string) {
	t.Helper()
	oldSrc, oldModule := stdSrc, mainModule
	stdSrc, mainModule = src, module
	t.Cleanup(func() { stdSrc, mainModule = oldSrc, oldModule })
}

func TestIsFacilityOrStdFrame(t *testing.T) {
	withStdLayout(t, "/usr/local/go/src", "")

	tests := []struct {
		name  string
		frame runtime.Frame
		skip  bool
	}{
		{"fmt", runtime.Frame{Function: "fmt.Fprintln", File: "/usr/local/go/src/fmt/print.go"}, true},
		{"internal std", runtime.Frame{Function: "internal/poll.(*FD).Write", File: "/usr/local/go/src/internal/poll/fd.go"}, true},
		{"main", runtime.Frame{Function: "main.main", File: "/src/app/main.go"}, false},
		{"dotted module", runtime.Frame{Function: "github.com/a/b.Run", File: "/src/b/run.go"}, false},
		{"dotless module", runtime.Frame{Function: "myapp/internal/worker.(*Pool).run", File: "/src/myapp/internal/worker/pool.go"}, false},
		{"trimmed std", runtime.Frame{Function: "fmt.Fprintln", File: "fmt/print.go"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.skip, isFacilityOrStdFrame(tt.frame))
		})
	}
}

func TestStdSrc_MatchesRealFrames(t *testing.T) {
	if stdSrc == "" {
		t.Skip("binary built with trimmed paths")
	}

	pcs := make([]uintptr, maxFrames)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(1, pcs)])
	var sawTesting bool
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "testing.") {
			sawTesting = true
			assert.True(t, isStdFrame(frame), frame.File)
		}
		if strings.HasSuffix(frame.Function, "TestStdSrc_MatchesRealFrames") {
			assert.False(t, isStdFrame(frame))
		}
		if !more {
			break
		}
	}
	assert.True(t, sawTesting)
}

func TestIsStdFrame_MainModuleWithTrimmedPaths(t *testing.T) {
	withStdLayout(t, "", "myapp")

	assert.False(t, isStdFrame(runtime.Frame{Function: "myapp/internal/worker.(*Pool).run", File: "myapp/internal/worker/pool.go"}))
	assert.False(t, isStdFrame(runtime.Frame{Function: "myapp.Run", File: "myapp/run.go"}))
	assert.True(t, isStdFrame(runtime.Frame{Function: "log.(*Logger).Output", File: "log/log.go"}))
	assert.True(t, isStdFrame(runtime.Frame{Function: "myapplication/x.Run", File: "myapplication/x/run.go"}))
}
