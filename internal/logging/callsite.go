package logging

import (
	"path"
	"path/filepath"
	"reflect"
	"runtime"
	"runtime/debug"
	"strings"
)

// Unknown is the name rendered for a call-site part that could not be resolved.
const Unknown = "???"

// UnknownLine is the line number of an unresolved call site. It renders as Unknown.
const UnknownLine = 0

// maxFrames bounds the stack walk of Caller.
const maxFrames = 32

// CallSite identifies where a log line was emitted.
//
// Type is empty for plain functions, which have no declaring type. FullType
// is Namespace and Type joined by a dot.
type CallSite struct {
	Namespace string
	Type      string
	FullType  string
	Method    string
	Line      int
	// Closure is set when the frame was an anonymous function and Method
	// names the function that encloses it.
	Closure bool
}

// UnknownSite returns the call site used when no frame is available.
func UnknownSite() CallSite {
	return CallSite{
		Namespace: Unknown,
		Type:      Unknown,
		FullType:  Unknown,
		Method:    Unknown,
		Line:      UnknownLine,
	}
}

// IsUnknown reports whether c is the unresolved sentinel.
func (c CallSite) IsUnknown() bool {
	return c == UnknownSite()
}

// Tag builds a call site from explicit names without walking the stack.
// Empty names become Unknown; the line is always UnknownLine.
func Tag(namespace, typ, method string) CallSite {
	site := CallSite{
		Namespace: orUnknown(namespace),
		Type:      typ,
		Method:    orUnknown(method),
		Line:      UnknownLine,
	}
	site.FullType = joinType(site.Namespace, typ)
	return site
}

// Resolve returns the call site skip frames above the caller of Resolve.
// Resolve(0) describes the function that called Resolve. A frame that does
// not exist yields UnknownSite.
func Resolve(skip int) CallSite {
	return resolve(skip)
}

// Caller returns the call site of the first frame outside this package,
// however deep the call into the package was. Test files of this package
// count as outside.
func Caller() CallSite {
	return caller(false, isFacilityFrame)
}

func resolve(skip int) CallSite {
	if skip < 0 {
		skip = 0
	}
	pcs := make([]uintptr, maxFrames)
	// Skip runtime.Callers, resolve and the public wrapper.
	n := runtime.Callers(skip+3, pcs)
	if n == 0 {
		return UnknownSite()
	}
	frames := runtime.CallersFrames(pcs[:n])
	frame, _ := frames.Next()
	return siteFromFrame(frame)
}

// caller walks the stack and returns the first frame for which skipFrame
// is false.
func caller(borrowType bool, skipFrame func(runtime.Frame) bool) CallSite {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return UnknownSite()
	}
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !skipFrame(frame) {
			site := siteFromFrame(frame)
			if borrowType && more {
				next, _ := frames.Next()
				site = borrowDeclaringType(site, next)
			}
			return site
		}
		if !more {
			return UnknownSite()
		}
	}
}

// borrowDeclaringType gives a closure without a declaring type the type of
// the frame that called it.
func borrowDeclaringType(site CallSite, next runtime.Frame) CallSite {
	if !site.Closure || site.Type != "" || next.Function == "" {
		return site
	}
	_, typ, _, _ := parseFunction(next.Function)
	if typ == "" {
		return site
	}
	site.Type = typ
	site.FullType = joinType(site.Namespace, typ)
	return site
}

var facilityDir = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}()

// isFacilityFrame reports whether frame belongs to a non-test file of this package.
func isFacilityFrame(frame runtime.Frame) bool {
	if facilityDir == "" || frame.File == "" {
		return strings.HasPrefix(frame.Function, facilityPackage+".")
	}
	return filepath.Dir(frame.File) == facilityDir && !strings.HasSuffix(frame.File, "_test.go")
}

// isFacilityOrStdFrame additionally skips standard library frames, so lines
// arriving through fmt, log or io report the code that printed them.
func isFacilityOrStdFrame(frame runtime.Frame) bool {
	return isFacilityFrame(frame) || isStdFrame(frame)
}

// isStdFrame reports whether frame belongs to the standard library. Frames
// of package main and of the main module never do.
func isStdFrame(frame runtime.Frame) bool {
	pkg, _, _, _ := parseFunction(frame.Function)
	if pkg == "main" || inModule(pkg, mainModule) {
		return false
	}
	if stdSrc != "" && filepath.IsAbs(frame.File) {
		return strings.HasPrefix(filepath.ToSlash(frame.File), stdSrc+"/")
	}
	// Builds with -trimpath record relative files; fall back to the shape
	// of standard import paths, whose first element has no dot.
	first := pkg
	if i := strings.Index(pkg, "/"); i >= 0 {
		first = pkg[:i]
	}
	return !strings.Contains(first, ".")
}

func inModule(pkg, module string) bool {
	if module == "" {
		return false
	}
	return pkg == module || strings.HasPrefix(pkg, module+"/")
}

// stdSrc is the standard library source directory as recorded in this
// binary's frames, or empty when paths were trimmed.
var stdSrc = func() string {
	fn := runtime.FuncForPC(reflect.ValueOf(strings.Index).Pointer())
	if fn == nil {
		return ""
	}
	file, _ := fn.FileLine(fn.Entry())
	file = filepath.ToSlash(file)
	if !path.IsAbs(file) && !filepath.IsAbs(file) {
		return ""
	}
	// <src>/strings/strings.go
	return path.Dir(path.Dir(file))
}()

var mainModule = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return info.Main.Path
}()

var facilityPackage = func() string {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(1, pcs)
	frame, _ := runtime.CallersFrames(pcs[:n]).Next()
	pkg, _, _, _ := parseFunction(frame.Function)
	return pkg
}()

func siteFromFrame(frame runtime.Frame) CallSite {
	if frame.Function == "" {
		return UnknownSite()
	}
	pkg, typ, method, closure := parseFunction(frame.Function)
	line := frame.Line
	if line <= 0 {
		line = UnknownLine
	}
	site := CallSite{
		Namespace: orUnknown(pkg),
		Type:      typ,
		Method:    orUnknown(method),
		Line:      line,
		Closure:   closure,
	}
	site.FullType = joinType(site.Namespace, typ)
	return site
}

// parseFunction splits a runtime function name such as
// "example.com/app/store.(*Cache[...]).Get.func1" into its package path,
// receiver type, method and whether the frame was a closure.
func parseFunction(name string) (pkg, typ, method string, closure bool) {
	if name == "" {
		return "", "", "", false
	}
	name = stripTypeParams(name)

	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return "", "", name, false
	}
	pkg = strings.ReplaceAll(name[:slash+1+dot], "%2e", ".")
	parts := strings.Split(name[slash+1+dot+1:], ".")

	// Package-level variable initializers: glob..func1
	if len(parts) > 1 && parts[0] == "glob" && parts[1] == "" {
		return pkg, "", "ctor", true
	}

	switch {
	case strings.HasPrefix(parts[0], "("):
		typ = strings.TrimLeft(strings.TrimRight(parts[0], ")"), "(*")
		parts = parts[1:]
	case len(parts) > 1 && !isClosureSegment(parts[1]):
		typ = parts[0]
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return pkg, typ, "", false
	}

	method = strings.TrimSuffix(parts[0], "-fm")
	closure = len(parts) > 1
	if method == "init" {
		method = "ctor"
	}
	return pkg, typ, method, closure
}

// isClosureSegment matches the suffixes the compiler gives anonymous
// functions: func1, 1, gowrap1, deferwrap1.
func isClosureSegment(s string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stripTypeParams(name string) string {
	if !strings.Contains(name, "[") {
		return name
	}
	var b strings.Builder
	depth := 0
	for _, r := range name {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func joinType(namespace, typ string) string {
	if typ == "" {
		return ""
	}
	if typ == Unknown || namespace == "" {
		return typ
	}
	return namespace + "." + typ
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
