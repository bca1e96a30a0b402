package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDefault(t *testing.T, l *Logger) {
	t.Helper()
	prev := Default()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefault_NotNil(t *testing.T) {
	require.NotNil(t, Default())
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	prev := Default()
	SetDefault(nil)
	assert.Same(t, prev, Default())
}

func TestPackageFunctions_Degraded(t *testing.T) {
	l, console := newTestLogger(t)
	useDefault(t, l)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	Fatal("f")
	Debugf("%s", "df")
	Infof("%s", "if")
	Warnf("%s", "wf")
	Errorf("%s", "ef")
	Fatalf("%s", "ff")

	assert.Equal(t, "d\ni\nw\ne\nf\ndf\nif\nwf\nef\nff\n", console.String())
}

func TestPackageFunctions_Initialized(t *testing.T) {
	l, console := newTestLogger(t, func(o *Options) { o.Prefix = PrefixFlags{Severity: true, Method: true} })
	useDefault(t, l)

	require.NoError(t, Init("ready"))
	Warn("disk low")
	PrintException(&diskError{msg: "gone"})

	out := console.String()
	assert.Contains(t, out, "[Info] [TestPackageFunctions_Initialized] ready\n")
	assert.Contains(t, out, "[Warning] [TestPackageFunctions_Initialized] disk low\n")
	assert.Contains(t, out, "[Error] [TestPackageFunctions_Initialized] diskError: gone \n")

	require.NoError(t, Close())
}

func TestPackageHandlePanic(t *testing.T) {
	l, console := newTestLogger(t, func(o *Options) { o.Prefix = PrefixFlags{Severity: true} })
	useDefault(t, l)
	require.NoError(t, Init("ready"))
	console.Reset()

	assert.Panics(t, func() {
		defer HandlePanic()
		panic("package boom")
	})
	assert.Contains(t, console.String(), "[Error] PanicError: panic: package boom \n")

	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}
