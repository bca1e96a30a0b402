package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// ShutdownFunc is a function called during shutdown.
// It receives a context that is cancelled if shutdown times out.
type ShutdownFunc func(ctx context.Context) error

// Lifecycle coordinates shutdown of registered components, such as closing
// the log file, and waits for termination signals.
type Lifecycle struct {
	mu            sync.Mutex
	shutdownFuncs []ShutdownFunc
	shutdownCh    chan struct{}
	doneCh        chan struct{}
	timeout       time.Duration
	shutdownOnce  sync.Once
	lastErr       error
}

// NewLifecycle creates a new lifecycle manager with the specified shutdown timeout.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	return &Lifecycle{
		shutdownCh: make(chan struct{}),
		doneCh:     make(chan struct{}),
		timeout:    timeout,
	}
}

// OnShutdown registers a function to be called during shutdown.
// Functions are called in reverse order of registration (LIFO).
func (l *Lifecycle) OnShutdown(fn ShutdownFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shutdownFuncs = append(l.shutdownFuncs, fn)
}

// WaitForSignal blocks until SIGINT or SIGTERM is received, ctx is done or
// Shutdown starts. It returns the signal, or nil in the other cases.
func (l *Lifecycle) WaitForSignal(ctx context.Context) os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		return sig
	case <-ctx.Done():
		return nil
	case <-l.shutdownCh:
		return nil
	}
}

// SignalContext returns a context cancelled on SIGINT, SIGTERM or Shutdown.
func (l *Lifecycle) SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-l.shutdownCh:
			stop()
		case <-ctx.Done():
		}
	}()
	return ctx, stop
}

// Shutdown calls all registered shutdown functions in reverse order of
// registration. Later calls return the result of the first.
func (l *Lifecycle) Shutdown() error {
	l.shutdownOnce.Do(func() {
		close(l.shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		l.mu.Lock()
		funcs := make([]ShutdownFunc, len(l.shutdownFuncs))
		copy(funcs, l.shutdownFuncs)
		l.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			if err := funcs[i](ctx); err != nil {
				l.lastErr = err
			}
		}

		close(l.doneCh)
	})

	<-l.doneCh
	return l.lastErr
}

// Done returns a channel that's closed when shutdown is complete.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.doneCh
}

// IsShuttingDown returns true if shutdown has been initiated.
func (l *Lifecycle) IsShuttingDown() bool {
	select {
	case <-l.shutdownCh:
		return true
	default:
		return false
	}
}

// Timeout returns the configured shutdown timeout.
func (l *Lifecycle) Timeout() time.Duration {
	return l.timeout
}
