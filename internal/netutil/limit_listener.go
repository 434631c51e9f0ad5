package netutil

import (
	"net"
	"sync"

	"gitlab.com/gitlab-org/shader-preview/metrics"
)

// LimitListener returns a Listener that accepts at most n simultaneous
// connections from the provided Listener. Accept blocks while every slot is
// taken. Based on https://godoc.org/golang.org/x/net/netutil
func LimitListener(listener net.Listener, n int) net.Listener {
	metrics.LimitListenerMaxConns.Set(float64(n))

	return &limitListener{
		Listener: listener,
		sem:      make(chan struct{}, n),
		done:     make(chan struct{}),
	}
}

type limitListener struct {
	net.Listener
	sem       chan struct{}
	closeOnce sync.Once     // ensures the done chan is only closed once
	done      chan struct{} // no values sent; closed when Close is called
}

// acquire returns false if the listener is closed before a slot frees up
func (l *limitListener) acquire() bool {
	metrics.LimitListenerWaitingConns.Inc()
	defer metrics.LimitListenerWaitingConns.Dec()

	select {
	case <-l.done:
		return false
	case l.sem <- struct{}{}:
		metrics.LimitListenerConcurrentConns.Inc()
		return true
	}
}

func (l *limitListener) release() {
	<-l.sem
	metrics.LimitListenerConcurrentConns.Dec()
}

func (l *limitListener) Accept() (net.Conn, error) {
	acquired := l.acquire()
	// If the semaphore isn't acquired because the listener was closed, expect
	// that this call to accept won't block, but immediately return an error.
	c, err := l.Listener.Accept()
	if err != nil {
		if acquired {
			l.release()
		}
		return nil, err
	}

	return &limitListenerConn{Conn: c, release: l.release}, nil
}

func (l *limitListener) Close() error {
	err := l.Listener.Close()
	l.closeOnce.Do(func() { close(l.done) })
	return err
}

type limitListenerConn struct {
	net.Conn
	releaseOnce sync.Once
	release     func()
}

func (c *limitListenerConn) Close() error {
	err := c.Conn.Close()
	c.releaseOnce.Do(c.release)
	return err
}
