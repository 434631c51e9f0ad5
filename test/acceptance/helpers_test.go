package acceptance_test

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/nettest"
)

var (
	// TestHTTPClient does not follow redirects so tests can assert on them
	TestHTTPClient = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	// Use HTTP with a very short timeout to repeatedly check for the server to be
	// up.
	QuickTimeoutHTTPClient = &http.Client{
		Transport: &http.Transport{
			ResponseHeaderTimeout: 100 * time.Millisecond,
		},
	}
)

type tWriter struct {
	t *testing.T
}

func (t *tWriter) Write(b []byte) (int, error) {
	t.t.Log(string(bytes.TrimRight(b, "\r\n")))

	return len(b), nil
}

type LogCaptureBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (b *LogCaptureBuffer) Write(p []byte) (n int, err error) {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.Write(p)
}

func (b *LogCaptureBuffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.String()
}

// ListenSpec is used to point at a shader-preview http server
type ListenSpec struct {
	Type string
	Host string
	Port string
}

func supportedListeners() []ListenSpec {
	if !nettest.SupportsIPv6() {
		return ipv4Listeners
	}

	return listeners
}

func (l ListenSpec) URL(suffix string) string {
	suffix = strings.TrimPrefix(suffix, "/")

	return fmt.Sprintf("%s://%s/%s", l.Type, l.JoinHostPort(), suffix)
}

// Returns only once this spec points at a working TCP server
func (l ListenSpec) WaitUntilRequestSucceeds(done chan struct{}) error {
	timeout := 5 * time.Second
	for start := time.Now(); time.Since(start) < timeout; {
		select {
		case <-done:
			return fmt.Errorf("server has shut down already")
		default:
		}

		req, err := http.NewRequest("GET", l.URL("/"), nil)
		if err != nil {
			return err
		}

		response, err := QuickTimeoutHTTPClient.Transport.RoundTrip(req)
		if err != nil {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		response.Body.Close()

		if code := response.StatusCode; code >= 200 && code < 500 {
			return nil
		}

		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("timed out after %v waiting for listener %v", timeout, l)
}

func (l ListenSpec) JoinHostPort() string {
	return net.JoinHostPort(l.Host, l.Port)
}

type processConfig struct {
	wait      bool
	listeners []ListenSpec
	envs      []string
	extraArgs []string
}

type processOption func(*processConfig)

func withListeners(listeners []ListenSpec) processOption {
	return func(config *processConfig) {
		config.listeners = listeners
	}
}

func withEnv(name string, value string) processOption {
	return func(config *processConfig) {
		config.envs = append(config.envs, name+"="+value)
	}
}

func withExtraArgument(key, value string) processOption {
	return func(config *processConfig) {
		config.extraArgs = append(config.extraArgs, fmt.Sprintf("-%s=%s", key, value))
	}
}

// RunServerProcess starts a shader-preview process serving testdata/site on
// PORT=36000 and stops it when the test finishes. Use GetPageFromListener to
// do a HTTP GET against a listener.
func RunServerProcess(t *testing.T, opts ...processOption) *LogCaptureBuffer {
	t.Helper()

	config := &processConfig{
		wait:      true,
		listeners: supportedListeners(),
		envs:      []string{"PORT=" + httpPort},
	}

	for _, opt := range opts {
		opt(config)
	}

	logBuf, cleanup := runServerProcess(t, config)
	t.Cleanup(cleanup)

	return logBuf
}

func runServerProcess(t *testing.T, config *processConfig) (*LogCaptureBuffer, func()) {
	t.Helper()

	_, err := os.Stat(*serverBinary)
	require.NoError(t, err)

	logBuf := &LogCaptureBuffer{}
	out := io.MultiWriter(&tWriter{t}, logBuf)

	args := getServerArgs(config.extraArgs)
	cmd := exec.Command(*serverBinary, args...)
	cmd.Env = append(os.Environ(), config.envs...)
	cmd.Stdout = out
	cmd.Stderr = out
	require.NoError(t, cmd.Start())
	t.Logf("Running %s %v", *serverBinary, args)

	waitCh := make(chan struct{})
	go func() {
		cmd.Wait()
		close(waitCh)
	}()

	cleanup := func() {
		cmd.Process.Signal(os.Interrupt)
		<-waitCh
	}

	if config.wait {
		for _, spec := range config.listeners {
			if err := spec.WaitUntilRequestSucceeds(waitCh); err != nil {
				cleanup()
				t.Fatal(err)
			}
		}
	}

	return logBuf, cleanup
}

func getServerArgs(extraArgs []string) (args []string) {
	args = append(args, "-log-verbose=true")

	if !contains(extraArgs, "-root-dir") {
		args = append(args, "-root-dir", "testdata/site")
	}

	return append(args, extraArgs...)
}

func contains(slice []string, s string) bool {
	for _, e := range slice {
		if strings.Contains(e, s) {
			return true
		}
	}
	return false
}

// GetPageFromListener does a HTTP GET against the listener specified,
// constructing the URL from the listener and the URL suffix.
func GetPageFromListener(t *testing.T, spec ListenSpec, urlsuffix string) (*http.Response, error) {
	req, err := http.NewRequest("GET", spec.URL(urlsuffix), nil)
	if err != nil {
		return nil, err
	}

	return DoServerRequest(t, req)
}

func DoServerRequest(t *testing.T, req *http.Request) (*http.Response, error) {
	t.Logf("curl -X %s %s", req.Method, req.URL)

	return TestHTTPClient.Do(req)
}

func newConfigFile(t *testing.T, configs ...string) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "shader-preview-config")
	require.NoError(t, err)
	defer f.Close()

	for _, config := range configs {
		_, err := fmt.Fprintf(f, "%s\n", config)
		require.NoError(t, err)
	}

	return f.Name()
}
