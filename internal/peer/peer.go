// Package peer exchanges content checksums with a remote peer over
// socket.io. The server and every client compute their own sums from their
// own definition files; exchanging the handful of numbers is enough to know
// whether everyone is running the same content.
//
// The package only transports and reports the numbers. Deciding what a
// mismatch means (refuse the connection, trigger a resync, warn) is the
// caller's policy.
package peer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/contentsync/internal/ctxlog"
)

// checksumEvent is the event name both sides use for the exchange.
const checksumEvent = "checksum"

// defaultTimeout bounds the whole exchange when the caller does not.
const defaultTimeout = 10 * time.Second

// Summary maps a content kind ("hulls", "parts") to its aggregate checksum.
type Summary map[string]uint32

// Diff returns the kinds whose sums differ between the two summaries, in
// sorted order. A kind present on only one side counts as a difference.
func Diff(ours, theirs Summary) []string {
	seen := map[string]bool{}
	var out []string
	for kind, sum := range ours {
		seen[kind] = true
		if theirs[kind] != sum {
			out = append(out, kind)
		}
	}
	for kind := range theirs {
		if !seen[kind] {
			out = append(out, kind)
		}
	}
	sort.Strings(out)
	return out
}

// Options configures one exchange.
type Options struct {
	// URL of the peer's socket.io endpoint.
	URL string
	// Namespace to join; empty means the root namespace.
	Namespace string
	// Timeout for the whole connect-emit-reply sequence.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
}

// opResult carries the exchange outcome through the done channel.
type opResult struct {
	summary Summary
	err     error
}

// Exchange connects to the peer, emits our checksum summary, and returns the
// summary the peer replies with. The caller compares the two, typically via
// Diff.
func Exchange(ctx context.Context, opts Options, ours Summary) (Summary, error) {
	logger := ctxlog.FromContext(ctx).With("peer", opts.URL)
	logger.Debug("Starting checksum exchange.")

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse peer URL: %w", err)
	}

	sockOpts := socket.DefaultOptions()
	sockOpts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sockOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sockOpts)
	io := manager.Socket(opts.Namespace, sockOpts)
	defer io.Disconnect()

	done := make(chan opResult, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Connected to peer.", "sid", io.Id())
		io.Emit(checksumEvent, wirePayload(ours))
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		done <- opResult{err: connectError(errs...)}
	})

	io.On(types.EventName(checksumEvent), func(data ...any) {
		if len(data) == 0 {
			done <- opResult{err: fmt.Errorf("peer sent empty checksum event")}
			return
		}
		summary, err := parseSummary(data[0])
		done <- opResult{summary: summary, err: err}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		return nil, fmt.Errorf("timed out waiting for peer checksum")
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		logger.Debug("Checksum exchange finished.", "kinds", len(res.summary))
		return res.summary, nil
	}
}

// connectError extracts the error from a connect_error event. The payload is
// not guaranteed to carry an error value, so unexpected shapes are reported
// rather than trusted.
func connectError(errs ...any) error {
	if len(errs) == 0 {
		return fmt.Errorf("peer connection failed")
	}
	if err, ok := errs[0].(error); ok {
		return err
	}
	return fmt.Errorf("peer connection failed: %v", errs[0])
}

// wirePayload widens the sums for JSON transport.
func wirePayload(s Summary) map[string]any {
	out := make(map[string]any, len(s))
	for kind, sum := range s {
		out[kind] = uint64(sum)
	}
	return out
}

// parseSummary reads a peer's checksum payload. socket.io delivers JSON
// objects as map[string]any with float64 numbers; the sums fit exactly
// because every value is below the checksum modulus.
func parseSummary(v any) (Summary, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("peer checksum payload has type %T, want object", v)
	}
	out := make(Summary, len(obj))
	for kind, raw := range obj {
		num, ok := raw.(float64)
		if !ok {
			return nil, fmt.Errorf("peer checksum for %q has type %T, want number", kind, raw)
		}
		out[kind] = uint32(num)
	}
	return out, nil
}
