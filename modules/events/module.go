// Package events provides the 'events' command namespace for observing the
// grid event stream over socket.io.
package events

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/config"
	"github.com/vk/gridctl/internal/ctxlog"
	"github.com/vk/gridctl/internal/registry"
)

// connectTimeout bounds the initial socket.io handshake.
const connectTimeout = 15 * time.Second

// Module implements the registry.Module interface for this package.
type Module struct {
	cfg  *config.Model
	outW io.Writer
}

// NewModule creates the events module. Received events are written to outW
// as they arrive, so the tail command returns no textual result.
func NewModule(cfg *config.Model, outW io.Writer) *Module {
	return &Module{cfg: cfg, outW: outW}
}

// Register installs the events namespace and its leaves.
func (m *Module) Register(r *registry.Registry) {
	r.MustDescribe([]string{"events"}, "Observe the grid event stream")
	r.MustRegister([]string{"events", "tail"}, &tailCommand{cfg: m.cfg, outW: m.outW},
		"Stream events from the configured endpoint")
}

// tailOptions are the named options accepted by 'events tail'.
type tailOptions struct {
	Event   string
	Count   int           // 0 means unbounded
	Timeout time.Duration // total time to stay subscribed
}

// parseTailOptions validates the named options. Parse failures are user
// errors and carry exit code 2.
func parseTailOptions(named map[string]string) (*tailOptions, error) {
	opts := &tailOptions{
		Event:   "message",
		Count:   0,
		Timeout: 30 * time.Second,
	}
	if v, ok := named["event"]; ok {
		if v == "" {
			return nil, command.NewError(2, "invalid event: must not be empty")
		}
		opts.Event = v
	}
	if v, ok := named["count"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, command.NewError(2, "invalid count: must be a non-negative integer", "count", v)
		}
		opts.Count = n
	}
	if v, ok := named["timeout"]; ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, command.NewError(2, "invalid timeout: must be a positive duration like '30s'", "timeout", v)
		}
		opts.Timeout = d
	}
	return opts, nil
}

// tailCommand subscribes to the configured endpoint and prints events until
// the requested count or the timeout is reached.
type tailCommand struct {
	cfg  *config.Model
	outW io.Writer
}

func (c *tailCommand) Invoke(ctx context.Context, args command.Args) (any, error) {
	if c.cfg.Events == nil {
		return nil, command.NewError(2, "no events endpoint configured; add an 'events' block to the configuration")
	}
	opts, err := parseTailOptions(args.Named)
	if err != nil {
		return nil, err
	}

	sock, err := c.connect(ctx, c.cfg.Events)
	if err != nil {
		return nil, err
	}
	defer sock.Disconnect()

	logger := ctxlog.FromContext(ctx).With("event", opts.Event)
	logger.Info("Subscribed to event stream.", "url", c.cfg.Events.URL)

	received := make(chan []any, 16)
	sock.On(types.EventName(opts.Event), func(datas ...any) {
		received <- datas
	})

	deadline := time.After(opts.Timeout)
	seen := 0
	for {
		select {
		case datas := <-received:
			seen++
			fmt.Fprintf(c.outW, "[%d] %s: %v\n", seen, opts.Event, datas)
			if opts.Count > 0 && seen >= opts.Count {
				logger.Debug("Requested event count reached.", "count", seen)
				return nil, nil
			}
		case <-deadline:
			logger.Debug("Tail timeout reached.", "events_seen", seen)
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// connect establishes the socket.io connection, waiting for the handshake to
// finish before returning the client.
func (c *tailCommand) connect(ctx context.Context, cfg *config.Events) (*socket.Socket, error) {
	logger := ctxlog.FromContext(ctx).With("url", cfg.URL)
	logger.Debug("Connecting to event stream...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse events URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	sock := manager.Socket(cfg.Namespace, opts)

	sock.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to event stream.", "sid", sock.Id())
		connectChan <- nil
	})
	sock.Once(types.EventName("connect_error"), func(errs ...any) {
		err, _ := errs[0].(error)
		if err == nil {
			err = fmt.Errorf("connect_error: %v", errs[0])
		}
		connectChan <- err
	})

	sock.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			sock.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return sock, nil
	case <-ctx.Done():
		sock.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(connectTimeout):
		sock.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}
}
