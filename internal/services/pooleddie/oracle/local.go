package oracle

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/timeouts"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
)

const (
	defaultQueueSize    = 256
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 200 * time.Millisecond
)

// LocalConfig controls the simulated network.
type LocalConfig struct {
	// FulfillDelay is how long a queued request waits before its result is published.
	FulfillDelay time.Duration
	// QueueSize bounds outstanding requests; RequestRandomness fails when full.
	QueueSize int
	// MaxAttempts bounds callback deliveries per fulfilled request.
	MaxAttempts int
	// RetryBackoff is the wait between failed deliveries.
	RetryBackoff time.Duration
	// Random supplies result bytes; crypto/rand when nil.
	Random io.Reader
	// Logf receives loop diagnostics; log.Printf when nil.
	Logf func(string, ...any)
}

func (c LocalConfig) normalized() LocalConfig {
	if c.FulfillDelay < 0 {
		c.FulfillDelay = 0
	}
	if c.QueueSize <= 0 {
		c.QueueSize = defaultQueueSize
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = defaultRetryBackoff
	}
	if c.Random == nil {
		c.Random = rand.Reader
	}
	if c.Logf == nil {
		c.Logf = log.Printf
	}
	return c
}

// SourceInfo is a snapshot of one simulated source.
type SourceInfo struct {
	Source    domain.SourceID
	Authority string
	Pending   bool
	HasResult bool
	Escrow    int64
	Requests  uint64
}

type localSource struct {
	authority string
	callback  *Callback
	result    domain.Payload
	pending   bool
	escrow    int64
	requests  uint64
}

// Local is an in-process oracle network. Requests are fulfilled by Run
// after FulfillDelay, or immediately through Fulfill.
type Local struct {
	cfg LocalConfig

	mu      sync.Mutex
	sources map[domain.SourceID]*localSource
	order   []domain.SourceID
	invoker CallbackInvoker
	queue   chan domain.SourceID
}

var _ Network = (*Local)(nil)

// NewLocal creates an empty simulated network.
func NewLocal(cfg LocalConfig) *Local {
	cfg = cfg.normalized()
	return &Local{
		cfg:     cfg,
		sources: make(map[domain.SourceID]*localSource),
		queue:   make(chan domain.SourceID, cfg.QueueSize),
	}
}

// SetInvoker sets where fired callbacks are delivered.
func (l *Local) SetInvoker(invoker CallbackInvoker) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.invoker = invoker
}

// Register creates a source controlled by authority.
func (l *Local) Register(source domain.SourceID, authority string) error {
	if strings.TrimSpace(string(source)) == "" {
		return apperrors.New(apperrors.CodeInvalidArgument, "source id is required")
	}
	if strings.TrimSpace(authority) == "" {
		return apperrors.New(apperrors.CodeInvalidArgument, "authority is required")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sources[source]; ok {
		return apperrors.WithMetadata(apperrors.CodeDuplicateSource, "source already registered", map[string]string{"Source": string(source)})
	}
	l.sources[source] = &localSource{authority: authority}
	l.order = append(l.order, source)
	return nil
}

// SetAuthority hands control of source to another authority.
func (l *Local) SetAuthority(source domain.SourceID, authority string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	state, err := l.lookup(source)
	if err != nil {
		return err
	}
	state.authority = authority
	return nil
}

// Sources lists simulated sources in registration order.
func (l *Local) Sources() []SourceInfo {
	l.mu.Lock()
	defer l.mu.Unlock()
	infos := make([]SourceInfo, 0, len(l.order))
	for _, id := range l.order {
		state := l.sources[id]
		infos = append(infos, SourceInfo{
			Source:    id,
			Authority: state.authority,
			Pending:   state.pending,
			HasResult: !state.result.IsZero(),
			Escrow:    state.escrow,
			Requests:  state.requests,
		})
	}
	return infos
}

// Authority implements Network.
func (l *Local) Authority(ctx context.Context, source domain.SourceID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	state, err := l.lookup(source)
	if err != nil {
		return "", err
	}
	return state.authority, nil
}

// RequestRandomness implements Network. A new round replaces the callback
// and clears the previous result; nothing changes when the request is
// rejected.
func (l *Local) RequestRandomness(ctx context.Context, source domain.SourceID, authority string, callback Callback, escrow int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if callback.Source != source {
		return apperrors.New(apperrors.CodeInvalidArgument, "callback source must match the source it is registered on")
	}
	if strings.TrimSpace(callback.RecordKey) == "" {
		return apperrors.New(apperrors.CodeInvalidArgument, "callback record key is required")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	state, err := l.lookup(source)
	if err != nil {
		return err
	}
	if err := checkAuthority(source, state, authority); err != nil {
		return err
	}
	select {
	case l.queue <- source:
	default:
		return apperrors.New(apperrors.CodeOracleUnavailable, "oracle request queue is full")
	}
	cb := callback
	state.callback = &cb
	state.result = domain.Payload{}
	state.pending = true
	state.escrow += escrow
	state.requests++
	return nil
}

// Result implements Network.
func (l *Local) Result(ctx context.Context, source domain.SourceID) (domain.Payload, error) {
	if err := ctx.Err(); err != nil {
		return domain.Payload{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	state, err := l.lookup(source)
	if err != nil {
		return domain.Payload{}, err
	}
	return state.result, nil
}

// PublishResult stores payload as the result of source without firing its
// callback.
func (l *Local) PublishResult(source domain.SourceID, payload domain.Payload) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	state, err := l.lookup(source)
	if err != nil {
		return err
	}
	state.result = payload
	if !payload.IsZero() {
		state.pending = false
	}
	return nil
}

// Fulfill draws a fresh payload for the pending request on source, publishes
// it, and delivers the registered callback.
func (l *Local) Fulfill(ctx context.Context, source domain.SourceID) error {
	var payload domain.Payload
	for payload.IsZero() {
		if _, err := io.ReadFull(l.cfg.Random, payload[:]); err != nil {
			return apperrors.Wrap(apperrors.CodeOracleUnavailable, "draw randomness", err)
		}
	}

	l.mu.Lock()
	state, err := l.lookup(source)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	if !state.pending {
		l.mu.Unlock()
		return fmt.Errorf("source %s has no pending request", source)
	}
	state.result = payload
	state.pending = false
	callback := state.callback
	invoker := l.invoker
	l.mu.Unlock()

	if callback == nil || invoker == nil {
		return nil
	}
	return l.deliver(ctx, invoker, *callback)
}

// Run fulfills queued requests until ctx ends.
func (l *Local) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case source := <-l.queue:
			if l.cfg.FulfillDelay > 0 {
				timer := time.NewTimer(l.cfg.FulfillDelay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil
				case <-timer.C:
				}
			}
			if err := l.Fulfill(ctx, source); err != nil {
				l.cfg.Logf("oracle fulfill %s: %v", source, err)
			}
		}
	}
}

func (l *Local) deliver(ctx context.Context, invoker CallbackInvoker, callback Callback) error {
	var lastErr error
	for attempt := 1; attempt <= l.cfg.MaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		lastErr = invoker.InvokeCallback(callCtx, callback)
		cancel()
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return fmt.Errorf("deliver callback for %s: %w", callback.RecordKey, lastErr)
		}
		l.cfg.Logf("oracle callback attempt %d for %s failed: %v", attempt, callback.RecordKey, lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.cfg.RetryBackoff):
		}
	}
	return fmt.Errorf("deliver callback for %s after %d attempts: %w", callback.RecordKey, l.cfg.MaxAttempts, lastErr)
}

// retryable reports whether a delivery failure may succeed on a later attempt.
// Rejections from the die service are final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch apperrors.CodeOf(err) {
	case apperrors.CodeUnknown, apperrors.CodeOracleUnavailable:
		return true
	default:
		return false
	}
}

func (l *Local) lookup(source domain.SourceID) (*localSource, error) {
	state, ok := l.sources[source]
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeSourceUnknown, "source is not registered", map[string]string{"Source": string(source)})
	}
	return state, nil
}

func checkAuthority(source domain.SourceID, state *localSource, authority string) error {
	if authority != state.authority {
		return apperrors.WithMetadata(apperrors.CodePermissionDenied, "authority does not control source", map[string]string{
			"Source":    string(source),
			"Authority": authority,
		})
	}
	return nil
}
