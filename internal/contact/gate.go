// Package contact screens contact form submissions and relays accepted ones
// to a webhook.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/webbplats/site/internal/logging"
	"github.com/webbplats/site/internal/telemetry"
)

var (
	errNullSubmission = errors.New("submission body is null")
	errTrailingData   = errors.New("unexpected data after submission")
)

// DefaultMinFillTime is the shortest plausible time to fill in the form.
const DefaultMinFillTime = 2 * time.Second

// maxBodySize caps the decoded submission body.
const maxBodySize = 64 << 10

// Gate runs submissions through, in order: rate limit, honeypot, fill time,
// required fields, email shape, webhook configuration, relay.
type Gate struct {
	ledger      *Ledger
	relay       Relay
	validate    *validator.Validate
	minFillTime time.Duration
	now         func() time.Time
	logger      *logging.Logger
	metrics     *telemetry.Metrics
}

// GateOption configures a Gate.
type GateOption func(*Gate)

func WithMinFillTime(d time.Duration) GateOption {
	return func(g *Gate) { g.minFillTime = d }
}

func WithGateLogger(logger *logging.Logger) GateOption {
	return func(g *Gate) { g.logger = logger }
}

func WithGateMetrics(metrics *telemetry.Metrics) GateOption {
	return func(g *Gate) { g.metrics = metrics }
}

// WithGateClock overrides the clock used for fill time and submittedAt.
func WithGateClock(now func() time.Time) GateOption {
	return func(g *Gate) { g.now = now }
}

// NewGate creates a gate owning ledger.
func NewGate(ledger *Ledger, relay Relay, opts ...GateOption) *Gate {
	g := &Gate{
		ledger:      ledger,
		relay:       relay,
		validate:    newValidator(),
		minFillTime: DefaultMinFillTime,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.GetGlobalLogger()
	}
	return g
}

// Ledger returns the gate's rate limit ledger.
func (g *Gate) Ledger() *Ledger {
	return g.ledger
}

// Process rate limits ip, then decodes a JSON submission from body and
// screens it. It never panics.
func (g *Gate) Process(ctx context.Context, ip string, body io.Reader) (out Outcome) {
	defer g.recoverInto(&out)

	if !g.ledger.Allow(ip) {
		return g.finish(KindRateLimited)
	}

	sub, err := decodeSubmission(io.LimitReader(body, maxBodySize))
	if err != nil {
		g.logger.Error("Contact form error: failed to decode submission from %s: %v", ip, err)
		return g.finish(KindInternal)
	}

	return g.screen(ctx, ip, *sub)
}

// Submit is Process for an already decoded submission.
func (g *Gate) Submit(ctx context.Context, ip string, sub Submission) (out Outcome) {
	defer g.recoverInto(&out)

	if !g.ledger.Allow(ip) {
		return g.finish(KindRateLimited)
	}
	return g.screen(ctx, ip, sub)
}

// decodeSubmission reads exactly one JSON object from r.
func decodeSubmission(r io.Reader) (*Submission, error) {
	dec := json.NewDecoder(r)

	var sub *Submission
	if err := dec.Decode(&sub); err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errNullSubmission
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return sub, nil
}

func (g *Gate) screen(ctx context.Context, ip string, sub Submission) Outcome {
	if sub.Honeypot {
		g.logger.Info("Contact form honeypot hit from %s", ip)
		return g.finish(KindSpam)
	}

	now := g.now()
	// compared against the latest acceptable load time so extreme values cannot overflow
	if sub.Timestamp.Valid && sub.Timestamp.Millis > now.UnixMilli()-g.minFillTime.Milliseconds() {
		g.logger.Info("Contact form submitted too fast from %s", ip)
		return g.finish(KindTooFast)
	}

	if err := g.validate.Struct(sub); err != nil {
		return g.finish(classify(err))
	}

	if g.relay == nil || !g.relay.Configured() {
		g.logger.Error("CONTACT_FORM_WEBHOOK is not configured")
		return g.finish(KindMisconfigured)
	}

	if err := g.relay.Send(ctx, NewWebhookPayload(sub, ip, now)); err != nil {
		g.logger.Error("Webhook error: %v", err)
		return g.finish(KindRelayFailed)
	}

	return g.finish(KindAccepted)
}

func (g *Gate) finish(k Kind) Outcome {
	g.metrics.ContactSubmitted(string(k))
	return OutcomeFor(k)
}

func (g *Gate) recoverInto(out *Outcome) {
	if r := recover(); r != nil {
		g.logger.Error("Contact form error: %v", r)
		*out = g.finish(KindInternal)
	}
}
