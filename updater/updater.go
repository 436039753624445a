// Package updater runs the fetch-and-submit cycle that keeps price feeds in sync
package updater

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// DefaultInterval is the delay between the end of one cycle and the start of the next
const DefaultInterval = 30 * time.Minute

// Updater pushes prices from a source to on-chain feeds on a fixed interval.
// Cycles run one at a time and tokens are submitted in declaration order.
type Updater struct {
	source   pricefeed.PriceSource
	chain    pricefeed.Chain
	tokens   []pricefeed.Token
	interval time.Duration
	log      *zap.Logger
	metrics  *Metrics

	now   func() time.Time
	newID func() string
}

// Option configures an Updater
type Option func(*Updater)

// WithInterval sets the delay between cycles
func WithInterval(d time.Duration) Option {
	return func(u *Updater) {
		u.interval = d
	}
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(u *Updater) {
		u.log = log
	}
}

// WithMetrics sets the metrics collectors
func WithMetrics(m *Metrics) Option {
	return func(u *Updater) {
		u.metrics = m
	}
}

// New creates an Updater for tokens
func New(source pricefeed.PriceSource, chain pricefeed.Chain, tokens []pricefeed.Token, opts ...Option) *Updater {
	u := &Updater{
		source:   source,
		chain:    chain,
		tokens:   tokens,
		interval: DefaultInterval,
		log:      zap.NewNop(),
		metrics:  NewMetrics(nil),
		now:      time.Now,
		newID:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Run executes a cycle immediately and then one more each time the interval
// has elapsed since the previous cycle finished. It returns when ctx is done.
func (u *Updater) Run(ctx context.Context) {
	u.log.Info("📡 starting price update service",
		zap.Duration("interval", u.interval),
		zap.Strings("tokens", symbolStrings(u.tokens)),
	)

	for {
		u.RunCycle(ctx)

		u.log.Info("⏱️ next cycle scheduled", zap.Duration("in", u.interval))

		timer := time.NewTimer(u.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			u.log.Info("🛑 context cancelled, stopping updater")

			return
		case <-timer.C:
		}
	}
}

// RunCycle fetches all prices once and submits them feed by feed.
// It never panics and never returns an error; everything that went wrong is in
// the report and the log.
func (u *Updater) RunCycle(ctx context.Context) (report pricefeed.CycleReport) {
	report.ID = u.newID()
	report.StartedAt = u.now()

	log := u.log.With(zap.String("cycle", report.ID))

	defer func() {
		if r := recover(); r != nil {
			report.Err = fmt.Errorf("cycle panicked: %v", r)
			log.Error("❌ update cycle failed, will retry next cycle", zap.Error(report.Err))
		}

		report.FinishedAt = u.now()
		u.observe(report)
	}()

	log.Info("🔄 starting price update cycle", zap.Int("tokens", len(u.tokens)))

	quotes, err := u.source.FetchPrices(ctx, u.tokens)
	if err != nil {
		report.Err = err
		log.Error("❌ update cycle failed, will retry next cycle", zap.Error(err))

		return report
	}

	for _, t := range u.tokens {
		q, ok := quotes[t.Symbol]
		if !ok || !(q.USD > 0) {
			report.Err = fmt.Errorf("%w: source returned no usable price for %s", pricefeed.ErrIncompletePriceSet, t.Symbol)
			log.Error("❌ update cycle failed, will retry next cycle", zap.Error(report.Err))

			return report
		}
	}

	report.Quotes = quotes

	for _, t := range u.tokens {
		log.Info("📊 fetched price", zap.String("symbol", string(t.Symbol)), zap.Float64("usd", quotes[t.Symbol].USD))
	}

	for _, t := range u.tokens {
		outcome := u.submit(ctx, quotes[t.Symbol])
		report.Outcomes = append(report.Outcomes, outcome)

		if outcome.Success {
			log.Info("✅ feed updated",
				zap.String("symbol", string(outcome.Symbol)),
				zap.Float64("usd", outcome.USD),
				zap.Stringer("answer", outcome.Answer),
				zap.String("tx", outcome.TxID),
			)
		} else {
			fields := []zap.Field{
				zap.String("symbol", string(outcome.Symbol)),
				zap.Float64("usd", outcome.USD),
				zap.Error(outcome.Err),
			}
			if outcome.TxID != "" {
				fields = append(fields, zap.String("tx", outcome.TxID))
			}

			log.Error("❌ feed update failed", fields...)
		}
	}

	log.Info(fmt.Sprintf("✅ updated %d/%d price feed(s)", report.Succeeded(), report.Attempted()),
		zap.Int("succeeded", report.Succeeded()),
		zap.Int("attempted", report.Attempted()),
		zap.Duration("took", u.now().Sub(report.StartedAt)),
	)

	return report
}

// submit resolves, converts and pushes one quote. A panic is turned into a
// failed outcome so the remaining tokens still get their turn.
func (u *Updater) submit(ctx context.Context, q pricefeed.Quote) (outcome pricefeed.Outcome) {
	outcome = pricefeed.Outcome{Symbol: q.Symbol, USD: q.USD}

	defer func() {
		if r := recover(); r != nil {
			outcome.Success = false
			outcome.Err = fmt.Errorf("%w: panic: %v", pricefeed.ErrSubmission, r)
		}
	}()

	feed, err := u.chain.ResolveFeed(ctx, q.Symbol)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	// Zero after truncation is submitted as is
	outcome.Answer = pricefeed.ToFixedPoint(q.USD)

	txID, err := feed.SetPrice(ctx, outcome.Answer)
	outcome.TxID = txID
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Success = true

	return outcome
}

// observe records a finished cycle in the metrics
func (u *Updater) observe(report pricefeed.CycleReport) {
	m := u.metrics

	m.cycleDuration.Observe(report.Duration().Seconds())
	m.lastSucceeded.Set(float64(report.Succeeded()))

	switch {
	case report.Err != nil || (report.Attempted() > 0 && report.Succeeded() == 0):
		m.cycles.WithLabelValues("failed").Inc()
	case report.Succeeded() < report.Attempted():
		m.cycles.WithLabelValues("partial").Inc()
	default:
		m.cycles.WithLabelValues("ok").Inc()
	}

	for _, o := range report.Outcomes {
		if !o.Success {
			m.submissions.WithLabelValues(string(o.Symbol), "failed").Inc()
			continue
		}

		m.submissions.WithLabelValues(string(o.Symbol), "ok").Inc()
		m.lastAnswer.WithLabelValues(string(o.Symbol)).Set(o.USD)
		m.lastUpdate.WithLabelValues(string(o.Symbol)).Set(float64(report.FinishedAt.Unix()))
	}
}

func symbolStrings(tokens []pricefeed.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, s := range pricefeed.Symbols(tokens) {
		out = append(out, string(s))
	}

	return out
}
