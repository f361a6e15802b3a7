// Package dispatcher periodically scans running automations and emails
// the linked campaign to every recipient of the ones that are due.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"mailflow/internal/adapter/metrics"
	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// Params groups the collaborators of a Dispatcher.
type Params struct {
	Automations port.AutomationRepository
	Campaigns   port.CampaignRepository
	Recipients  port.RecipientResolver
	Mailer      port.Mailer

	// From is the sender of every campaign email.
	From string
	// Location decides which calendar hour an automation belongs to.
	// Defaults to time.Local.
	Location *time.Location
	Logger   *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Report summarises one tick.
type Report struct {
	Candidates int // running automations returned by the store
	Due        int
	Completed  int
	Skipped    int // due but left untouched: no campaign or no recipients
	Sent       int
	Failed     int
}

// Dispatcher fires due automations. Ticks never overlap.
type Dispatcher struct {
	automations port.AutomationRepository
	campaigns   port.CampaignRepository
	recipients  port.RecipientResolver
	mailer      port.Mailer
	from        string
	loc         *time.Location
	logger      *slog.Logger
	now         func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

func New(p Params) *Dispatcher {
	d := &Dispatcher{
		automations: p.Automations,
		campaigns:   p.Campaigns,
		recipients:  p.Recipients,
		mailer:      p.Mailer,
		from:        p.From,
		loc:         p.Location,
		logger:      p.Logger,
		now:         p.Now,
	}
	if d.loc == nil {
		d.loc = time.Local
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if d.now == nil {
		d.now = time.Now
	}
	return d
}

// Tick runs one scan. It returns port.ErrTickInProgress when another tick
// is still running, and an error when the candidate list cannot be read.
// Failures of individual automations are logged and counted in the report.
//
// Cancelling ctx stops the scan before the next automation; the automation
// being processed is finished first.
func (d *Dispatcher) Tick(ctx context.Context) (Report, error) {
	if !d.mu.TryLock() {
		metrics.DispatchTicks.WithLabelValues("busy").Inc()
		return Report{}, port.ErrTickInProgress
	}
	defer d.mu.Unlock()

	start := time.Now()
	defer func() { metrics.DispatchDuration.Observe(time.Since(start).Seconds()) }()

	log := d.logger.With(slog.String("tick_id", uuid.NewString()))
	now := d.now()

	var rep Report
	candidates, err := d.automations.ListRunning(ctx)
	if err != nil {
		metrics.DispatchTicks.WithLabelValues("error").Inc()
		log.Error("failed to list running automations", slog.Any("error", err))
		return rep, fmt.Errorf("list running automations: %w", err)
	}
	rep.Candidates = len(candidates)

	for _, a := range candidates {
		if a.Status != domain.StatusRunning || !a.IsDue(now, d.loc) {
			continue
		}
		if err = ctx.Err(); err != nil {
			metrics.DispatchTicks.WithLabelValues("error").Inc()
			log.Warn("tick interrupted", slog.Any("error", err), slog.Int("due_seen", rep.Due))
			return rep, err
		}
		rep.Due++
		d.fire(context.WithoutCancel(ctx), log.With(slog.Int64("automation_id", a.ID)), a, &rep)
	}

	metrics.DispatchTicks.WithLabelValues("ok").Inc()
	log.Info("tick finished",
		slog.Int("candidates", rep.Candidates),
		slog.Int("due", rep.Due),
		slog.Int("completed", rep.Completed),
		slog.Int("skipped", rep.Skipped),
		slog.Int("sent", rep.Sent),
		slog.Int("failed", rep.Failed),
	)
	return rep, nil
}

// fire sends the campaign of a to its recipients and marks it Completed.
// A missing campaign or an empty recipient list leaves the automation
// untouched. Send failures do not prevent completion.
func (d *Dispatcher) fire(ctx context.Context, log *slog.Logger, a domain.Automation, rep *Report) {
	campaign, err := d.campaigns.GetByID(ctx, a.CampaignID)
	if err != nil {
		rep.Skipped++
		metrics.DispatchAutomations.WithLabelValues("skipped").Inc()
		if errors.Is(err, port.ErrNotFound) {
			log.Warn("campaign not found, skipping", slog.Int64("campaign_id", a.CampaignID))
		} else {
			log.Error("failed to load campaign", slog.Int64("campaign_id", a.CampaignID), slog.Any("error", err))
		}
		return
	}

	recipients, err := d.recipients.Recipients(ctx, a)
	if err != nil {
		rep.Skipped++
		metrics.DispatchAutomations.WithLabelValues("skipped").Inc()
		log.Error("failed to resolve recipients", slog.Any("error", err))
		return
	}
	if len(recipients) == 0 {
		rep.Skipped++
		metrics.DispatchAutomations.WithLabelValues("skipped").Inc()
		log.Warn("no recipients, skipping")
		return
	}

	for _, r := range recipients {
		err = d.mailer.Send(ctx, domain.Email{
			From:    d.from,
			To:      r.Email,
			Subject: campaign.SubjectLine,
			HTML:    campaign.EmailContent,
		})
		if err != nil {
			rep.Failed++
			metrics.EmailsTotal.WithLabelValues("failed").Inc()
			log.Error("failed to send email", slog.String("to", r.Email), slog.Any("error", err))
			continue
		}
		rep.Sent++
		metrics.EmailsTotal.WithLabelValues("sent").Inc()
		log.Debug("email sent", slog.String("to", r.Email))
	}

	if err = d.automations.SetStatus(ctx, a.ID, domain.StatusCompleted); err != nil {
		metrics.DispatchAutomations.WithLabelValues("error").Inc()
		log.Error("failed to mark automation completed", slog.Any("error", err))
		return
	}
	rep.Completed++
	metrics.DispatchAutomations.WithLabelValues("completed").Inc()
	log.Info("automation completed", slog.Int("recipients", len(recipients)))
}

// Start schedules Tick on schedule, a cron expression or descriptor such as
// "0 * * * *" or "@every 1m", evaluated in the dispatcher's location. ctx
// is handed to every tick.
func (d *Dispatcher) Start(ctx context.Context, schedule string) error {
	l := cronLogger{d.logger}
	c := cron.New(
		cron.WithLocation(d.loc),
		cron.WithLogger(l),
		// Recover sits inside SkipIfStillRunning so a panic still releases the
		// running token.
		cron.WithChain(cron.SkipIfStillRunning(l), cron.Recover(l)),
	)
	if _, err := c.AddFunc(schedule, func() { _, _ = d.Tick(ctx) }); err != nil {
		return fmt.Errorf("dispatch schedule %q: %w", schedule, err)
	}
	d.cron = c
	c.Start()
	d.logger.Info("dispatcher started", slog.String("schedule", schedule), slog.String("location", d.loc.String()))
	return nil
}

// Stop halts scheduling and waits for a running tick to finish or for ctx
// to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.cron == nil {
		return nil
	}
	done := d.cron.Stop()
	select {
	case <-done.Done():
		d.logger.Info("dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger routes robfig/cron's logs to slog. Routine scheduling noise
// goes to debug.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug("cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
