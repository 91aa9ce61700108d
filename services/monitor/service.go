// Package monitor decides, once per scheduled run, whether the upcoming
// Saturday session warrants the one-shot signup alert.
package monitor

import (
	"context"
	"log/slog"
	"sessionwatch/lib/alertledger"
	"sessionwatch/lib/scrapers/organiser"
	"sessionwatch/lib/timezone"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SignupThreshold is the signup count at which an occurrence becomes worth
// notifying about.
const SignupThreshold = 12

// Fetcher returns the raw organiser page markup, or fails. Implemented by
// [organiser.Client].
type Fetcher interface {
	FetchPage(ctx context.Context) ([]byte, error)
}

type Options struct {
	SignupBaseUrl string
	// Threshold defaults to SignupThreshold when zero.
	Threshold int
}

type Service struct {
	fetcher Fetcher
	mailer  Mailer
	ledger  alertledger.Ledger
	clock   timezone.Clock
	options Options
}

func NewService(fetcher Fetcher, mailer Mailer, ledger alertledger.Ledger, clock timezone.Clock, options Options) Service {
	if options.Threshold == 0 {
		options.Threshold = SignupThreshold
	}
	return Service{
		fetcher: fetcher,
		mailer:  mailer,
		ledger:  ledger,
		clock:   clock,
		options: options,
	}
}

// Outcome is the terminal state of a single run. Every run ends in exactly
// one of these, failures included, nothing escapes RunOnce as an error.
type Outcome string

const (
	OutcomeAlerted        Outcome = "alerted"
	OutcomeAlreadyAlerted Outcome = "already_alerted"
	OutcomeBelowThreshold Outcome = "below_threshold"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeNoSessions     Outcome = "no_sessions"
	OutcomeFetchFailed    Outcome = "fetch_failed"
	OutcomeLedgerFailed   Outcome = "ledger_failed"
	OutcomeSendFailed     Outcome = "send_failed"
)

// RunOnce performs one full check: resolve the target Saturday, fetch and
// parse the page, match the target, consult the ledger and notify if the
// threshold is met. The ledger is only written after a confirmed send, so
// a failed send is retried naturally on the next scheduled run.
func (s Service) RunOnce(ctx context.Context) Outcome {
	ctx, span := tracer.Start(ctx, "RunOnce")
	defer span.End()

	target := TargetSaturday(s.clock.Now())
	token := target.Format(time.DateOnly)
	span.SetAttributes(attribute.String("target", token))

	slog.InfoContext(ctx, "checking organiser page", "target", token)

	markup, err := s.fetcher.FetchPage(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch organiser page")
		slog.ErrorContext(ctx, "failed to fetch organiser page", "err", err)
		return OutcomeFetchFailed
	}

	sessions, err := organiser.ExtractSessions(markup, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse organiser page")
		slog.ErrorContext(ctx, "failed to parse organiser page", "err", err)
		return OutcomeFetchFailed
	}
	if len(sessions) == 0 {
		slog.WarnContext(ctx, "no saturday sessions found on the page")
		return OutcomeNoSessions
	}

	var match *organiser.Session
	for i, session := range sessions {
		slog.InfoContext(
			ctx, "found session",
			"description", session.Description,
			"signups", session.CurrentSignups,
			"capacity", session.MaxSignups,
			"date", session.Date.Format(time.DateOnly),
		)
		if match == nil && !session.Date.IsZero() && session.Date.Equal(target) {
			match = &sessions[i]
		}
	}
	if match == nil {
		slog.WarnContext(ctx, "no session matches the target date", "target", token)
		return OutcomeNoMatch
	}

	alerted, err := s.ledger.Has(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read alert ledger")
		slog.ErrorContext(ctx, "failed to read alert ledger", "err", err)
		return OutcomeLedgerFailed
	}
	if alerted {
		slog.InfoContext(ctx, "already alerted for this occurrence", "token", token)
		return OutcomeAlreadyAlerted
	}

	if match.CurrentSignups < s.options.Threshold {
		slog.InfoContext(
			ctx, "below threshold",
			"signups", match.CurrentSignups,
			"threshold", s.options.Threshold,
		)
		return OutcomeBelowThreshold
	}

	link := SignupLink(target, s.options.SignupBaseUrl)
	slog.InfoContext(ctx, "threshold reached, sending alert", "link", link)

	err = s.mailer.SendAlert(ctx, *match, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send alert email")
		slog.ErrorContext(ctx, "failed to send alert email", "err", err)
		return OutcomeSendFailed
	}

	err = s.ledger.Mark(ctx, token)
	if err != nil {
		// the alert went out; a mark failure means a duplicate is possible
		// next run, which beats dropping the alert entirely
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to mark alert ledger")
		slog.ErrorContext(ctx, "failed to mark alert ledger", "err", err, "token", token)
		return OutcomeAlerted
	}

	slog.InfoContext(ctx, "alert sent", "token", token)
	return OutcomeAlerted
}
