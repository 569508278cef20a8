package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/vidsift/ai"
	"github.com/poiesic/vidsift/core"
	"github.com/poiesic/vidsift/provider"
	"github.com/poiesic/vidsift/storage"
)

const (
	// SearchConcurrency caps in-flight provider calls per session.
	// Five keeps a whole matrix inside provider rate limits while still
	// draining thirty probes quickly.
	SearchConcurrency = 5

	// SearchPageSize is the flat result page requested per probe.
	SearchPageSize = 40

	// ClassifyLimit caps how many deduplicated candidates are submitted to
	// the classifier in one session, bounding cost and latency. Candidates
	// beyond the cap are dropped from the run, not reported as rejected.
	ClassifyLimit = 60
)

// Session is the ephemeral state of one discovery request: a query and
// everything the funnel derives from it. A Session is owned by a single
// invocation and must not be shared across concurrent requests.
type Session struct {
	id         uuid.UUID
	searcher   provider.Searcher
	classifier ai.Classifier
	videos     storage.VideoRepository
	reporter   Reporter
	logger     *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSession creates a discovery session over the given collaborators.
// Pass ai.NewBypass(...) as the classifier when no credentials are
// configured; the funnel then degrades to heuristic-only filtering.
func NewSession(
	searcher provider.Searcher,
	classifier ai.Classifier,
	videos storage.VideoRepository,
	reporter Reporter,
	opts ...SessionOption,
) (*Session, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if videos == nil {
		return nil, ErrRepositoryRequired
	}
	if reporter == nil {
		return nil, ErrReporterRequired
	}

	s := &Session{
		id:         uuid.New(),
		searcher:   searcher,
		classifier: classifier,
		videos:     videos,
		reporter:   reporter,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("session", s.id.String())
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run executes the funnel for one subject: expand, fetch with bounded
// concurrency, filter, dedup, cap, classify sequentially, persist and
// report. It publishes exactly one terminal message unless the context is
// cancelled, in which case pending work is abandoned silently and already
// persisted rows remain.
func (s *Session) Run(ctx context.Context, subject string) error {
	subject = strings.TrimSpace(subject)
	if err := core.ValidateSubject(subject); err != nil {
		s.reporter.Publish(Message{Kind: KindError, Text: "subject cannot be empty"})
		return err
	}

	terms := Expand(subject, time.Now().UTC().Year())
	s.log(fmt.Sprintf("Scanning %d search probes for %q...", len(terms), subject))

	batches, err := s.fetchAll(ctx, terms)
	if err != nil {
		s.reporter.Publish(Message{Kind: KindError, Text: "search stage failed"})
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Flatten, heuristic-filter and dedup, preserving first-seen order.
	tokens := QueryTokens(subject)
	dedup := NewDeduplicator()
	for _, batch := range batches {
		for _, video := range batch {
			dedup.Observe(video.ID)
			if !Admit(video, tokens) {
				continue
			}
			dedup.Keep(video)
		}
	}
	candidates := dedup.Videos()
	observed := dedup.ObservedCount()
	s.log(fmt.Sprintf("Kept %d of %d raw results after heuristic filtering", len(candidates), observed))

	if len(candidates) > ClassifyLimit {
		candidates = candidates[:ClassifyLimit]
	}
	s.log(fmt.Sprintf("Classifying %d candidates...", len(candidates)))

	// Classification is deliberately sequential: latency is traded for
	// staying inside model rate limits and bounding cost bursts.
	final := make([]*core.VideoRecord, 0, len(candidates))
	for _, video := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}

		verdict, err := s.classifier.Classify(ctx, video, subject)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Fail open: a classifier outage degrades to heuristic-only
			// filtering, not to zero results.
			verdict = ai.Verdict{Valid: true, Reason: ai.ReasonBypassed}
		}
		if !verdict.Valid {
			s.logger.Debug("candidate rejected",
				"video", video.ID,
				"reason", verdict.Reason)
			continue
		}

		final = append(final, s.accept(ctx, video, verdict.Reason))
	}

	summary := Summary{
		Accepted:    len(final),
		Observed:    observed,
		FilteredOut: observed - len(final),
	}
	s.reporter.Publish(Message{
		Kind: KindDone,
		Text: fmt.Sprintf("Collected %d videos (filtered out %d)",
			summary.Accepted, summary.FilteredOut),
		Videos:  final,
		Summary: summary,
	})
	return nil
}

// fetchAll issues one provider call per term through a worker pool of
// SearchConcurrency, so at most that many calls are in flight at any
// instant. Per-term failures contribute empty batches; a failing term
// never aborts the batch. Intra-term order is preserved.
func (s *Session) fetchAll(ctx context.Context, terms []string) ([][]core.Video, error) {
	pool, err := ants.NewPool(SearchConcurrency)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	batches := make([][]core.Video, len(terms))
	var wg sync.WaitGroup
	for i, term := range terms {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			batches[i] = s.fetchTerm(ctx, term)
		}); err != nil {
			wg.Done()
			s.logger.Warn("failed to submit search probe", "term", term, "err", err)
		}
	}
	wg.Wait()
	return batches, nil
}

// fetchTerm runs a single probe; any failure yields an empty batch.
func (s *Session) fetchTerm(ctx context.Context, term string) []core.Video {
	if ctx.Err() != nil {
		return nil
	}
	videos, err := s.searcher.Search(ctx, term, SearchPageSize)
	if err != nil {
		s.logger.Debug("search probe failed", "term", term, "err", err)
		return nil
	}
	return videos
}

func (s *Session) log(text string) {
	s.logger.Info(text)
	s.reporter.Publish(Message{Kind: KindLog, Text: text})
}
