package results

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// minWordLen is the shortest word kept in the ranked word list.
const minWordLen = 3

// truncatePercent keeps only the top slice of the ranked word list before
// the length filter runs.
const truncatePercent = 5

// Result is the full analyzer payload: the tweets of the query's last run,
// newest first, plus the aggregate summary computed over them.
type Result struct {
	Tweets   []*domain.Tweet
	Analysis *domain.Analysis
}

// Analyze computes the aggregate summary for a query's fetched tweets. When
// the requester has an active job its query takes precedence over the
// explicit queryID, so a results poll during a run always tracks the run.
func (s *Service) Analyze(ctx context.Context, queryID uuid.UUID) (*Result, error) {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if job, running := s.registry.ActiveJob(requester.UserID); running {
		queryID = job.QueryID
	}

	q, err := s.queries.FindOne(ctx, domain.ScopedQueryFilter(requester, queryID))
	if err != nil {
		return nil, fmt.Errorf("find query: %w", err)
	}

	tweets, err := s.tweets.ListByQuery(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	if len(tweets) == 0 {
		return nil, domain.ErrNoResults
	}

	result := &Result{
		Tweets: tweets,
		Analysis: &domain.Analysis{
			RankedWords:    rankedWords(s.counter, tweets),
			RankedHashtags: rankedHashtags(tweets),
			Authors:        authors(tweets),
			Keywords:       q.Keywords(),
		},
	}

	s.log.InfoContext(ctx, "analysis computed",
		slog.String("user_id", requester.UserID.String()),
		slog.String("query_id", q.ID.String()),
		slog.Int("tweets", len(tweets)),
	)

	return result, nil
}

// rankedWords tallies the whole result set as one corpus, ranks the pairs,
// cuts the ranking down to its top 5% and then drops words shorter than
// three characters. The truncation happens first and nothing backfills the
// slots the length filter frees up.
func rankedWords(counter wordCounter, tweets []*domain.Tweet) []domain.WordCount {
	var corpus strings.Builder
	for i, t := range tweets {
		if i > 0 {
			corpus.WriteByte(' ')
		}
		corpus.WriteString(t.Text)
	}

	ranked := rankCounts(counter.WordCounts(corpus.String()))
	ranked = ranked[:len(ranked)*truncatePercent/100]

	kept := ranked[:0]
	for _, wc := range ranked {
		if utf8.RuneCountInString(wc.Word) >= minWordLen {
			kept = append(kept, wc)
		}
	}
	return kept
}

// rankedHashtags ranks the literal hashtag tokens of the result set. Unlike
// the word ranking it is returned whole.
func rankedHashtags(tweets []*domain.Tweet) []domain.WordCount {
	counts := make(map[string]int)
	for _, t := range tweets {
		for _, tag := range strings.Fields(t.Hashtags) {
			counts[tag]++
		}
	}
	return rankCounts(counts)
}

// authors lists the distinct tweet authors in order of first appearance.
func authors(tweets []*domain.Tweet) []string {
	seen := make(map[string]struct{}, len(tweets))
	out := make([]string, 0, len(tweets))
	for _, t := range tweets {
		if _, ok := seen[t.Author]; ok {
			continue
		}
		seen[t.Author] = struct{}{}
		out = append(out, t.Author)
	}
	return out
}

// rankCounts orders (count, word) pairs by descending count, ties broken by
// descending lexicographic word.
func rankCounts(counts map[string]int) []domain.WordCount {
	ranked := make([]domain.WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, domain.WordCount{Count: count, Word: word})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word > ranked[j].Word
	})
	return ranked
}
