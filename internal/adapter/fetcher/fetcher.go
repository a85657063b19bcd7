// Package fetcher implements the fetch job: it pages a tweet search API,
// collects every result tagged with the query id that asked for it, and
// commits the whole run in one transaction that replaces the previous
// results. The dispatch pool runs Fetch as its JobFunc; cancellation between
// pages is how a stop request actually interrupts a job mid-execution, and
// an interrupted job commits nothing, so the last completed run stays
// visible.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/config"
	"github.com/tweetsight/backend/internal/domain"
)

type tweetStore interface {
	SaveBatch(ctx context.Context, tweets []domain.Tweet) (int, error)
	DeleteByQuery(ctx context.Context, queryID uuid.UUID) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Fetcher is the tweet search API client.
type Fetcher struct {
	baseURL     string
	bearerToken string
	pageSize    int
	maxPages    int
	httpClient  *http.Client
	tweets      tweetStore
	tx          txRunner
	log         *slog.Logger
}

// New creates a Fetcher from config.
func New(cfg config.FetcherConfig, tweets tweetStore, tx txRunner, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		baseURL:     cfg.BaseURL,
		bearerToken: cfg.BearerToken,
		pageSize:    cfg.PageSize,
		maxPages:    cfg.MaxPages,
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
		tweets:      tweets,
		tx:          tx,
		log:         logger.With("adapter", "fetcher"),
	}
}

// apiTweet is the wire shape of one search result.
type apiTweet struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
}

// apiPage is one page of search results.
type apiPage struct {
	Tweets    []apiTweet `json:"tweets"`
	NextToken string     `json:"next_token"`
}

// Fetch runs the whole fetch job for one query: page through the search API
// until it is exhausted, maxPages is reached, or ctx is cancelled, then
// replace the query's stored results with what was collected. The delete and
// the insert share a transaction. Matches dispatch.JobFunc.
func (f *Fetcher) Fetch(ctx context.Context, queryID uuid.UUID, search string) error {
	f.log.InfoContext(ctx, "fetch started",
		slog.String("query_id", queryID.String()),
		slog.String("search", search),
	)

	var collected []domain.Tweet
	nextToken := ""

	for page := 0; page < f.maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := f.fetchPage(ctx, search, nextToken)
		if err != nil {
			return fmt.Errorf("fetch page %d: %w", page, err)
		}

		for _, tw := range result.Tweets {
			collected = append(collected, toDomainTweet(queryID, tw))
		}

		if result.NextToken == "" {
			break
		}
		nextToken = result.NextToken
	}

	var written int
	err := f.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := f.tweets.DeleteByQuery(ctx, queryID); err != nil {
			return fmt.Errorf("clear previous results: %w", err)
		}
		if len(collected) == 0 {
			return nil
		}
		n, err := f.tweets.SaveBatch(ctx, collected)
		if err != nil {
			return fmt.Errorf("save results: %w", err)
		}
		written = n
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit results: %w", err)
	}

	f.log.InfoContext(ctx, "fetch finished",
		slog.String("query_id", queryID.String()),
		slog.Int("tweets", written),
	)

	return nil
}

func (f *Fetcher) fetchPage(ctx context.Context, search, nextToken string) (*apiPage, error) {
	params := url.Values{}
	params.Set("query", search)
	params.Set("max_results", strconv.Itoa(f.pageSize))
	if nextToken != "" {
		params.Set("next_token", nextToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if f.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+f.bearerToken)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var page apiPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	return &page, nil
}

func toDomainTweet(queryID uuid.UUID, tw apiTweet) domain.Tweet {
	hashtags := ""
	for i, tag := range tw.Hashtags {
		if i > 0 {
			hashtags += " "
		}
		hashtags += tag
	}

	return domain.Tweet{
		QueryID:   queryID,
		Author:    tw.Author,
		Text:      tw.Text,
		Hashtags:  hashtags,
		TweetedAt: tw.CreatedAt,
	}
}
