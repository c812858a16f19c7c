package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MikeRez0/lcmanager/internal/adapter/config"
	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"go.uber.org/zap"
)

const defaultRetryAfter = 10 * time.Second

type Client struct {
	logger  *zap.Logger
	baseURL string
	key     string
	http    *http.Client
}

func NewClient(cfg *config.Marketplace, log *zap.Logger) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = config.DefaultMarketplaceURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("bad marketplace url %s: %w", base, err)
	}

	return &Client{
		logger:  log,
		baseURL: strings.TrimRight(base, "/"),
		key:     cfg.Key,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *Client) ListLoans(ctx context.Context, investorID int64, showAll bool) ([]domain.Loan, error) {
	query := url.Values{}
	query.Set("showAll", strconv.FormatBool(showAll))

	var resp map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/loans/listing", query, nil, &resp); err != nil {
		return nil, err
	}

	raw, ok := resp["loans"]
	if !ok {
		return nil, fmt.Errorf("%w: listing has no loans field", domain.ErrUnexpectedResponseFormat)
	}
	var loans []domain.Loan
	if err := decode(raw, &loans); err != nil {
		return nil, fmt.Errorf("%w: loans: %w", domain.ErrUnexpectedResponseFormat, err)
	}
	if loans == nil {
		loans = []domain.Loan{}
	}

	c.logger.Debug("Listed loans",
		zap.Int64("investor", investorID), zap.Bool("showAll", showAll), zap.Int("count", len(loans)))
	return loans, nil
}

func (c *Client) Summary(ctx context.Context, investorID int64) (*domain.Summary, error) {
	var resp summaryResponse
	if err := c.do(ctx, http.MethodGet, accountPath(investorID, "summary"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain()
}

func (c *Client) NotesOwned(ctx context.Context, investorID int64) ([]domain.Note, error) {
	var resp map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, accountPath(investorID, "notes"), nil, nil, &resp); err != nil {
		return nil, err
	}

	raw, ok := resp["myNotes"]
	if !ok {
		return nil, fmt.Errorf("%w: notes response has no myNotes field", domain.ErrUnexpectedResponseFormat)
	}
	var notes []noteResponse
	if err := decode(raw, &notes); err != nil {
		return nil, fmt.Errorf("%w: myNotes: %w", domain.ErrUnexpectedResponseFormat, err)
	}

	result := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		note, err := n.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	return result, nil
}

func (c *Client) Portfolios(ctx context.Context, investorID int64) ([]domain.Portfolio, error) {
	var resp map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, accountPath(investorID, "portfolios"), nil, nil, &resp); err != nil {
		return nil, err
	}

	raw, ok := resp["myPortfolios"]
	if !ok {
		return nil, fmt.Errorf("%w: portfolios response has no myPortfolios field", domain.ErrUnexpectedResponseFormat)
	}
	var portfolios []portfolioResponse
	if err := decode(raw, &portfolios); err != nil {
		return nil, fmt.Errorf("%w: myPortfolios: %w", domain.ErrUnexpectedResponseFormat, err)
	}

	result := make([]domain.Portfolio, 0, len(portfolios))
	for _, p := range portfolios {
		result = append(result, p.toDomain())
	}
	return result, nil
}

func (c *Client) CreatePortfolio(ctx context.Context, investorID int64,
	name, description string) (*domain.Portfolio, error) {
	req := createPortfolioRequest{
		AccountID:   investorID,
		Name:        name,
		Description: description,
	}

	var resp portfolioResponse
	if err := c.do(ctx, http.MethodPost, accountPath(investorID, "portfolios"), nil, req, &resp); err != nil {
		return nil, err
	}

	p := resp.toDomain()
	c.logger.Info("Portfolio created", zap.Int64("portfolioId", p.ID), zap.String("name", p.Name))
	return &p, nil
}

func (c *Client) SubmitOrders(ctx context.Context, batch *domain.OrderBatch) (*domain.SubmissionResult, error) {
	var resp submissionResponse
	if err := c.do(ctx, http.MethodPost, accountPath(batch.AccountID, "orders"), nil, batch, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain()
}

func accountPath(investorID int64, resource string) string {
	return "/accounts/" + strconv.FormatInt(investorID, 10) + "/" + resource
}

// do sends one request and decodes a JSON response into out. Transport
// failures and non-2xx statuses are reported as domain.ErrTransport; a 429
// carries the advertised pause as *domain.RateLimitedError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	requestStr := c.baseURL + path
	if len(query) > 0 {
		requestStr += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error on request encode %s : %w", requestStr, err)
		}
	}

	return c.send(ctx, method, requestStr, payload, out)
}

func (c *Client) send(ctx context.Context, method, requestStr string, payload []byte, out any) error {
	var reader io.Reader = http.NoBody
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestStr, reader)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.key != "" {
		req.Header.Set("Authorization", c.key)
	}

	c.logger.Debug("Fire request", zap.String("method", method), zap.String("url", requestStr))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := defaultRetryAfter
		if sec, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && sec >= 0 {
			retryAfter = time.Duration(sec) * time.Second
		}
		c.logger.Warn("rate limited", zap.String("url", requestStr), zap.Duration("retryAfter", retryAfter))
		return &domain.RateLimitedError{RetryAfter: retryAfter}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("unexpected status for request",
			zap.String("url", requestStr), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: %s %s: status %d: %s",
			domain.ErrTransport, method, requestStr, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: error on response decode: %w", domain.ErrUnexpectedResponseFormat, err)
	}
	return nil
}

func decode(raw json.RawMessage, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(out)
}
