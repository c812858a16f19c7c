package marketplace_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MikeRez0/lcmanager/internal/adapter/client/marketplace"
	"github.com/MikeRez0/lcmanager/internal/adapter/config"
	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const notesOwnedJSON = `{"myNotes":[
	{"loanId":11111,"noteId":22222,"orderId":33333,"interestRate":13.57,"loanLength":36,
	 "loanStatus":"Late (31-120 days)","grade":"C","loanAmount":10800,"noteAmount":25,
	 "paymentsReceived":5.88,"issueDate":"2009-11-12T06:34:02.000-08:00",
	 "orderDate":"2009-11-05T09:33:50.000-08:00","loanStatusDate":"2013-05-20T13:13:53.000-07:00"},
	{"loanId":44444,"noteId":55555,"orderId":66666,"interestRate":14.26,"loanLength":36,
	 "loanStatus":"Late (31-120 days)","grade":"C","loanAmount":3000,"noteAmount":25,
	 "paymentsReceived":7.65,"issueDate":null,
	 "orderDate":"2009-09-15T11:28:12.000-07:00","loanStatusDate":"2013-05-23T17:27:51.000-07:00"}
]}`

const ordersJSON = `{"orderInstructId":55555,"orderConfirmations":[
	{"loanId":22222,"requestedAmount":55.0,"investedAmount":50.0,
	 "executionStatus":["REQUESTED_AMOUNT_ROUNDED","ORDER_FULFILLED"]},
	{"loanId":44444,"requestedAmount":25.0,"investedAmount":0,"executionStatus":["NOT_AN_INFUNDING_LOAN"]}
]}`

type route struct {
	method string
	path   string
	query  string
	status int
	body   string
	// check inspects the decoded request body
	check func(t *testing.T, body map[string]any)
}

func newServer(t *testing.T, routes ...route) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("Authorization"))
		for _, rt := range routes {
			if r.Method != rt.method || r.URL.Path != rt.path || r.URL.RawQuery != rt.query {
				continue
			}
			if rt.check != nil {
				data, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				var body map[string]any
				require.NoError(t, json.Unmarshal(data, &body))
				rt.check(t, body)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rt.status)
			_, _ = w.Write([]byte(rt.body))
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.String())
		w.WriteHeader(http.StatusNotImplemented)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string) *marketplace.Client {
	t.Helper()
	c, err := marketplace.NewClient(&config.Marketplace{
		Key:     "key",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestClient_ListLoans(t *testing.T) {
	type listTest struct {
		name     string
		showAll  bool
		route    route
		expIDs   []int64
		expError error
	}

	tests := []listTest{
		{
			name:    "show all",
			showAll: true,
			route: route{method: http.MethodGet, path: "/loans/listing", query: "showAll=true",
				status: http.StatusOK, body: `{"asOfDate":"2015-01-01","loans":[{"id":111111,"term":36}]}`},
			expIDs: []int64{111111},
		},
		{
			name:    "latest listing only",
			showAll: false,
			route: route{method: http.MethodGet, path: "/loans/listing", query: "showAll=false",
				status: http.StatusOK, body: `{"loans":[{"id":111111},{"id":222222}]}`},
			expIDs: []int64{111111, 222222},
		},
		{
			name:    "server error",
			showAll: false,
			route: route{method: http.MethodGet, path: "/loans/listing", query: "showAll=false",
				status: http.StatusNotFound, body: `{}`},
			expError: domain.ErrTransport,
		},
		{
			name:    "no loans field",
			showAll: true,
			route: route{method: http.MethodGet, path: "/loans/listing", query: "showAll=true",
				status: http.StatusOK, body: `{"asOfDate":"2015-01-01"}`},
			expError: domain.ErrUnexpectedResponseFormat,
		},
		{
			name:    "not json",
			showAll: true,
			route: route{method: http.MethodGet, path: "/loans/listing", query: "showAll=true",
				status: http.StatusOK, body: `<html></html>`},
			expError: domain.ErrUnexpectedResponseFormat,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := newServer(t, test.route)
			c := newClient(t, srv.URL)

			loans, err := c.ListLoans(context.Background(), 11111, test.showAll)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)

			ids := make([]int64, 0, len(loans))
			for _, l := range loans {
				id, ok := l.ID()
				require.True(t, ok)
				ids = append(ids, id)
			}
			assert.Equal(t, test.expIDs, ids)
		})
	}
}

func TestClient_ListLoans_KeepsNumbers(t *testing.T) {
	srv := newServer(t, route{method: http.MethodGet, path: "/loans/listing", query: "showAll=true",
		status: http.StatusOK, body: `{"loans":[{"id":111111,"term":60,"annualInc":85000.5,"grade":"B"}]}`})
	c := newClient(t, srv.URL)

	loans, err := c.ListLoans(context.Background(), 11111, true)
	require.NoError(t, err)
	require.Len(t, loans, 1)

	term, ok := loans[0].Int("term")
	assert.True(t, ok)
	assert.Equal(t, int64(60), term)
	inc, ok := loans[0].Float("annualInc")
	assert.True(t, ok)
	assert.InDelta(t, 85000.5, inc, 0.0001)
	grade, _ := loans[0].String("grade")
	assert.Equal(t, "B", grade)
}

func TestClient_Summary(t *testing.T) {
	srv := newServer(t, route{method: http.MethodGet, path: "/accounts/11111/summary", status: http.StatusOK,
		body: `{"investorId":11111,"availableCash":1234.56,"accountTotal":5000,"infundingBalance":25.0,"totalNotes":3}`})
	c := newClient(t, srv.URL)

	summary, err := c.Summary(context.Background(), 11111)
	require.NoError(t, err)
	assert.Equal(t, int64(11111), summary.InvestorID)
	assert.True(t, summary.AvailableCash.Equal(decimal.MustParse("1234.56")))
	assert.True(t, summary.InfundingBalance.Equal(decimal.MustNew(25, 0)))
	assert.True(t, summary.ReceivedLateFees.IsZero())
	assert.Equal(t, 3, summary.TotalNotes)
}

func TestClient_NotesOwned(t *testing.T) {
	srv := newServer(t,
		route{method: http.MethodGet, path: "/accounts/11111/notes", status: http.StatusOK, body: notesOwnedJSON},
		route{method: http.MethodGet, path: "/accounts/22222/notes", status: http.StatusOK, body: `{"notes":[]}`},
	)
	c := newClient(t, srv.URL)

	notes, err := c.NotesOwned(context.Background(), 11111)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(11111), notes[0].LoanID)
	assert.Equal(t, int64(22222), notes[0].NoteID)
	assert.True(t, notes[0].InterestRate.Equal(decimal.MustParse("13.57")))
	assert.Equal(t, "Late (31-120 days)", notes[0].LoanStatus)
	require.NotNil(t, notes[0].IssueDate)
	assert.Equal(t, 2009, notes[0].IssueDate.Year())
	assert.Nil(t, notes[1].IssueDate)
	assert.True(t, notes[1].PaymentsReceived.Equal(decimal.MustParse("7.65")))

	_, err = c.NotesOwned(context.Background(), 22222)
	assert.ErrorIs(t, err, domain.ErrUnexpectedResponseFormat)
}

func TestClient_Portfolios(t *testing.T) {
	srv := newServer(t,
		route{method: http.MethodGet, path: "/accounts/11111/portfolios", status: http.StatusOK,
			body: `{"myPortfolios":[{"portfolioId":22222,"portfolioName":"Portfolio 1","portfolioDescription":"Sample"}]}`},
		route{method: http.MethodPost, path: "/accounts/11111/portfolios", status: http.StatusOK,
			body: `{"portfolioId":22222,"portfolioName":"P","portfolioDescription":"Sample"}`,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{
					"aid":                  float64(11111),
					"portfolioName":        "P",
					"portfolioDescription": "Sample",
				}, body)
			}},
	)
	c := newClient(t, srv.URL)

	list, err := c.Portfolios(context.Background(), 11111)
	require.NoError(t, err)
	assert.Equal(t, []domain.Portfolio{{ID: 22222, Name: "Portfolio 1", Description: "Sample"}}, list)

	p, err := c.CreatePortfolio(context.Background(), 11111, "P", "Sample")
	require.NoError(t, err)
	assert.Equal(t, int64(22222), p.ID)
}

func TestClient_CreatePortfolio_ServerError(t *testing.T) {
	srv := newServer(t, route{method: http.MethodPost, path: "/accounts/11111/portfolios",
		status: http.StatusBadRequest, body: `{"errors":[{"code":"duplicate"}]}`})
	c := newClient(t, srv.URL)

	_, err := c.CreatePortfolio(context.Background(), 11111, "A", "B")
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "400")
}

func TestClient_SubmitOrders(t *testing.T) {
	portfolioID := int64(44444)
	srv := newServer(t, route{method: http.MethodPost, path: "/accounts/11111/orders", status: http.StatusOK,
		body: ordersJSON,
		check: func(t *testing.T, body map[string]any) {
			assert.Equal(t, float64(11111), body["aid"])
			assert.Equal(t, []any{
				map[string]any{"loanId": float64(22222), "requestedAmount": float64(55), "portfolioId": float64(44444)},
				map[string]any{"loanId": float64(44444), "requestedAmount": float64(25)},
			}, body["orders"])
		}})
	c := newClient(t, srv.URL)

	result, err := c.SubmitOrders(context.Background(), &domain.OrderBatch{
		AccountID: 11111,
		Orders: []domain.Order{
			{LoanID: 22222, RequestedAmount: decimal.MustNew(55, 0), PortfolioID: &portfolioID},
			{LoanID: 44444, RequestedAmount: decimal.MustNew(25, 0)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(55555), result.OrderInstructID)
	require.Len(t, result.OrderConfirmations, 2)
	assert.True(t, result.OrderConfirmations[0].InvestedAmount.Equal(decimal.MustNew(50, 0)))
	assert.Equal(t, []string{"NOT_AN_INFUNDING_LOAN"}, result.OrderConfirmations[1].ExecutionStatus)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newClient(t, url)
	_, err := c.Summary(context.Background(), 11111)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestClient_RateLimited(t *testing.T) {
	type rateLimitTest struct {
		name          string
		header        string
		expRetryAfter time.Duration
	}

	tests := []rateLimitTest{
		{name: "advertised pause", header: "7", expRetryAfter: 7 * time.Second},
		{name: "no header", header: "", expRetryAfter: 10 * time.Second},
		{name: "http date", header: "Wed, 21 Oct 2015 07:28:00 GMT", expRetryAfter: 10 * time.Second},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				if test.header != "" {
					w.Header().Set("Retry-After", test.header)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer srv.Close()

			c := newClient(t, srv.URL)
			_, err := c.Portfolios(context.Background(), 11111)

			assert.ErrorIs(t, err, domain.ErrTransport)
			var limited *domain.RateLimitedError
			require.ErrorAs(t, err, &limited)
			assert.Equal(t, test.expRetryAfter, limited.RetryAfter)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}
