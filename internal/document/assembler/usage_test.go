package assembler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func createTestESClient(t *testing.T, status int, body string, seen *string) *elasticsearch.Client {
	t.Helper()
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://es.test:9200"},
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if seen != nil {
				*seen = r.URL.Path
			}
			header := http.Header{}
			header.Set("X-Elastic-Product", "Elasticsearch")
			header.Set("Content-Type", "application/json")
			return &http.Response{
				StatusCode: status,
				Header:     header,
				Body:       io.NopCloser(strings.NewReader(body)),
			}, nil
		}),
	})
	require.NoError(t, err)
	return client
}

func TestUsageIndex_FindByOpportunity(t *testing.T) {
	var path string
	client := createTestESClient(t, http.StatusOK, `{
		"hits": {"hits": [{"_source": {
			"opportunityId": "o-1",
			"utilityName": "PG&E",
			"accountNumber": "ACC-42",
			"annualUsageKwh": 10250.5
		}}]}
	}`, &path)

	usage, err := NewUsageIndex(client, "utility-usage").FindByOpportunity(context.Background(), "o-1")
	require.NoError(t, err)

	assert.Equal(t, "/utility-usage/_search", path)
	assert.Equal(t, "PG&E", usage.UtilityName)
	assert.Equal(t, "ACC-42", usage.AccountNumber)
	assert.Equal(t, 10250.5, usage.AnnualUsageKwh)
}

func TestUsageIndex_NoHits(t *testing.T) {
	client := createTestESClient(t, http.StatusOK, `{"hits":{"hits":[]}}`, nil)

	usage, err := NewUsageIndex(client, "utility-usage").FindByOpportunity(context.Background(), "o-1")
	assert.Nil(t, usage)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUsageIndex_ErrorResponse(t *testing.T) {
	client := createTestESClient(t, http.StatusBadRequest, `{"error":{"type":"parsing_exception"}}`, nil)

	usage, err := NewUsageIndex(client, "utility-usage").FindByOpportunity(context.Background(), "o-1")
	assert.Nil(t, usage)
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
}
