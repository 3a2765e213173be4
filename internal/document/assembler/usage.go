package assembler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"document-workers/internal/models"
)

var ErrSearchFailed = errors.New("utility usage search failed")

// UsageIndex finds utility usage details in Elasticsearch by opportunity id.
type UsageIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewUsageIndex(client *elasticsearch.Client, index string) *UsageIndex {
	return &UsageIndex{client: client, index: index}
}

type usageSearchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.UtilityUsageDetails `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// FindByOpportunity returns the most recent usage document for the
// opportunity, or a *NotFoundError when there is none.
func (u *UsageIndex) FindByOpportunity(ctx context.Context, opportunityID string) (*models.UtilityUsageDetails, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{"opportunityId": opportunityID},
		},
		"sort": []map[string]interface{}{{"updatedAt": map[string]interface{}{"order": "desc", "unmapped_type": "date"}}},
	})
	if err != nil {
		return nil, err
	}

	size := 1
	req := esapi.SearchRequest{
		Index: []string{u.index},
		Body:  bytes.NewReader(body),
		Size:  &size,
	}

	res, err := req.Do(ctx, u.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, res.String())
	}

	var parsed usageSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSearchFailed, err)
	}
	if len(parsed.Hits.Hits) == 0 {
		return nil, &NotFoundError{Kind: models.RecordKindUtilityUsage, ID: opportunityID}
	}

	usage := parsed.Hits.Hits[0].Source
	return &usage, nil
}
