package solutions

import (
	"context"
	"net/http"

	"github.com/olgasafonova/freshdesk-solutions-go/metrics"
	"github.com/olgasafonova/freshdesk-solutions-go/tracing"
)

// ListCategories retrieves all solution categories. A single page is
// returned; the Solutions API's pagination is left to the caller.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	ctx, span := tracing.StartSpan(ctx, "solutions.list_categories")
	defer span.End()
	tracing.AddSolutionAttributes(span, "categories", "list")

	result, shared, err := c.dedup.Do(ctx, "categories", func() (interface{}, error) {
		var categories []Category
		if err := c.doRequest(ctx, "categories", http.MethodGet, "/api/v2/solutions/categories", nil, &categories); err != nil {
			return nil, err
		}
		return categories, nil
	})
	if shared {
		metrics.DedupSharedRequests.Inc()
	}
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return result.([]Category), nil
}
