package solutions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olgasafonova/freshdesk-solutions-go/metrics"
	"github.com/olgasafonova/freshdesk-solutions-go/tracing"
)

// ListArticles retrieves the articles of a solution folder
func (c *Client) ListArticles(ctx context.Context, folderID int64) ([]Article, error) {
	ctx, span := tracing.StartSpan(ctx, "solutions.list_articles")
	defer span.End()
	tracing.AddSolutionAttributes(span, "articles", "list")

	key := fmt.Sprintf("articles:%d", folderID)
	path := fmt.Sprintf("/api/v2/solutions/folders/%d/articles", folderID)

	result, shared, err := c.dedup.Do(ctx, key, func() (interface{}, error) {
		var articles []Article
		if err := c.doRequest(ctx, "articles", http.MethodGet, path, nil, &articles); err != nil {
			return nil, err
		}
		return articles, nil
	})
	if shared {
		metrics.DedupSharedRequests.Inc()
	}
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return result.([]Article), nil
}
