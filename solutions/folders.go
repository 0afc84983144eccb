package solutions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olgasafonova/freshdesk-solutions-go/metrics"
	"github.com/olgasafonova/freshdesk-solutions-go/tracing"
)

// ListFolders retrieves the folders of a solution category
func (c *Client) ListFolders(ctx context.Context, categoryID int64) ([]Folder, error) {
	ctx, span := tracing.StartSpan(ctx, "solutions.list_folders")
	defer span.End()
	tracing.AddSolutionAttributes(span, "folders", "list")

	key := fmt.Sprintf("folders:%d", categoryID)
	path := fmt.Sprintf("/api/v2/solutions/categories/%d/folders", categoryID)

	result, shared, err := c.dedup.Do(ctx, key, func() (interface{}, error) {
		var folders []Folder
		if err := c.doRequest(ctx, "folders", http.MethodGet, path, nil, &folders); err != nil {
			return nil, err
		}
		return folders, nil
	})
	if shared {
		metrics.DedupSharedRequests.Inc()
	}
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return result.([]Folder), nil
}
