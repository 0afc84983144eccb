package solutions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olgasafonova/freshdesk-solutions-go/internal/apierrors"
	"github.com/olgasafonova/freshdesk-solutions-go/metrics"
	"github.com/olgasafonova/freshdesk-solutions-go/tracing"
)

// UpsertResult is the tagged outcome of a translation upsert. Exactly one of
// the three states holds: Skipped (the rate-limit gate was tripped and no
// network call was made), or a Translation was sent, with Created reporting
// whether the POST fallback produced it. Callers must check Skipped before
// using Translation.
type UpsertResult struct {
	// Skipped is true when the upsert short-circuited because a previous
	// call saw a 429. Translation is nil in that case.
	Skipped bool

	// Created is true when the translation did not exist and was created
	// via the POST fallback rather than updated.
	Created bool

	// Translation is the document returned by the API, opaque to the client
	Translation map[string]interface{}
}

// UpdateCategoryTranslation upserts a translation for a solution category
func (c *Client) UpdateCategoryTranslation(ctx context.Context, id int64, locale string, body map[string]interface{}) (*UpsertResult, error) {
	return c.upsertTranslation(ctx, "categories", id, locale, body)
}

// UpdateFolderTranslation upserts a translation for a solution folder
func (c *Client) UpdateFolderTranslation(ctx context.Context, id int64, locale string, body map[string]interface{}) (*UpsertResult, error) {
	return c.upsertTranslation(ctx, "folders", id, locale, body)
}

// UpdateArticleTranslation upserts a translation for a solution article
func (c *Client) UpdateArticleTranslation(ctx context.Context, id int64, locale string, body map[string]interface{}) (*UpsertResult, error) {
	return c.upsertTranslation(ctx, "articles", id, locale, body)
}

// upsertTranslation implements the shared write protocol: attempt a PUT, and
// if the translation does not exist yet (404) create it with a single POST to
// the same URL. A 429 on either attempt trips the gate for the lifetime of
// the client; every later upsert on any entity type is skipped.
func (c *Client) upsertTranslation(ctx context.Context, entity string, id int64, locale string, body map[string]interface{}) (*UpsertResult, error) {
	ctx, span := tracing.StartSpan(ctx, "solutions.upsert_translation")
	defer span.End()
	tracing.AddSolutionAttributes(span, entity, "upsert_translation")
	tracing.AddTranslationAttributes(span, id, locale)

	if !c.gate.Allow() {
		c.logger.Warn("skipping translation upsert, rate limit gate tripped",
			"entity", entity,
			"id", id,
			"locale", locale)
		metrics.RateLimitSkips.WithLabelValues(entity).Inc()
		metrics.RecordUpsert(entity, "skipped")
		return &UpsertResult{Skipped: true}, nil
	}

	path := fmt.Sprintf("/api/v2/solutions/%s/%d/%s", entity, id, locale)

	var translation map[string]interface{}
	err := c.doRequest(ctx, entity, http.MethodPut, path, body, &translation)

	created := false
	if apierrors.IsNotFound(err) {
		// Translation does not exist yet; create it with the same payload.
		// This second attempt's outcome is final, no further fallback.
		metrics.TranslationFallbacks.WithLabelValues(entity).Inc()
		translation = nil
		err = c.doRequest(ctx, entity, http.MethodPost, path, body, &translation)
		created = err == nil
	}

	if err != nil {
		if apierrors.IsRateLimited(err) {
			c.gate.Trip(apierrors.RetryAfter(err))
			metrics.RateLimitTrips.Inc()
			c.logger.Warn("rate limit gate tripped",
				"entity", entity,
				"id", id,
				"locale", locale,
				"retry_after", apierrors.RetryAfter(err))
		}
		c.logger.Error("translation upsert failed",
			"entity", entity,
			"id", id,
			"locale", locale,
			"error", err)
		metrics.RecordUpsert(entity, "failed")
		tracing.RecordError(span, err)
		return nil, err
	}

	outcome := "updated"
	if created {
		outcome = "created"
	}
	metrics.RecordUpsert(entity, outcome)
	return &UpsertResult{Created: created, Translation: translation}, nil
}
