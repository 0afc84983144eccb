package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name       string
		entity     string
		method     string
		duration   float64
		success    bool
		kind       string
		wantStatus string
	}{
		{
			name:       "successful list call",
			entity:     "categories",
			method:     "GET",
			duration:   0.1,
			success:    true,
			kind:       "",
			wantStatus: "success",
		},
		{
			name:       "failed upsert with error kind",
			entity:     "articles",
			method:     "PUT",
			duration:   0.5,
			success:    false,
			kind:       "http_429",
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPICall(tt.entity, tt.method, tt.duration, tt.success, tt.kind)

			counter, err := APIRequestsTotal.GetMetricWithLabelValues(tt.entity, tt.method, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}
			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}

			if tt.kind != "" {
				errCounter, err := APIErrors.GetMetricWithLabelValues(tt.entity, tt.kind)
				if err != nil {
					t.Fatalf("failed to get error metric: %v", err)
				}

				var em dto.Metric
				if err := errCounter.Write(&em); err != nil {
					t.Fatalf("failed to write error metric: %v", err)
				}
				if em.Counter.GetValue() < 1 {
					t.Error("expected error counter to be incremented")
				}
			}
		})
	}
}

func TestRecordUpsert(t *testing.T) {
	outcomes := []string{"updated", "created", "skipped", "failed"}

	for _, outcome := range outcomes {
		t.Run(outcome, func(t *testing.T) {
			RecordUpsert("folders", outcome)

			counter, err := TranslationUpserts.GetMetricWithLabelValues("folders", outcome)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}
			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRateLimitCounters(t *testing.T) {
	RateLimitTrips.Inc()
	RateLimitSkips.WithLabelValues("articles").Inc()

	var m dto.Metric
	if err := RateLimitTrips.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected trips counter to be incremented")
	}

	skips, err := RateLimitSkips.GetMetricWithLabelValues("articles")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	var sm dto.Metric
	if err := skips.Write(&sm); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if sm.Counter.GetValue() < 1 {
		t.Error("expected skips counter to be incremented")
	}
}

func TestTranslationFallbacks(t *testing.T) {
	TranslationFallbacks.WithLabelValues("categories").Inc()

	counter, err := TranslationFallbacks.GetMetricWithLabelValues("categories")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected fallback counter to be incremented")
	}
}
