package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	PlansGeneratedTotal     metric.Int64Counter
	FallbackPlansTotal      metric.Int64Counter
	PlanDurationSeconds     metric.Float64Histogram
	EnrichmentFailuresTotal metric.Int64Counter
	BookingRequestsTotal    metric.Int64Counter
	ModelCallDurationSeconds metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("PlanoraAPI")
		var err error
		m := &AppMetrics{}

		m.PlansGeneratedTotal, err = meter.Int64Counter(
			"trip_plans_generated_total",
			metric.WithDescription("Total number of trip plans generated"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_plans_generated_total: %v", err)
		}

		m.FallbackPlansTotal, err = meter.Int64Counter(
			"trip_plans_fallback_total",
			metric.WithDescription("Total number of plans served from the fallback builder"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_plans_fallback_total: %v", err)
		}

		m.PlanDurationSeconds, err = meter.Float64Histogram(
			"trip_plan_duration_seconds",
			metric.WithDescription("End to end duration of plan generation in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_plan_duration_seconds: %v", err)
		}

		m.EnrichmentFailuresTotal, err = meter.Int64Counter(
			"enrichment_provider_failures_total",
			metric.WithDescription("Total number of failed enrichment provider calls"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create enrichment_provider_failures_total: %v", err)
		}

		m.BookingRequestsTotal, err = meter.Int64Counter(
			"booking_requests_total",
			metric.WithDescription("Total number of booking requests received"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create booking_requests_total: %v", err)
		}

		m.ModelCallDurationSeconds, err = meter.Float64Histogram(
			"model_call_duration_seconds",
			metric.WithDescription("Duration of language model calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create model_call_duration_seconds: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
