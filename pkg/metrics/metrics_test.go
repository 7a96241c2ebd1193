package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a custom registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})

			Convey("Then the configured namespace should appear in gathered metrics", func() {
				manager.fetchRequests.WithLabelValues("games").Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "test-namespace_test-subsystem_fetch_requests_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording fetch metrics", func() {
			Convey("Then it should record fetch requests", func() {
				So(func() {
					RecordFetch("games")
					RecordFetch("gameStatsheets")
					RecordFetch("playerSeasonStats")
				}, ShouldNotPanic)
			})

			Convey("And it should record fetch failures", func() {
				So(func() {
					RecordFetchFailure("teamStatsheets")
					RecordFetchFailure("games")
				}, ShouldNotPanic)
			})

			Convey("And it should record fetch durations", func() {
				So(func() {
					RecordFetchDuration("games", 100.0)
					RecordFetchDuration("gameStatsheets", 150.0)
					RecordFetchDuration("playerSeasonStats", 200.0)
				}, ShouldNotPanic)
			})

			Convey("And it should track in-flight fetches", func() {
				So(func() {
					IncFetchInFlight()
					IncFetchInFlight()
					DecFetchInFlight()
					DecFetchInFlight()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording write metrics", func() {
			Convey("Then it should record written records", func() {
				So(func() {
					RecordWrite("games")
					RecordWrite("players")
					RecordWrite("players")
				}, ShouldNotPanic)
			})

			Convey("And it should record write failures", func() {
				So(func() {
					RecordWriteFailure("games")
					RecordWriteFailure("players")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording day pipeline metrics", func() {
			Convey("Then it should track day lifecycle", func() {
				So(func() {
					RecordDayStarted()
					RecordDayCompleted()
					RecordDayStarted()
					RecordDayFailed()
				}, ShouldNotPanic)
			})

			Convey("And it should record player batches", func() {
				So(func() {
					RecordPlayerBatch()
					RecordPlayerBatch()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("/healthz", "GET", "200")
					RecordHTTPRequest("/progress", "GET", "200")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/healthz", "GET", "200", 5.0)
					RecordHTTPRequestDuration("/progress", "GET", "200", 10.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("When getting the registry", func() {
			registry := GetRegistry()

			Convey("Then it should not be nil", func() {
				So(registry, ShouldNotBeNil)
			})

			Convey("Then gathering should succeed", func() {
				RecordFetch("games")
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
