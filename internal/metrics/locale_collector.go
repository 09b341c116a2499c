package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	catalogsLoadedDesc  = prometheus.NewDesc("lingo_catalogs_loaded", "Number of translation catalogs currently loaded", nil, nil)
	catalogMessagesDesc = prometheus.NewDesc("lingo_catalog_messages", "Number of messages in a loaded catalog", []string{"locale"}, nil)
)

// LocaleRequests counts requests per effective locale, incremented by the
// locale binding middleware.
var LocaleRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lingo_locale_requests_total",
		Help: "Total HTTP requests grouped by effective locale",
	},
	[]string{"locale"},
)

// ObserveLocaleRequest records one request handled under the given locale.
func ObserveLocaleRequest(locale string) {
	LocaleRequests.WithLabelValues(locale).Inc()
}

// CatalogStats reports message counts per loaded catalog.
type CatalogStats interface {
	Stats() map[string]int
}

type catalogCollector struct {
	stats CatalogStats
}

// NewCatalogCollector returns a Prometheus collector exposing the loaded
// catalog inventory.
func NewCatalogCollector(stats CatalogStats) prometheus.Collector {
	return &catalogCollector{stats: stats}
}

func (collector *catalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- catalogsLoadedDesc
	ch <- catalogMessagesDesc
}

func (collector *catalogCollector) Collect(ch chan<- prometheus.Metric) {
	stats := collector.stats.Stats()
	ch <- prometheus.MustNewConstMetric(catalogsLoadedDesc, prometheus.GaugeValue, float64(len(stats)))
	for locale, count := range stats {
		ch <- prometheus.MustNewConstMetric(catalogMessagesDesc, prometheus.GaugeValue, float64(count), locale)
	}
}
