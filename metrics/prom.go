package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PasteCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pastepad_paste_created_total",
		Help: "no. of pastes created",
	})
	PasteRetrieved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pastepad_paste_retrieved_total",
		Help: "no. of pastes retrieved",
	})
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pastepad_cache_hits_total",
		Help: "no. of cache hits",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pastepad_cache_misses_total",
		Help: "no. of cache misses",
	})
	ListScans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pastepad_list_scans_total",
		Help: "no. of full store scans for the list view",
	})
)
