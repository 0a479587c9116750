package mapsync

import (
	"math"
	"time"

	"locator/internal/domain/entity"
)

// fetchRecord is the bookkeeping of the last committed fetch.
type fetchRecord struct {
	completedAt time.Time
	zoom        int
	flavorsKey  string
	boundsKey   string
	center      entity.LatLon
	span        entity.LatLon
	mode        entity.ViewMode
}

type verdict int

const (
	verdictSkip verdict = iota
	verdictFetch
	verdictWait
)

func (v verdict) String() string {
	switch v {
	case verdictFetch:
		return "fetch"
	case verdictWait:
		return "wait"
	default:
		return "skip"
	}
}

// decision is the outcome of a refetch evaluation. wait is only set for
// verdictWait and holds the remainder of the throttle window.
type decision struct {
	verdict verdict
	reason  string
	wait    time.Duration
}

// candidate is the viewport about to be evaluated.
type candidate struct {
	bbox       entity.BBox
	zoom       int
	mode       entity.ViewMode
	flavorsKey string
}

// shouldRefetch decides whether the candidate viewport needs a new request.
// last is nil before the first commit; throttleFrom is the start of the
// current throttle window (zero when none is open).
func shouldRefetch(cfg Config, now time.Time, last *fetchRecord, throttleFrom time.Time, next candidate) decision {
	if !throttleFrom.IsZero() {
		if elapsed := now.Sub(throttleFrom); elapsed < cfg.Throttle {
			return decision{verdict: verdictWait, reason: "throttled", wait: cfg.Throttle - elapsed}
		}
	}

	if last == nil {
		return decision{verdict: verdictFetch, reason: "first"}
	}

	if next.mode != last.mode {
		return decision{verdict: verdictFetch, reason: "mode"}
	}
	if next.zoom != last.zoom {
		return decision{verdict: verdictFetch, reason: "zoom"}
	}
	if next.flavorsKey != last.flavorsKey {
		return decision{verdict: verdictFetch, reason: "flavors"}
	}
	if next.bbox.Key() == last.boundsKey {
		return decision{verdict: verdictSkip, reason: "same bounds"}
	}

	center := next.bbox.Center()
	if moved(center.Lat, last.center.Lat, last.span.Lat, cfg.MoveRatio) ||
		moved(center.Lon, last.center.Lon, last.span.Lon, cfg.MoveRatio) {
		return decision{verdict: verdictFetch, reason: "moved"}
	}

	span := next.bbox.Span()
	if moved(span.Lat, last.span.Lat, last.span.Lat, cfg.SpanRatio) ||
		moved(span.Lon, last.span.Lon, last.span.Lon, cfg.SpanRatio) {
		return decision{verdict: verdictFetch, reason: "resized"}
	}

	return decision{verdict: verdictSkip, reason: "insignificant"}
}

// moved reports whether cur differs from prev by more than ratio of ref.
// A degenerate reference counts any difference.
func moved(cur, prev, ref, ratio float64) bool {
	diff := math.Abs(cur - prev)
	if ref <= 0 {
		return diff > 0
	}

	return diff > ratio*ref
}
