package mapsync

import (
	"testing"
	"time"

	"locator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestShouldRefetch(t *testing.T) {
	cfg := DefaultConfig()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	box := entity.BBox{South: 48.80, West: 2.30, North: 48.90, East: 2.40}
	last := &fetchRecord{
		completedAt: base,
		zoom:        14,
		flavorsKey:  "",
		boundsKey:   box.Key(),
		center:      box.Center(),
		span:        box.Span(),
		mode:        entity.ModePoints,
	}
	shift := func(dLat, dLon float64) entity.BBox {
		return entity.BBox{South: box.South + dLat, West: box.West + dLon, North: box.North + dLat, East: box.East + dLon}
	}
	later := base.Add(time.Second)

	tests := []struct {
		name         string
		now          time.Time
		last         *fetchRecord
		throttleFrom time.Time
		next         candidate
		want         verdict
		wantReason   string
	}{
		{name: "first fetch", now: later, next: candidate{bbox: box, zoom: 14, mode: entity.ModePoints}, want: verdictFetch, wantReason: "first"},
		{name: "inside throttle window", now: base.Add(100 * time.Millisecond), last: last, throttleFrom: base, next: candidate{bbox: shift(1, 1), zoom: 14, mode: entity.ModePoints}, want: verdictWait, wantReason: "throttled"},
		{name: "mode change", now: later, last: last, throttleFrom: base, next: candidate{bbox: box, zoom: 12, mode: entity.ModeClusters}, want: verdictFetch, wantReason: "mode"},
		{name: "zoom change", now: later, last: last, next: candidate{bbox: box, zoom: 15, mode: entity.ModePoints}, want: verdictFetch, wantReason: "zoom"},
		{name: "same bounds", now: later, last: last, next: candidate{bbox: box, zoom: 14, mode: entity.ModePoints}, want: verdictSkip, wantReason: "same bounds"},
		{name: "jitter", now: later, last: last, next: candidate{bbox: shift(0.005, 0.005), zoom: 14, mode: entity.ModePoints}, want: verdictSkip, wantReason: "insignificant"},
		{name: "pan beyond 12 percent", now: later, last: last, next: candidate{bbox: shift(0, 0.013), zoom: 14, mode: entity.ModePoints}, want: verdictFetch, wantReason: "moved"},
		{name: "span grows 3 percent", now: later, last: last, next: candidate{bbox: entity.BBox{South: 48.80, West: 2.30, North: 48.903, East: 2.40}, zoom: 14, mode: entity.ModePoints}, want: verdictFetch, wantReason: "resized"},
		{name: "flavor key differs", now: later, last: last, next: candidate{bbox: box, zoom: 14, mode: entity.ModePoints, flavorsKey: "Vanille"}, want: verdictFetch, wantReason: "flavors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldRefetch(cfg, tt.now, tt.last, tt.throttleFrom, tt.next)
			assert.Equal(t, tt.want, got.verdict)
			assert.Equal(t, tt.wantReason, got.reason)
		})
	}
}

func TestShouldRefetch_WaitIsRemainder(t *testing.T) {
	cfg := DefaultConfig()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	got := shouldRefetch(cfg, base.Add(300*time.Millisecond), nil, base, candidate{})
	assert.Equal(t, verdictWait, got.verdict)
	assert.Equal(t, 150*time.Millisecond, got.wait)
}
