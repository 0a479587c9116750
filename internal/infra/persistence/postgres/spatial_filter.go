package postgres

import (
	"strings"

	"locator/internal/domain/entity"
)

// viewportFilter builds the WHERE clause shared by the viewport queries over
// stores aliased as s. The geography envelope uses the GIST index; the
// lat/lon range keeps planar bounding-box semantics exact.
func viewportFilter(bbox entity.BBox, flavors []string) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 10)

	sb.WriteString(`s.location && ST_MakeEnvelope(?, ?, ?, ?, 4326)::geography
	  AND s.lat BETWEEN ? AND ?
	  AND s.lon BETWEEN ? AND ?`)
	args = append(args,
		bbox.West, bbox.South, bbox.East, bbox.North,
		bbox.South, bbox.North,
		bbox.West, bbox.East,
	)

	if len(flavors) > 0 {
		// ALL-of-N: the store needs an available record for every requested flavor
		sb.WriteString(`
	  AND s.id IN (
	    SELECT sf.store_id
	    FROM store_flavors sf
	    WHERE sf.flavor_name IN ?
	      AND sf.available = ?
	    GROUP BY sf.store_id
	    HAVING COUNT(DISTINCT sf.flavor_name) = ?
	  )`)
		args = append(args, flavors, int16(entity.AvailabilityAvailable), len(flavors))
	}

	return sb.String(), args
}
