package postgres

import (
	"strings"
	"testing"

	"locator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportFilter_NoFlavors(t *testing.T) {
	bbox := entity.BBox{South: 48.80, West: 2.25, North: 48.90, East: 2.42}

	where, args := viewportFilter(bbox, nil)

	assert.Contains(t, where, "ST_MakeEnvelope")
	assert.NotContains(t, where, "store_flavors")
	assert.Equal(t, []any{2.25, 48.80, 2.42, 48.90, 48.80, 48.90, 2.25, 2.42}, args)
}

func TestViewportFilter_FlavorIntersection(t *testing.T) {
	bbox := entity.BBox{South: -1, West: -1, North: 1, East: 1}
	flavors := []string{"Pistachio", "Vanilla"}

	where, args := viewportFilter(bbox, flavors)

	assert.Contains(t, where, "HAVING COUNT(DISTINCT sf.flavor_name) = ?")
	require.Len(t, args, 11)
	assert.Equal(t, flavors, args[8])
	assert.Equal(t, int16(entity.AvailabilityAvailable), args[9])
	assert.Equal(t, 2, args[10])
}

func TestClusterQuery_GroupsOnComputedCell(t *testing.T) {
	bbox := entity.BBox{South: 48.80, West: 2.25, North: 48.90, East: 2.42}

	query, args := clusterQuery(bbox, 0.05, nil)

	assert.Contains(t, query, "FLOOR(s.lat / ?) AS cell_row")
	assert.Contains(t, query, "FLOOR(s.lon / ?) AS cell_col")
	assert.Contains(t, query, "GROUP BY c.cell_row, c.cell_col")
	assert.Contains(t, query, "ORDER BY c.cell_row, c.cell_col")
	assert.NotContains(t, query, "GROUP BY FLOOR")
	assert.NotContains(t, query, "ORDER BY FLOOR")
	assert.Equal(t, 2, strings.Count(query, "/ ?"))

	require.Len(t, args, 10)
	assert.Equal(t, []any{0.05, 0.05}, args[:2])
	assert.Equal(t, []any{2.25, 48.80, 2.42, 48.90, 48.80, 48.90, 2.25, 2.42}, args[2:])
	assert.Equal(t, strings.Count(query, "?"), len(args))
}

func TestClusterQuery_GroupByHasNoPlaceholders(t *testing.T) {
	db, _ := dryRunDB(t)
	bbox := entity.BBox{South: 48.80, West: 2.25, North: 48.90, East: 2.42}

	query, args := clusterQuery(bbox, 0.05, []string{"Pistachio", "Vanilla"})
	stmt := db.Raw(query, args...).Statement
	rendered := stmt.SQL.String()

	assert.Contains(t, rendered, "FLOOR(s.lat / $1) AS cell_row")
	assert.Contains(t, rendered, "FLOOR(s.lon / $2) AS cell_col")

	tail := rendered[strings.Index(rendered, "GROUP BY"):]
	assert.NotContains(t, tail, "$")
	assert.Len(t, stmt.Vars, 14)
}

func TestClusterQuery_FlavorFilterArgsFollowCell(t *testing.T) {
	bbox := entity.BBox{South: -1, West: -1, North: 1, East: 1}
	flavors := []string{"Pistachio"}

	query, args := clusterQuery(bbox, 0.5, flavors)

	require.Len(t, args, 13)
	assert.Equal(t, []any{0.5, 0.5}, args[:2])
	assert.Equal(t, flavors, args[10])
	assert.Equal(t, 1, args[12])
	assert.Equal(t, strings.Count(query, "?"), len(args))
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
	}{
		{name: "empty", input: "", want: []int64{}},
		{name: "single", input: "42", want: []int64{42}},
		{name: "several", input: "1,5,17", want: []int64{1, 5, 17}},
		{name: "garbage", input: "1,x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDList(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
