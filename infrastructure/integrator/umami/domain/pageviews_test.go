package umamidomain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "data e hora", payload: `"2024-02-03 00:00:00"`, want: "2024-02-03"},
		{name: "RFC3339 mantém o dia escrito", payload: `"2024-02-03T00:00:00+01:00"`, want: "2024-02-03"},
		{name: "RFC3339 em UTC", payload: `"2024-02-02T23:00:00Z"`, want: "2024-02-02"},
		{name: "somente data", payload: `"2024-02-29"`, want: "2024-02-29"},
		{name: "epoch em milissegundos", payload: `1706918400000`, want: "2024-02-03"},
		{name: "texto inválido", payload: `"ontem"`, want: ""},
		{name: "booleano", payload: `true`, want: ""},
		{name: "nulo", payload: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PointTime
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))

			assert.Equal(t, tt.want, p.Date)
			assert.Equal(t, tt.want != "", p.Valid())
		})
	}
}

func TestCount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		payload string
		want    Count
	}{
		{payload: `12`, want: 12},
		{payload: `"7"`, want: 7},
		{payload: `3.9`, want: 3},
		{payload: `"muitos"`, want: 0},
		{payload: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			var c Count
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &c))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestPageviewsResponse_DecodeMalformedPoints(t *testing.T) {
	payload := `{
		"pageviews": [{"x": null, "y": 2}, {"x": "2024-02-01 00:00:00", "y": "5"}],
		"sessions": [{"x": "quando?", "y": 1}, {"x": "2024-02-01 00:00:00", "y": 1.5}]
	}`

	var resp PageviewsResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	require.Len(t, resp.Pageviews, 2)
	assert.False(t, resp.Pageviews[0].X.Valid())
	assert.Equal(t, Count(5), resp.Pageviews[1].Y)
	assert.False(t, resp.Sessions[0].X.Valid())
	assert.Equal(t, Count(1), resp.Sessions[1].Y)
}

func TestPageviewsResponse_Decode(t *testing.T) {
	payload := `{
		"pageviews": [{"x": "2024-02-01 00:00:00", "y": 10}, {"x": "2024-02-02 00:00:00", "y": 4}],
		"sessions": [{"x": "2024-02-01 00:00:00", "y": 3}]
	}`

	var resp PageviewsResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	require.Len(t, resp.Pageviews, 2)
	assert.Equal(t, "2024-02-02", resp.Pageviews[1].X.Date)
	assert.Equal(t, Count(4), resp.Pageviews[1].Y)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, Count(3), resp.Sessions[0].Y)
}
