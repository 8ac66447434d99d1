package visual

import (
	"bytes"
	"encoding/json"
	"testing"

	"okxpos/internal/presenter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestOptions(t *testing.T) {
	series := presenter.PnLSeries{
		Labels: []string{"BTC-USDT-SWAP", "ETH-USDT-SWAP"},
		Values: []float64{1000, -25.5},
	}
	raw, err := json.Marshal(Options(series))
	require.NoError(t, err)

	doc := gjson.ParseBytes(raw)
	assert.Equal(t, ChartTitle, doc.Get("title.text").String())
	assert.Equal(t, "BTC-USDT-SWAP", doc.Get("xAxis.0.data.0").String())
	assert.Equal(t, "ETH-USDT-SWAP", doc.Get("xAxis.0.data.1").String())
	assert.Equal(t, "bar", doc.Get("series.0.type").String())
	assert.Equal(t, 1000.0, doc.Get("series.0.data.0.value").Float())
	assert.Equal(t, -25.5, doc.Get("series.0.data.1.value").Float())
	assert.Equal(t, colorGain, doc.Get("series.0.data.0.itemStyle.color").String())
	assert.Equal(t, colorLoss, doc.Get("series.0.data.1.itemStyle.color").String())
}

func TestOptions_Empty(t *testing.T) {
	raw, err := json.Marshal(Options(presenter.PnLSeries{}))
	require.NoError(t, err)
	assert.Equal(t, SeriesName, gjson.GetBytes(raw, "series.0.name").String())
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, presenter.PnLSeries{Labels: []string{"BTC-USDT-SWAP"}, Values: []float64{1}}))
	assert.Contains(t, buf.String(), "BTC-USDT-SWAP")
	assert.Contains(t, buf.String(), "echarts")
}
