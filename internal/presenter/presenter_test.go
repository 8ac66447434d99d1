package presenter

import (
	"errors"
	"testing"
	"time"

	"okxpos/internal/okx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const btcPosition = `{"instType":"SWAP","instId":"BTC-USDT-SWAP","pos":"10","ccy":"USDT","markPx":"50000","avgPx":"49000","liqPx":"40000","upl":"1000","uplRatio":"0.02","mgnRatio":"0.1","margin":"5000","lever":"10","mgnMode":"cross","adl":"2"}`

func envelope(t *testing.T, body string) okx.Envelope {
	t.Helper()
	env, err := okx.ParseEnvelope(200, []byte(body))
	require.NoError(t, err)
	return env
}

func TestPresent_SingleSwap(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	res, err := Present(envelope(t, `{"code":"0","data":[`+btcPosition+`]}`), at)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, "BTC-USDT-SWAP", row.InstID)
	assert.Equal(t, "10 USDT", row.Size)
	assert.Equal(t, "50000.0000", row.MarkPx)
	assert.Equal(t, "49000.0000", row.EntryPx)
	assert.Equal(t, "40000.0000", row.LiqPx)
	assert.Equal(t, "", row.BePx)
	assert.Equal(t, "1000.0000 (0.0200%)", row.Upl)
	assert.Equal(t, "0.1000", row.MgnRatio)
	assert.Equal(t, "5000.0000", row.Margin)
	assert.Equal(t, "10.0000", row.Lever)
	assert.Equal(t, "cross", row.MgnMode)
	assert.Equal(t, "2.0000", row.Adl)

	assert.Equal(t, PnLSeries{Labels: []string{"BTC-USDT-SWAP"}, Values: []float64{1000.0}}, res.Series)
	assert.Equal(t, at, res.At)
}

func TestPresent_FiltersNonSwap(t *testing.T) {
	margin := `{"instType":"MARGIN","instId":"ETH-USDT","pos":"1","upl":"5"}`
	res, err := Present(envelope(t, `{"code":"0","data":[`+btcPosition+`,`+margin+`]}`), time.Now())
	require.NoError(t, err)
	assert.Len(t, res.Rows, 1)
	assert.Equal(t, 1, res.Series.Len())
	assert.Equal(t, "BTC-USDT-SWAP", res.Rows[0].InstID)
}

func TestPresent_PreservesOrder(t *testing.T) {
	eth := `{"instType":"SWAP","instId":"ETH-USDT-SWAP","pos":"3","ccy":"USDT","markPx":"3000","avgPx":"3100","liqPx":"","upl":"-300","uplRatio":"-0.1","mgnRatio":"","margin":"100","lever":"5","mgnMode":"isolated"}`
	res, err := Present(envelope(t, `{"code":"0","data":[`+eth+`,`+btcPosition+`]}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH-USDT-SWAP", "BTC-USDT-SWAP"}, res.Series.Labels)
	assert.Equal(t, []float64{-300, 1000}, res.Series.Values)
	assert.Equal(t, "", res.Rows[0].LiqPx)
	assert.Equal(t, "", res.Rows[0].Adl)
}

func TestPresent_NotionalSize(t *testing.T) {
	pos := `{"instType":"SWAP","instId":"SOL-USDT-SWAP","pos":"2","ccy":"USDT","notionalUsd":"345.67","markPx":"1","avgPx":"1","liqPx":"1","upl":"","uplRatio":"","mgnRatio":"1","margin":"1","lever":"3","mgnMode":"cross"}`
	res, err := Present(envelope(t, `{"code":"0","data":[`+pos+`]}`), time.Now())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "345.67 USD", res.Rows[0].Size)
	assert.Equal(t, " (%)", res.Rows[0].Upl)
	assert.Equal(t, []float64{0}, res.Series.Values)
}

func TestPresent_BusinessError(t *testing.T) {
	res, err := Present(envelope(t, `{"code":"1","msg":"Invalid Sign"}`), time.Now())
	require.Error(t, err)

	var be *BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "1", be.Code)
	assert.Contains(t, err.Error(), "Invalid Sign")
	assert.Empty(t, res.Rows)
	assert.Zero(t, res.Series.Len())
}

func TestPresent_UnexpectedPayloads(t *testing.T) {
	cases := map[string]string{
		"missing field": `{"code":"0","data":[{"instType":"SWAP","instId":"X-SWAP","pos":"1"}]}`,
		"bad upl":       `{"code":"0","data":[{"instType":"SWAP","instId":"X","pos":"1","markPx":"1","avgPx":"1","liqPx":"1","upl":"n/a","uplRatio":"0","mgnRatio":"1","margin":"1","lever":"1","mgnMode":"cross"}]}`,
		"data object":   `{"code":"0","data":{}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := Present(envelope(t, body), time.Now())
			require.Error(t, err)
			var be *BusinessError
			assert.False(t, errors.As(err, &be))
			assert.Empty(t, res.Rows)
		})
	}
}
