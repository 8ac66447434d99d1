// Package presenter turns a positions response into table rows and a PnL series.
package presenter

import (
	"fmt"
	"strings"
	"time"

	"okxpos/internal/format"
	"okxpos/internal/okx"
)

// Present maps a positions envelope to a Result. It has no side effects.
//
// A non-"0" code yields *BusinessError. Malformed payloads, missing fields and
// a non-numeric upl are plain errors; in every error case no rows are returned.
func Present(env okx.Envelope, at time.Time) (Result, error) {
	if !env.OK() {
		return Result{}, &BusinessError{Code: env.Code, Msg: env.Msg}
	}
	positions, err := okx.DecodePositions(env.Raw)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Rows:   make([]DisplayRow, 0, len(positions)),
		Series: PnLSeries{Labels: []string{}, Values: []float64{}},
		At:     at,
	}
	for _, p := range positions {
		if p.InstType != okx.SwapInstType {
			continue
		}
		row, pnl, err := presentPosition(p)
		if err != nil {
			return Result{}, err
		}
		res.Rows = append(res.Rows, row)
		res.Series.Labels = append(res.Series.Labels, p.InstID)
		res.Series.Values = append(res.Series.Values, pnl)
	}
	return res, nil
}

func presentPosition(p okx.RawPosition) (DisplayRow, float64, error) {
	if missing := p.Missing(okx.RequiredFields...); len(missing) > 0 {
		return DisplayRow{}, 0, fmt.Errorf("position %s missing %s", p.InstID, strings.Join(missing, ", "))
	}
	pnl, ok := format.Float(p.Upl)
	if !ok {
		return DisplayRow{}, 0, fmt.Errorf("position %s: upl %q is not a number", p.InstID, p.Upl)
	}
	return DisplayRow{
		InstID:   p.InstID,
		Size:     positionSize(p),
		MarkPx:   format.Number(p.MarkPx),
		EntryPx:  format.Number(p.AvgPx),
		LiqPx:    format.Number(p.LiqPx),
		BePx:     format.Number(p.BePx),
		Upl:      format.PnL(p.Upl, p.UplRatio),
		MgnRatio: format.Number(p.MgnRatio),
		Margin:   format.Number(p.Margin),
		Lever:    format.Number(p.Lever),
		MgnMode:  p.MgnMode,
		Adl:      format.Number(p.Adl),
	}, pnl, nil
}

// positionSize prefers the USD notional and falls back to contracts plus currency.
func positionSize(p okx.RawPosition) string {
	if p.NotionalUsd != "" {
		return p.NotionalUsd + " USD"
	}
	return p.Pos + " " + p.Ccy
}
