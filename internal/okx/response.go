package okx

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

//go:embed positions.schema.json
var positionsSchemaJSON string

var (
	schemaOnce     sync.Once
	positionSchema *jsonschema.Schema
	schemaErr      error
)

func compiledPositionsSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("positions.schema.json", strings.NewReader(positionsSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		positionSchema, schemaErr = compiler.Compile("positions.schema.json")
	})
	return positionSchema, schemaErr
}

// ParseEnvelope reads code/msg from a response body without judging them.
func ParseEnvelope(status int, body []byte) (Envelope, error) {
	if !gjson.ValidBytes(body) {
		return Envelope{}, fmt.Errorf("invalid json response (http %d): %s", status, snippet(body))
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return Envelope{}, fmt.Errorf("unexpected response root (http %d): %s", status, snippet(body))
	}
	code := parsed.Get("code")
	if !code.Exists() {
		return Envelope{}, fmt.Errorf("response missing code (http %d): %s", status, snippet(body))
	}
	return Envelope{
		Code:       code.String(),
		Msg:        parsed.Get("msg").String(),
		HTTPStatus: status,
		Raw:        body,
	}, nil
}

// DecodePositions validates the body shape and extracts the data array in
// response order.
func DecodePositions(raw []byte) ([]RawPosition, error) {
	schema, err := compiledPositionsSchema()
	if err != nil {
		return nil, fmt.Errorf("compile positions schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode positions: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("unexpected positions payload: %w", err)
	}
	data := gjson.GetBytes(raw, "data")
	out := make([]RawPosition, 0, len(data.Array()))
	data.ForEach(func(_, item gjson.Result) bool {
		out = append(out, positionFromJSON(item))
		return true
	})
	return out, nil
}

func positionFromJSON(item gjson.Result) RawPosition {
	p := RawPosition{present: make(map[string]struct{})}
	item.ForEach(func(key, _ gjson.Result) bool {
		p.present[key.String()] = struct{}{}
		return true
	})
	fields := map[string]*string{
		"instId":      &p.InstID,
		"instType":    &p.InstType,
		"pos":         &p.Pos,
		"ccy":         &p.Ccy,
		"notionalUsd": &p.NotionalUsd,
		"markPx":      &p.MarkPx,
		"avgPx":       &p.AvgPx,
		"liqPx":       &p.LiqPx,
		"bePx":        &p.BePx,
		"upl":         &p.Upl,
		"uplRatio":    &p.UplRatio,
		"mgnRatio":    &p.MgnRatio,
		"margin":      &p.Margin,
		"lever":       &p.Lever,
		"mgnMode":     &p.MgnMode,
		"adl":         &p.Adl,
	}
	for key, dst := range fields {
		*dst = item.Get(key).String()
	}
	return p
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
