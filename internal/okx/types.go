package okx

// Credentials authenticate private REST calls. All three parts are required.
type Credentials struct {
	APIKey     string
	Secret     string
	Passphrase string
}

// Complete reports whether every credential part is set.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.Secret != "" && c.Passphrase != ""
}

// Envelope is the top level of every OKX v5 REST response.
// Code "0" means success; anything else carries a human readable Msg.
type Envelope struct {
	Code       string
	Msg        string
	HTTPStatus int
	Raw        []byte
}

// OK reports whether the exchange accepted the request.
func (e Envelope) OK() bool {
	return e.Code == "0"
}

// RawPosition is one entry of /api/v5/account/positions, kept as the raw
// strings the exchange sent.
type RawPosition struct {
	InstID      string
	InstType    string
	Pos         string
	Ccy         string
	NotionalUsd string
	MarkPx      string
	AvgPx       string
	LiqPx       string
	BePx        string
	Upl         string
	UplRatio    string
	MgnRatio    string
	Margin      string
	Lever       string
	MgnMode     string
	Adl         string

	present map[string]struct{}
}

// RequiredFields are read unconditionally for every SWAP row.
var RequiredFields = []string{
	"instId", "pos", "markPx", "avgPx", "liqPx", "upl", "uplRatio",
	"mgnRatio", "margin", "lever", "mgnMode",
}

// Has reports whether the field key was present in the response object.
func (p RawPosition) Has(key string) bool {
	_, ok := p.present[key]
	return ok
}

// Missing returns the subset of keys absent from the response object.
func (p RawPosition) Missing(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if !p.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
