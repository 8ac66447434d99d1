package okx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2020, 12, 8, 9, 8, 57, 715_000_000, time.UTC)
}

func TestFetchPositions_SignsRequest(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"0","msg":"","data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithClock(fixedClock))
	env, err := client.FetchPositions(context.Background(), Credentials{APIKey: "key", Secret: "secret", Passphrase: "pass"})
	require.NoError(t, err)
	assert.True(t, env.OK())
	assert.Equal(t, http.StatusOK, env.HTTPStatus)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, PositionsPath, got.URL.Path)
	assert.Equal(t, "instType=SWAP", got.URL.RawQuery)
	assert.Equal(t, "key", got.Header.Get(HeaderAccessKey))
	assert.Equal(t, "pass", got.Header.Get(HeaderAccessPassphrase))
	assert.Equal(t, "2020-12-08T09:08:57.715Z", got.Header.Get(HeaderAccessTimestamp))
	assert.Equal(t, "SUkMvlC6Sm7334i0Nkg8byQcuMuJWvMN2bZ1PuwhTUE=", got.Header.Get(HeaderAccessSign))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
}

func TestFetchPositions_BusinessErrorIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"50113","msg":"Invalid Sign"}`))
	}))
	defer srv.Close()

	env, err := NewClient(srv.URL).FetchPositions(context.Background(), Credentials{APIKey: "k", Secret: "s", Passphrase: "p"})
	require.NoError(t, err)
	assert.False(t, env.OK())
	assert.Equal(t, "50113", env.Code)
	assert.Equal(t, "Invalid Sign", env.Msg)
	assert.Equal(t, http.StatusUnauthorized, env.HTTPStatus)
}

func TestFetchPositions_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchPositions(context.Background(), Credentials{APIKey: "k", Secret: "s", Passphrase: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}

func TestFetchPositions_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, WithTimeout(time.Second)).FetchPositions(context.Background(), Credentials{APIKey: "k", Secret: "s", Passphrase: "p"})
	require.Error(t, err)
}

func TestDecodePositions(t *testing.T) {
	raw := []byte(`{"code":"0","msg":"","data":[
		{"instType":"SWAP","instId":"BTC-USDT-SWAP","pos":"10","upl":"1.5","notionalUsd":""},
		{"instType":"MARGIN","instId":"ETH-USDT"}
	]}`)
	positions, err := DecodePositions(raw)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	assert.Equal(t, "BTC-USDT-SWAP", positions[0].InstID)
	assert.Equal(t, "SWAP", positions[0].InstType)
	assert.Equal(t, "10", positions[0].Pos)
	assert.True(t, positions[0].Has("notionalUsd"))
	assert.False(t, positions[0].Has("bePx"))
	assert.Equal(t, []string{"markPx", "avgPx"}, positions[0].Missing("pos", "markPx", "avgPx"))
	assert.Equal(t, "MARGIN", positions[1].InstType)
}

func TestDecodePositions_RejectsBadShape(t *testing.T) {
	cases := map[string]string{
		"data not array":    `{"code":"0","data":{}}`,
		"item without type": `{"code":"0","data":[{"instId":"BTC-USDT-SWAP"}]}`,
		"missing data":      `{"code":"0","msg":""}`,
		"not json":          `{"code":"0",`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePositions([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestParseEnvelope(t *testing.T) {
	env, err := ParseEnvelope(http.StatusOK, []byte(`{"code":"1","msg":"Invalid Sign"}`))
	require.NoError(t, err)
	assert.Equal(t, "1", env.Code)
	assert.Equal(t, "Invalid Sign", env.Msg)

	_, err = ParseEnvelope(http.StatusOK, []byte(`[1,2]`))
	assert.Error(t, err)

	_, err = ParseEnvelope(http.StatusOK, []byte(`{"msg":"no code"}`))
	assert.Error(t, err)
}
