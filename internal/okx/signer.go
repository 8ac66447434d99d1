package okx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Header names required on every private REST call.
const (
	HeaderAccessKey        = "OK-ACCESS-KEY"
	HeaderAccessSign       = "OK-ACCESS-SIGN"
	HeaderAccessTimestamp  = "OK-ACCESS-TIMESTAMP"
	HeaderAccessPassphrase = "OK-ACCESS-PASSPHRASE"
)

// Timestamp renders t as an ISO-8601 UTC string with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Sign returns base64(HMAC-SHA256(secret, timestamp+method+requestPath+body)).
// requestPath includes the query string exactly as sent.
func Sign(secret, timestamp, method, requestPath, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + method + requestPath + body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignedHeaders builds the full header set for one request.
func SignedHeaders(creds Credentials, timestamp, method, requestPath, body string) map[string]string {
	return map[string]string{
		HeaderAccessKey:        creds.APIKey,
		HeaderAccessSign:       Sign(creds.Secret, timestamp, method, requestPath, body),
		HeaderAccessTimestamp:  timestamp,
		HeaderAccessPassphrase: creds.Passphrase,
		"Content-Type":         "application/json",
	}
}
