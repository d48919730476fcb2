package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

func seg(v any) string {
	b, _ := json.Marshal(v)
	return base64.RawURLEncoding.EncodeToString(b)
}

// compact builds header.payload.signature with an unverifiable signature,
// which is all the codec ever looks at.
func compact(claims any) string {
	header := seg(map[string]string{"alg": "HS256", "typ": "JWT"})
	return header + "." + seg(claims) + ".sig"
}

func TestIsExpired_ExpBoundaries(t *testing.T) {
	t.Parallel()

	future := compact(map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
	if IsExpired(future) {
		t.Fatalf("future exp must not be expired")
	}

	past := compact(map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})
	if !IsExpired(past) {
		t.Fatalf("past exp must be expired")
	}
}

func TestIsExpired_ExpEqualNowIsValid(t *testing.T) {
	fixed := time.Unix(1_700_000_000, 0)
	old := now
	now = func() time.Time { return fixed }
	defer func() { now = old }()

	tok := compact(map[string]any{"exp": fixed.Unix()})
	if IsExpired(tok) {
		t.Fatalf("exp == now must still be valid (strictly-before rule)")
	}
	tok = compact(map[string]any{"exp": fixed.Unix() - 1})
	if !IsExpired(tok) {
		t.Fatalf("exp one second in the past must be expired")
	}
}

func TestIsExpired_MalformedFailClosed(t *testing.T) {
	t.Parallel()

	nonJSON := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	cases := map[string]string{
		"empty":          "",
		"single segment": "justonesegment",
		"two segments":   seg(map[string]string{"alg": "none"}) + "." + seg(map[string]any{"exp": 1}),
		"bad base64":     "aaa.!!!not-base64!!!.bbb",
		"non-json body":  "aaa." + nonJSON + ".bbb",
		"missing exp":    compact(map[string]any{"sub": "u1"}),
		"non-numeric":    compact(map[string]any{"exp": "tomorrow"}),
	}
	for name, tok := range cases {
		if !IsExpired(tok) {
			t.Fatalf("%s: malformed token must read as expired", name)
		}
	}
}

func TestExpiresAt(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(30 * time.Minute).Unix()
	got, ok := ExpiresAt(compact(map[string]any{"exp": exp}))
	if !ok || got.Unix() != exp {
		t.Fatalf("ExpiresAt = %v ok=%v, want unix %d", got, ok, exp)
	}
	if _, ok := ExpiresAt("garbage"); ok {
		t.Fatalf("ExpiresAt on garbage must not report ok")
	}
}
