package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVideoRef(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want VideoRef
	}{
		{"bare string", "http://x", VideoRef{URL: "http://x"}},
		{"full object", map[string]interface{}{"url": "http://x", "public_id": "p"}, VideoRef{URL: "http://x", PublicID: "p"}},
		{"object without url", map[string]interface{}{"public_id": "p"}, VideoRef{}},
		{"empty object", map[string]interface{}{}, VideoRef{}},
		{"absent", nil, VideoRef{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeVideoRef(tc.in)
			assert.Equal(t, tc.want, got)

			// Re-applying normalization must be a no-op.
			assert.Equal(t, got, NormalizeVideoRef(got))
		})
	}
}

func TestVideoRefUnmarshalShapes(t *testing.T) {
	type holder struct {
		VideoURL VideoRef `json:"videoUrl"`
	}

	cases := []struct {
		name string
		body string
		want VideoRef
	}{
		{"string shape", `{"videoUrl":"http://x"}`, VideoRef{URL: "http://x"}},
		{"object shape", `{"videoUrl":{"url":"http://x","public_id":"p"}}`, VideoRef{URL: "http://x", PublicID: "p"}},
		{"object without url", `{"videoUrl":{"public_id":"p"}}`, VideoRef{}},
		{"null", `{"videoUrl":null}`, VideoRef{}},
		{"missing", `{}`, VideoRef{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var h holder
			assert.NoError(t, json.Unmarshal([]byte(tc.body), &h))
			assert.Equal(t, tc.want, h.VideoURL)
		})
	}
}
