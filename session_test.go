package scrutinaut_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/scrutinaut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("empty session marshals to empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(scrutinaut.NewSession())

		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("keeps URLs in insertion order", func(t *testing.T) {
		t.Parallel()

		s := scrutinaut.NewSession()
		s.Set("https://b.example", scrutinaut.NewExtractResult())
		s.Set("https://a.example", scrutinaut.NewExtractResult())

		assert.Equal(t, []string{"https://b.example", "https://a.example"}, s.URLs())
		assert.Equal(t, 2, s.Len())
	})

	t.Run("last write wins for duplicate URL", func(t *testing.T) {
		t.Parallel()

		first := scrutinaut.NewExtractResult()
		first.Title = "First"
		second := scrutinaut.NewExtractResult()
		second.Title = "Second"

		s := scrutinaut.NewSession()
		s.Set("https://a.example", first)
		s.Set("https://b.example", scrutinaut.NewExtractResult())
		s.Set("https://a.example", second)

		got, ok := s.Get("https://a.example")
		require.True(t, ok)
		assert.Equal(t, "Second", got.Title)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.URLs())
	})

	t.Run("does not canonicalize URLs", func(t *testing.T) {
		t.Parallel()

		s := scrutinaut.NewSession()
		s.Set("https://example.com", scrutinaut.NewExtractResult())
		s.Set("https://example.com/", scrutinaut.NewExtractResult())

		assert.Equal(t, 2, s.Len())
	})

	t.Run("marshals results keyed by URL", func(t *testing.T) {
		t.Parallel()

		r := scrutinaut.NewExtractResult()
		r.Title = "Home"
		r.Links = []string{"/a?x=1&y=2"}
		r.OpenGraph["og:type"] = "website"

		s := scrutinaut.NewSession()
		s.Set("https://example.com", r)

		data, err := json.Marshal(s)
		require.NoError(t, err)

		assert.JSONEq(t, `{"https://example.com":{
			"title":"Home",
			"headings":[],
			"links":["/a?x=1&y=2"],
			"meta_description":"",
			"images":[],
			"opengraph":{"og:type":"website"}
		}}`, string(data))
	})

	t.Run("returns a copy of URLs", func(t *testing.T) {
		t.Parallel()

		s := scrutinaut.NewSession()
		s.Set("https://example.com", scrutinaut.NewExtractResult())

		urls := s.URLs()
		urls[0] = "mutated"

		assert.Equal(t, []string{"https://example.com"}, s.URLs())
	})
}
