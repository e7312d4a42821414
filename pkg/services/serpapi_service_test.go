package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeKeywordMissingAPIKey(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	s := NewSerpAPIService("")
	s.baseURL = server.URL

	insight, err := s.AnalyzeKeyword(context.Background(), "카페", "")
	assert.Nil(t, insight)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	// The key check happens before any provider call.
	assert.Equal(t, 0, calls)
}

func TestAnalyzeKeywordReshapesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "google", query.Get("engine"))
		assert.Equal(t, "google.co.kr", query.Get("google_domain"))
		assert.Equal(t, "카페", query.Get("q"))
		assert.Equal(t, "Seoul", query.Get("location"))
		assert.Equal(t, "test-key", query.Get("api_key"))

		w.Write([]byte(`{
			"search_metadata": {"created_at": "2024-07-01 09:00:00 UTC"},
			"search_information": {"total_results": 1234567},
			"organic_results": [
				{"position": 1, "title": "r1", "link": "https://a"},
				{"position": 2, "title": "r2", "link": "https://b"},
				{"position": 3, "title": "r3", "link": "https://c"},
				{"position": 4, "title": "r4", "link": "https://d"},
				{"position": 5, "title": "r5", "link": "https://e"},
				{"position": 6, "title": "r6", "link": "https://f"}
			],
			"related_searches": [{"query": "카페 추천"}]
		}`))
	}))
	defer server.Close()

	s := NewSerpAPIService("test-key")
	s.baseURL = server.URL

	insight, err := s.AnalyzeKeyword(context.Background(), "카페", "")
	assert.NoError(t, err)
	assert.Equal(t, "카페", insight.Keyword)
	assert.Equal(t, "2024-07-01 09:00:00 UTC", insight.Timestamp)
	assert.Equal(t, int64(1234567), insight.TotalResults)
	// At most five organic results are kept.
	assert.Len(t, insight.SearchResults, 5)
	assert.Equal(t, "r1", insight.SearchResults[0].Title)
	assert.Equal(t, "카페 추천", insight.RelatedSearches[0].Query)
}

func TestAnalyzeKeywordEmptyProviderSections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"search_metadata": {}, "search_information": {}}`))
	}))
	defer server.Close()

	s := NewSerpAPIService("test-key")
	s.baseURL = server.URL

	insight, err := s.AnalyzeKeyword(context.Background(), "카페", "강남구")
	assert.NoError(t, err)
	// Absent provider sections become empty slices, never null.
	assert.NotNil(t, insight.SearchResults)
	assert.Empty(t, insight.SearchResults)
	assert.NotNil(t, insight.RelatedSearches)
	assert.Empty(t, insight.RelatedSearches)
}
