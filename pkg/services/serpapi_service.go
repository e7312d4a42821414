package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"smwu-sales-api/pkg/models"
)

const serpAPIBaseURL = "https://serpapi.com/search.json"

// DefaultSearchLocation is used when a keyword-insight request omits one.
const DefaultSearchLocation = "Seoul"

// ErrMissingAPIKey is returned when SERPAPI_API_KEY is not configured. The
// check is lazy: a missing key fails the request, not the process start.
var ErrMissingAPIKey = errors.New("SERPAPI_API_KEY is not configured")

// SerpAPIService fetches Google search results through SerpAPI and reshapes
// them into the keyword-insight payload.
type SerpAPIService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSerpAPIService creates a SerpAPI client. An empty apiKey is accepted
// here; AnalyzeKeyword rejects it per call.
func NewSerpAPIService(apiKey string) *SerpAPIService {
	return &SerpAPIService{
		apiKey:  apiKey,
		baseURL: serpAPIBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// serpSearchResponse mirrors the provider fields the insight payload needs.
type serpSearchResponse struct {
	SearchMetadata struct {
		CreatedAt string `json:"created_at"`
	} `json:"search_metadata"`
	SearchInformation struct {
		TotalResults int64 `json:"total_results"`
	} `json:"search_information"`
	OrganicResults  []models.SearchResult  `json:"organic_results"`
	RelatedSearches []models.RelatedSearch `json:"related_searches"`
}

// AnalyzeKeyword runs a Korean-market Google search for the keyword and
// reshapes the provider response into a KeywordInsight. At most five organic
// results are kept.
func (s *SerpAPIService) AnalyzeKeyword(ctx context.Context, keyword, location string) (*models.KeywordInsight, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if location == "" {
		location = DefaultSearchLocation
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("google_domain", "google.co.kr")
	params.Set("q", keyword)
	params.Set("api_key", s.apiKey)
	params.Set("location", location)
	params.Set("hl", "ko")
	params.Set("gl", "kr")
	params.Set("num", "5")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search provider call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var parsed serpSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := parsed.OrganicResults
	if len(results) > 5 {
		results = results[:5]
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	related := parsed.RelatedSearches
	if related == nil {
		related = []models.RelatedSearch{}
	}

	return &models.KeywordInsight{
		Keyword:         keyword,
		Timestamp:       parsed.SearchMetadata.CreatedAt,
		TotalResults:    parsed.SearchInformation.TotalResults,
		SearchResults:   results,
		RelatedSearches: related,
	}, nil
}
