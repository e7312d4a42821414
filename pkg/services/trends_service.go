package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smwu-sales-api/pkg/models"
)

const (
	trendsBaseURL = "https://trends.google.com/trends/api"

	// maxKeywords is the provider-side limit on compared keywords.
	maxKeywords = 5
)

// Widget id prefixes returned by the explore endpoint.
const (
	widgetTimeseries     = "TIMESERIES"
	widgetGeoMap         = "GEO_MAP"
	widgetRelatedTopics  = "RELATED_TOPICS"
	widgetRelatedQueries = "RELATED_QUERIES"
)

// ErrTooManyKeywords is returned before any provider call when a request
// exceeds the keyword limit.
var ErrTooManyKeywords = errors.New("a maximum of 5 keywords is supported")

// TrendsService talks to the Google Trends web API: one explore call hands
// out per-widget tokens, then each widget endpoint is fetched with its token.
type TrendsService struct {
	client  *http.Client
	baseURL string
	hl      string
	tz      int
	retry   RetryPolicy
}

// NewTrendsService creates a trends client for the Korean locale (UTC+9).
func NewTrendsService() *TrendsService {
	// The trends endpoints want the session cookies Google sets on the first
	// request, so the client carries a jar.
	jar, _ := cookiejar.New(nil)
	return &TrendsService{
		client: &http.Client{
			Timeout: 20 * time.Second,
			Jar:     jar,
		},
		baseURL: trendsBaseURL,
		hl:      "ko",
		tz:      540,
		retry:   DefaultRelatedRetryPolicy(),
	}
}

// exploreWidget is one entry of the explore response. Request is kept raw and
// passed back verbatim (or lightly amended) to the widget endpoints.
type exploreWidget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

func validateKeywords(keywords []string) error {
	if len(keywords) > maxKeywords {
		return fmt.Errorf("%w: got %d", ErrTooManyKeywords, len(keywords))
	}
	return nil
}

func normalizeTrendRequest(req *models.TrendRequest) {
	if req.Timeframe == "" {
		req.Timeframe = "today 3-m"
	}
	if req.Geo == "" {
		req.Geo = "KR"
	}
}

// InterestOverTime fetches the interest timeline for up to five keywords.
// property selects the search surface ("" web, "images", "news", "youtube",
// "froogle"). A nil result means the provider had no data.
func (s *TrendsService) InterestOverTime(ctx context.Context, req *models.TrendRequest, property string) (*models.TimelineData, error) {
	if err := validateKeywords(req.Keywords); err != nil {
		return nil, err
	}
	normalizeTrendRequest(req)

	widgets, err := s.explore(ctx, req, property)
	if err != nil {
		return nil, err
	}
	widget, ok := findWidget(widgets, widgetTimeseries)
	if !ok {
		return nil, nil
	}

	body, err := s.getJSON(ctx, s.baseURL+"/widgetdata/multiline", s.widgetParams(widget))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Default struct {
			TimelineData []struct {
				Time  string `json:"time"`
				Value []int  `json:"value"`
			} `json:"timelineData"`
		} `json:"default"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode timeline response: %w", err)
	}
	if len(parsed.Default.TimelineData) == 0 {
		return nil, nil
	}

	data := &models.TimelineData{
		Values: make(map[string][]int, len(req.Keywords)),
	}
	for _, point := range parsed.Default.TimelineData {
		seconds, err := strconv.ParseInt(point.Time, 10, 64)
		if err != nil {
			continue
		}
		data.Dates = append(data.Dates, time.Unix(seconds, 0).UTC().Format("2006-01-02 15:04:05"))
		for i, keyword := range req.Keywords {
			value := 0
			if i < len(point.Value) {
				value = point.Value[i]
			}
			data.Values[keyword] = append(data.Values[keyword], value)
		}
	}
	return data, nil
}

// InterestByRegion fetches per-region interest at the given resolution
// (COUNTRY, REGION, CITY or DMA). A nil result means no data.
func (s *TrendsService) InterestByRegion(ctx context.Context, req *models.TrendRequest, resolution string) (*models.RegionData, error) {
	if err := validateKeywords(req.Keywords); err != nil {
		return nil, err
	}
	normalizeTrendRequest(req)

	widgets, err := s.explore(ctx, req, "")
	if err != nil {
		return nil, err
	}
	widget, ok := findWidget(widgets, widgetGeoMap)
	if !ok {
		return nil, nil
	}

	// The geo widget request must be amended with the resolution before the
	// token is redeemed. Low-volume regions are included, matching upstream.
	var widgetReq map[string]interface{}
	if err := json.Unmarshal(widget.Request, &widgetReq); err != nil {
		return nil, fmt.Errorf("decode geo widget request: %w", err)
	}
	widgetReq["resolution"] = resolution
	widgetReq["includeLowSearchVolumeGeos"] = true
	amended, err := json.Marshal(widgetReq)
	if err != nil {
		return nil, err
	}
	widget.Request = amended

	body, err := s.getJSON(ctx, s.baseURL+"/widgetdata/comparedgeo", s.widgetParams(widget))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Default struct {
			GeoMapData []struct {
				GeoName string `json:"geoName"`
				Value   []int  `json:"value"`
			} `json:"geoMapData"`
		} `json:"default"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode region response: %w", err)
	}
	if len(parsed.Default.GeoMapData) == 0 {
		return nil, nil
	}

	data := &models.RegionData{
		Values: make(map[string][]int, len(req.Keywords)),
	}
	for _, region := range parsed.Default.GeoMapData {
		data.Regions = append(data.Regions, region.GeoName)
		for i, keyword := range req.Keywords {
			value := 0
			if i < len(region.Value) {
				value = region.Value[i]
			}
			data.Values[keyword] = append(data.Values[keyword], value)
		}
	}
	return data, nil
}

// RelatedTopics fetches topics related to each keyword, retrying per the
// service policy and falling back to placeholders. See related.
func (s *TrendsService) RelatedTopics(ctx context.Context, req *models.TrendRequest) (map[string]models.RelatedData, error) {
	return s.related(ctx, req, widgetRelatedTopics)
}

// RelatedQueries fetches queries related to each keyword, retrying per the
// service policy and falling back to placeholders. See related.
func (s *TrendsService) RelatedQueries(ctx context.Context, req *models.TrendRequest) (map[string]models.RelatedData, error) {
	return s.related(ctx, req, widgetRelatedQueries)
}

// related runs the explore/widget dance for the per-keyword related widgets
// under the retry policy. Success means at least one keyword produced data.
// When the attempts are exhausted it returns whatever the last attempt
// produced, padded with zero-valued placeholders for every keyword, together
// with the last error; it never fails the lookup outright (beyond the keyword
// precondition).
func (s *TrendsService) related(ctx context.Context, req *models.TrendRequest, prefix string) (map[string]models.RelatedData, error) {
	if err := validateKeywords(req.Keywords); err != nil {
		return nil, err
	}
	normalizeTrendRequest(req)

	var result map[string]models.RelatedData
	retryErr := s.retry.Do(func() (bool, error) {
		widgets, err := s.explore(ctx, req, "")
		if err != nil {
			return false, err
		}

		data := make(map[string]models.RelatedData, len(req.Keywords))
		gotSignal := false
		index := 0
		for _, widget := range widgets {
			// Explore emits one related widget per keyword, in request order.
			if !strings.HasPrefix(widget.ID, prefix) || index >= len(req.Keywords) {
				continue
			}
			keyword := req.Keywords[index]
			index++

			related, err := s.fetchRelatedWidget(ctx, widget)
			if err != nil {
				return false, err
			}
			if len(related.Top) > 0 || len(related.Rising) > 0 {
				gotSignal = true
			}
			data[keyword] = *related
		}
		result = data
		return gotSignal, nil
	})

	if result == nil {
		result = make(map[string]models.RelatedData, len(req.Keywords))
	}
	for _, keyword := range req.Keywords {
		if _, ok := result[keyword]; !ok {
			result[keyword] = emptyRelatedData()
		}
	}
	if retryErr != nil {
		return result, fmt.Errorf("related data lookup gave up after retries: %w", retryErr)
	}
	return result, nil
}

func emptyRelatedData() models.RelatedData {
	return models.RelatedData{
		Rising: []models.RelatedEntry{},
		Top:    []models.RelatedEntry{},
	}
}

// Suggestions fetches autocomplete suggestions for a single keyword.
func (s *TrendsService) Suggestions(ctx context.Context, keyword string) ([]models.Suggestion, error) {
	params := url.Values{}
	params.Set("hl", s.hl)
	params.Set("tz", strconv.Itoa(s.tz))

	body, err := s.getJSON(ctx, s.baseURL+"/autocomplete/"+url.PathEscape(keyword), params)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Default struct {
			Topics []models.Suggestion `json:"topics"`
		} `json:"default"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode suggestions response: %w", err)
	}
	return parsed.Default.Topics, nil
}

// explore requests widget tokens for the comparison set. Every widget-data
// call must be preceded by this.
func (s *TrendsService) explore(ctx context.Context, req *models.TrendRequest, property string) ([]exploreWidget, error) {
	comparisonItems := make([]map[string]interface{}, 0, len(req.Keywords))
	for _, keyword := range req.Keywords {
		comparisonItems = append(comparisonItems, map[string]interface{}{
			"keyword": keyword,
			"geo":     req.Geo,
			"time":    req.Timeframe,
		})
	}
	payload, err := json.Marshal(map[string]interface{}{
		"comparisonItem": comparisonItems,
		"category":       req.Category,
		"property":       property,
	})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("hl", s.hl)
	params.Set("tz", strconv.Itoa(s.tz))
	params.Set("req", string(payload))

	body, err := s.getJSON(ctx, s.baseURL+"/explore", params)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Widgets []exploreWidget `json:"widgets"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode explore response: %w", err)
	}
	return parsed.Widgets, nil
}

// fetchRelatedWidget redeems one related widget token. rankedList[0] carries
// the top entries, rankedList[1] the rising ones.
func (s *TrendsService) fetchRelatedWidget(ctx context.Context, widget exploreWidget) (*models.RelatedData, error) {
	body, err := s.getJSON(ctx, s.baseURL+"/widgetdata/relatedsearches", s.widgetParams(widget))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Default struct {
			RankedList []struct {
				RankedKeyword []struct {
					Query string `json:"query"`
					Topic struct {
						Mid   string `json:"mid"`
						Title string `json:"title"`
						Type  string `json:"type"`
					} `json:"topic"`
					Value          int    `json:"value"`
					FormattedValue string `json:"formattedValue"`
					Link           string `json:"link"`
				} `json:"rankedKeyword"`
			} `json:"rankedList"`
		} `json:"default"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode related response: %w", err)
	}

	data := emptyRelatedData()
	for i, list := range parsed.Default.RankedList {
		entries := make([]models.RelatedEntry, 0, len(list.RankedKeyword))
		for _, ranked := range list.RankedKeyword {
			entries = append(entries, models.RelatedEntry{
				Query:          ranked.Query,
				Title:          ranked.Topic.Title,
				Type:           ranked.Topic.Type,
				Value:          ranked.Value,
				FormattedValue: ranked.FormattedValue,
				Link:           ranked.Link,
			})
		}
		switch i {
		case 0:
			data.Top = entries
		case 1:
			data.Rising = entries
		}
	}
	return &data, nil
}

func (s *TrendsService) widgetParams(widget exploreWidget) url.Values {
	params := url.Values{}
	params.Set("hl", s.hl)
	params.Set("tz", strconv.Itoa(s.tz))
	params.Set("req", string(widget.Request))
	params.Set("token", widget.Token)
	return params
}

func findWidget(widgets []exploreWidget, prefix string) (exploreWidget, bool) {
	for _, widget := range widgets {
		if strings.HasPrefix(widget.ID, prefix) {
			return widget, true
		}
	}
	return exploreWidget{}, false
}

// getJSON performs a GET and strips the anti-XSSI prefix (")]}'...") Google
// prepends to its JSON bodies.
func (s *TrendsService) getJSON(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends API returned status %d for %s", resp.StatusCode, endpoint)
	}
	return stripJSONPrefix(body), nil
}

func stripJSONPrefix(body []byte) []byte {
	if i := bytes.IndexAny(body, "{["); i > 0 {
		return body[i:]
	}
	return body
}
