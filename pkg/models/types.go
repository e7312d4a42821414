package models

// BaseResponse is the common envelope: every endpoint reports status and message.
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope returned for failed requests.
type ErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
	Code   int    `json:"code,omitempty"`
}

// RawSalesRecord is the flat document stored under
// "sales::<district>::<quarter>::<industry>". Field names follow the
// Seoul open-data column codes; fields missing from a document decode to 0.
type RawSalesRecord struct {
	SvcIndutyCd string `json:"svc_induty_cd"`
	AdstrdCdNm  string `json:"adstrd_cd_nm"`

	MonSelngAmt  int64 `json:"mon_selng_amt"`
	TuesSelngAmt int64 `json:"tues_selng_amt"`
	WedSelngAmt  int64 `json:"wed_selng_amt"`
	ThurSelngAmt int64 `json:"thur_selng_amt"`
	FriSelngAmt  int64 `json:"fri_selng_amt"`
	SatSelngAmt  int64 `json:"sat_selng_amt"`
	SunSelngAmt  int64 `json:"sun_selng_amt"`

	Tmzon0006SelngAmt int64 `json:"tmzon_00_06_selng_amt"`
	Tmzon0611SelngAmt int64 `json:"tmzon_06_11_selng_amt"`
	Tmzon1114SelngAmt int64 `json:"tmzon_11_14_selng_amt"`
	Tmzon1417SelngAmt int64 `json:"tmzon_14_17_selng_amt"`
	Tmzon1721SelngAmt int64 `json:"tmzon_17_21_selng_amt"`
	Tmzon2124SelngAmt int64 `json:"tmzon_21_24_selng_amt"`

	MlSelngAmt  int64 `json:"ml_selng_amt"`
	FmlSelngAmt int64 `json:"fml_selng_amt"`

	Agrde10SelngAmt      int64 `json:"agrde_10_selng_amt"`
	Agrde20SelngAmt      int64 `json:"agrde_20_selng_amt"`
	Agrde30SelngAmt      int64 `json:"agrde_30_selng_amt"`
	Agrde40SelngAmt      int64 `json:"agrde_40_selng_amt"`
	Agrde50SelngAmt      int64 `json:"agrde_50_selng_amt"`
	Agrde60AboveSelngAmt int64 `json:"agrde_60_above_selng_amt"`

	MdwkSelngCo  int64 `json:"mdwk_selng_co"`
	WkendSelngCo int64 `json:"wkend_selng_co"`
}

// DailySales holds per-day amounts. JSON keys are the Korean day names the clients expect.
type DailySales struct {
	Data DailySalesData `json:"data"`
}

// DailySalesData holds one amount per day of the week.
type DailySalesData struct {
	Monday    int64 `json:"월요일"`
	Tuesday   int64 `json:"화요일"`
	Wednesday int64 `json:"수요일"`
	Thursday  int64 `json:"목요일"`
	Friday    int64 `json:"금요일"`
	Saturday  int64 `json:"토요일"`
	Sunday    int64 `json:"일요일"`
}

// TimeSales holds amounts per time-of-day bucket.
type TimeSales struct {
	Data TimeSalesData `json:"data"`
}

// TimeSalesData buckets follow the store's six fixed time windows.
type TimeSalesData struct {
	LateNight int64 `json:"심야"`
	Morning   int64 `json:"아침"`
	Lunch     int64 `json:"점심"`
	Afternoon int64 `json:"오후"`
	Evening   int64 `json:"저녁"`
	Night     int64 `json:"야간"`
}

// GenderSales holds amounts by gender.
type GenderSales struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

// AgeSales holds amounts per age bracket.
type AgeSales struct {
	Age10     int64 `json:"10대"`
	Age20     int64 `json:"20대"`
	Age30     int64 `json:"30대"`
	Age40     int64 `json:"40대"`
	Age50     int64 `json:"50대"`
	Age60Plus int64 `json:"60대 이상"`
}

// Demographics groups the gender and age breakdowns.
type Demographics struct {
	Gender GenderSales `json:"gender"`
	Age    AgeSales    `json:"age"`
}

// WeekdayWeekend holds transaction counts for weekdays vs weekends.
type WeekdayWeekend struct {
	Weekday int64 `json:"weekday"`
	Weekend int64 `json:"weekend"`
}

// SalesAnalysis is the nested breakdown built from one raw record.
type SalesAnalysis struct {
	DailySales     DailySales     `json:"daily_sales"`
	TimeBasedSales TimeSales      `json:"time_based_sales"`
	Demographics   Demographics   `json:"demographics"`
	WeekdayWeekend WeekdayWeekend `json:"weekday_weekend"`
}

// IndustrySales is the per-industry entry of the aggregated view.
type IndustrySales struct {
	IndustryName  string        `json:"industry_name"`
	SalesAnalysis SalesAnalysis `json:"sales_analysis"`
}

// DistrictSales is the aggregated view for one (district, quarter) pair.
// Industries contains only the codes a record was found for.
type DistrictSales struct {
	DistrictName string                   `json:"district_name"`
	Quarter      string                   `json:"quarter"`
	Industries   map[string]IndustrySales `json:"industries"`
}

// SalesResponse is the sales endpoint envelope.
type SalesResponse struct {
	BaseResponse
	Data DistrictSales `json:"data"`
}

// KeywordSearchRequest is the keyword-insight request body.
type KeywordSearchRequest struct {
	Keyword  string `json:"keyword" binding:"required"`
	Location string `json:"location"`
}

// SearchResult is one organic result from the search provider.
type SearchResult struct {
	Position      int    `json:"position"`
	Title         string `json:"title"`
	Link          string `json:"link"`
	DisplayedLink string `json:"displayed_link,omitempty"`
	Snippet       string `json:"snippet,omitempty"`
}

// RelatedSearch is one related-search suggestion from the search provider.
type RelatedSearch struct {
	Query string `json:"query"`
	Link  string `json:"link,omitempty"`
}

// KeywordInsight is the reshaped keyword analysis payload.
type KeywordInsight struct {
	Keyword         string          `json:"keyword"`
	Timestamp       string          `json:"timestamp"`
	TotalResults    int64           `json:"total_results"`
	SearchResults   []SearchResult  `json:"search_results"`
	RelatedSearches []RelatedSearch `json:"related_searches"`
}

// KeywordSearchResponse is the keyword-insight endpoint envelope.
type KeywordSearchResponse struct {
	BaseResponse
	Data KeywordInsight `json:"data"`
}

// TrendRequest is the shared request body of the trend endpoints.
type TrendRequest struct {
	Keywords  []string `json:"keywords" binding:"required"`
	Timeframe string   `json:"timeframe"`
	Geo       string   `json:"geo"`
	Category  int      `json:"category"`
}

// KeywordSuggestionRequest asks for autocomplete suggestions on one keyword.
type KeywordSuggestionRequest struct {
	Keyword string `json:"keyword" binding:"required"`
}

// TimelineData maps each keyword to its interest values over the shared dates.
type TimelineData struct {
	Dates  []string         `json:"dates"`
	Values map[string][]int `json:"values"`
}

// RegionData maps each keyword to its interest values over the shared regions.
type RegionData struct {
	Regions []string         `json:"regions"`
	Values  map[string][]int `json:"values"`
}

// RelatedEntry is one related topic or query. Topic entries carry Title/Type,
// query entries carry Query; both carry the interest value.
type RelatedEntry struct {
	Query          string `json:"query,omitempty"`
	Title          string `json:"title,omitempty"`
	Type           string `json:"type,omitempty"`
	Value          int    `json:"value"`
	FormattedValue string `json:"formatted_value,omitempty"`
	Link           string `json:"link,omitempty"`
}

// RelatedData groups rising and top related entries for one keyword.
type RelatedData struct {
	Rising []RelatedEntry `json:"rising"`
	Top    []RelatedEntry `json:"top"`
}

// Suggestion is one autocomplete suggestion for a keyword.
type Suggestion struct {
	Mid   string `json:"mid"`
	Title string `json:"title"`
	Type  string `json:"type"`
}
