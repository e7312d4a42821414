package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"smwu-sales-api/pkg/models"
	"smwu-sales-api/pkg/services"

	"github.com/gin-gonic/gin"
)

var (
	validResolutions = []string{"COUNTRY", "REGION", "CITY", "DMA"}
	validProperties  = []string{"", "images", "news", "youtube", "froogle"}
)

// TrendsAPI is the provider contract the trend endpoints need.
// *services.TrendsService is the production implementation.
type TrendsAPI interface {
	InterestOverTime(ctx context.Context, req *models.TrendRequest, property string) (*models.TimelineData, error)
	InterestByRegion(ctx context.Context, req *models.TrendRequest, resolution string) (*models.RegionData, error)
	RelatedTopics(ctx context.Context, req *models.TrendRequest) (map[string]models.RelatedData, error)
	RelatedQueries(ctx context.Context, req *models.TrendRequest) (map[string]models.RelatedData, error)
	Suggestions(ctx context.Context, keyword string) ([]models.Suggestion, error)
}

// TrendsHandler serves the search-interest trend endpoints.
type TrendsHandler struct {
	trendsService TrendsAPI
}

// NewTrendsHandler creates a trends handler.
func NewTrendsHandler(trendsService TrendsAPI) *TrendsHandler {
	return &TrendsHandler{trendsService: trendsService}
}

func (th *TrendsHandler) bindTrendRequest(c *gin.Context) (*models.TrendRequest, bool) {
	var req models.TrendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status: "error",
			Detail: "잘못된 요청 형식입니다: " + err.Error(),
		})
		return nil, false
	}
	return &req, true
}

func tooManyKeywords(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status: "error",
		Detail: "키워드는 최대 5개까지만 지원됩니다.",
	})
}

// GetTimeline handles POST /api/trends/timeline.
func (th *TrendsHandler) GetTimeline(c *gin.Context) {
	req, ok := th.bindTrendRequest(c)
	if !ok {
		return
	}

	data, err := th.trendsService.InterestOverTime(c.Request.Context(), req, "")
	if err != nil {
		if errors.Is(err, services.ErrTooManyKeywords) {
			tooManyKeywords(c)
			return
		}
		log.Printf("Timeline trend lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error",
			Detail: "트렌드 분석 중 오류가 발생했습니다: " + err.Error(),
		})
		return
	}
	if data == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"data":    gin.H{},
			"message": "검색 조건에 맞는 데이터가 없습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    data,
		"message": "시간별 트렌드 데이터를 성공적으로 조회했습니다.",
	})
}

// GetRegions handles POST /api/trends/regions. The resolution query parameter
// selects the region granularity.
func (th *TrendsHandler) GetRegions(c *gin.Context) {
	resolution := c.DefaultQuery("resolution", "COUNTRY")
	if !contains(validResolutions, resolution) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status: "error",
			Detail: fmt.Sprintf("유효하지 않은 지역 단위입니다. 사용 가능한 값: %v", validResolutions),
		})
		return
	}

	req, ok := th.bindTrendRequest(c)
	if !ok {
		return
	}

	data, err := th.trendsService.InterestByRegion(c.Request.Context(), req, resolution)
	if err != nil {
		if errors.Is(err, services.ErrTooManyKeywords) {
			tooManyKeywords(c)
			return
		}
		log.Printf("Region trend lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error",
			Detail: "지역별 트렌드 분석 중 오류가 발생했습니다: " + err.Error(),
		})
		return
	}
	if data == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"data":    gin.H{},
			"message": fmt.Sprintf("%s 단위의 데이터가 없습니다.", resolution),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    data,
		"message": fmt.Sprintf("%s 단위의 지역별 트렌드 데이터를 성공적으로 조회했습니다.", resolution),
	})
}

// GetRelatedTopics handles POST /api/trends/related-topics. Provider failures
// degrade to a 200 "partial" envelope with placeholder data; availability is
// preferred over strictness on this endpoint.
func (th *TrendsHandler) GetRelatedTopics(c *gin.Context) {
	req, ok := th.bindTrendRequest(c)
	if !ok {
		return
	}

	data, err := th.trendsService.RelatedTopics(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrTooManyKeywords) {
			tooManyKeywords(c)
			return
		}
		log.Printf("Related topics lookup degraded: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status":  "partial",
			"data":    data,
			"message": "연관 주제 분석 중 오류가 발생했습니다: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    data,
		"message": "연관 주제 데이터를 성공적으로 조회했습니다.",
	})
}

// GetRelatedQueries handles POST /api/trends/related-queries with the same
// degrade-to-partial behavior as GetRelatedTopics.
func (th *TrendsHandler) GetRelatedQueries(c *gin.Context) {
	req, ok := th.bindTrendRequest(c)
	if !ok {
		return
	}

	data, err := th.trendsService.RelatedQueries(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrTooManyKeywords) {
			tooManyKeywords(c)
			return
		}
		log.Printf("Related queries lookup degraded: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status":  "partial",
			"data":    data,
			"message": "연관 검색어 분석 중 오류가 발생했습니다: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    data,
		"message": "연관 검색어 데이터를 성공적으로 조회했습니다.",
	})
}

// GetKeywordSuggestions handles POST /api/trends/keyword-suggestions.
func (th *TrendsHandler) GetKeywordSuggestions(c *gin.Context) {
	var req models.KeywordSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status: "error",
			Detail: "잘못된 요청 형식입니다: " + err.Error(),
		})
		return
	}

	suggestions, err := th.trendsService.Suggestions(c.Request.Context(), req.Keyword)
	if err != nil {
		log.Printf("Keyword suggestions lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error",
			Detail: "키워드 추천 조회 중 오류가 발생했습니다: " + err.Error(),
		})
		return
	}
	if len(suggestions) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"data":    []models.Suggestion{},
			"message": fmt.Sprintf("키워드 '%s'에 대한 추천이 없습니다.", req.Keyword),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    suggestions,
		"message": "키워드 추천 데이터를 성공적으로 조회했습니다.",
	})
}

// GetInterestByProperty handles POST /api/trends/interest-by-property. The
// property_type query parameter selects the search surface; empty means web
// search.
func (th *TrendsHandler) GetInterestByProperty(c *gin.Context) {
	propertyType := c.Query("property_type")
	if !contains(validProperties, propertyType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status: "error",
			Detail: fmt.Sprintf("유효하지 않은 검색 속성입니다. 사용 가능한 값: %v", validProperties),
		})
		return
	}

	req, ok := th.bindTrendRequest(c)
	if !ok {
		return
	}

	propertyName := propertyType
	if propertyName == "" {
		propertyName = "웹 검색"
	}

	data, err := th.trendsService.InterestOverTime(c.Request.Context(), req, propertyType)
	if err != nil {
		if errors.Is(err, services.ErrTooManyKeywords) {
			tooManyKeywords(c)
			return
		}
		log.Printf("Property trend lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error",
			Detail: "검색 속성별 트렌드 분석 중 오류가 발생했습니다: " + err.Error(),
		})
		return
	}
	if data == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"data":    gin.H{},
			"message": fmt.Sprintf("%s 속성에 대한 데이터가 없습니다.", propertyName),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    data,
		"message": fmt.Sprintf("%s 속성의 트렌드 데이터를 성공적으로 조회했습니다.", propertyName),
	})
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
