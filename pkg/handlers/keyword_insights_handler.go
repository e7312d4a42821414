package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"smwu-sales-api/pkg/models"
	"smwu-sales-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// KeywordAnalyzer is the provider contract the analysis endpoint needs.
// *services.SerpAPIService is the production implementation.
type KeywordAnalyzer interface {
	AnalyzeKeyword(ctx context.Context, keyword, location string) (*models.KeywordInsight, error)
}

// KeywordInsightsHandler serves the keyword analysis endpoint.
type KeywordInsightsHandler struct {
	serpAPIService KeywordAnalyzer
}

// NewKeywordInsightsHandler creates a keyword-insights handler.
func NewKeywordInsightsHandler(serpAPIService KeywordAnalyzer) *KeywordInsightsHandler {
	return &KeywordInsightsHandler{serpAPIService: serpAPIService}
}

// AnalyzeKeyword handles POST /api/v1/keyword-insights/analyze.
func (kh *KeywordInsightsHandler) AnalyzeKeyword(c *gin.Context) {
	var req models.KeywordSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status: "error",
			Detail: "잘못된 요청 형식입니다: " + err.Error(),
		})
		return
	}

	insight, err := kh.serpAPIService.AnalyzeKeyword(c.Request.Context(), req.Keyword, req.Location)
	if err != nil {
		if errors.Is(err, services.ErrMissingAPIKey) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Status: "error",
				Detail: "SerpAPI 키가 설정되지 않았습니다.",
			})
			return
		}
		log.Printf("Keyword analysis failed for %q: %v", req.Keyword, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error",
			Detail: "키워드 분석 중 오류가 발생했습니다: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.KeywordSearchResponse{
		BaseResponse: models.BaseResponse{
			Status:  "success",
			Message: "키워드 분석이 완료되었습니다.",
		},
		Data: *insight,
	})
}
