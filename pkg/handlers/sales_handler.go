package handlers

import (
	"errors"
	"log"
	"net/http"

	"smwu-sales-api/pkg/models"
	"smwu-sales-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// SalesHandler serves the district sales endpoints.
type SalesHandler struct {
	salesService *services.SalesService
}

// NewSalesHandler creates a sales handler.
func NewSalesHandler(salesService *services.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// GetDistrictSales handles GET /api/sales/district/:districtCode. The quarter
// query parameter is optional; the service substitutes its default.
func (sh *SalesHandler) GetDistrictSales(c *gin.Context) {
	districtCode := c.Param("districtCode")
	quarter := c.Query("quarter")

	view, err := sh.salesService.Aggregate(c.Request.Context(), districtCode, quarter)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Status: "error",
				Detail: "Data not found",
			})
			return
		}
		log.Printf("District sales lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status: "error",
			Detail: "서버 오류가 발생했습니다: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SalesResponse{
		BaseResponse: models.BaseResponse{
			Status:  "success",
			Message: "데이터 조회 성공",
		},
		Data: *view,
	})
}
