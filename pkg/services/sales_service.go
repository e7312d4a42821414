package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"smwu-sales-api/pkg/models"
)

// DefaultQuarter is substituted when a request omits the quarter. Pinned to
// the quarter the current dataset was loaded for; CurrentQuarter is
// intentionally not used on the read path.
const DefaultQuarter = "20242"

// ErrNotFound is returned when no category yielded a record for the
// requested district and quarter.
var ErrNotFound = errors.New("no sales data found")

// SalesService aggregates per-industry sales records for one district and
// quarter into the nested analysis view.
type SalesService struct {
	store DocumentGetter
}

// NewSalesService creates a sales aggregation service on top of a store.
func NewSalesService(store DocumentGetter) *SalesService {
	return &SalesService{store: store}
}

// CurrentQuarter returns the wall-clock quarter token in YYYYQ form
// (e.g. 20231 for Q1 2023).
func CurrentQuarter() string {
	now := time.Now()
	quarter := (int(now.Month())-1)/3 + 1
	return fmt.Sprintf("%d%d", now.Year(), quarter)
}

// Aggregate looks up every catalog industry for the district and quarter and
// reshapes the records found into a DistrictSales view. Each lookup is
// independent: absence or a transport failure for one industry never aborts
// the others. It returns ErrNotFound when no industry yielded a record.
func (s *SalesService) Aggregate(ctx context.Context, districtCode, quarter string) (*models.DistrictSales, error) {
	if quarter == "" {
		quarter = DefaultQuarter
	}

	var records []*models.RawSalesRecord
	for _, category := range FoodIndustryCatalog {
		record, err := s.store.GetByKey(ctx, districtCode, quarter, category.Code)
		if err != nil {
			if !errors.Is(err, ErrDocumentAbsent) {
				// Transport failures are collapsed into absence on this path.
				log.Printf("Store lookup failed for %s: %v", ComposeKey(districtCode, quarter, category.Code), err)
			}
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: district %s, quarter %s", ErrNotFound, districtCode, quarter)
	}

	industries := make(map[string]models.IndustrySales, len(records))
	for _, record := range records {
		name, ok := IndustryName(record.SvcIndutyCd)
		if !ok {
			log.Printf("Skipping record with unknown industry code %q", record.SvcIndutyCd)
			continue
		}
		// Duplicate codes should not happen under correct ETL; last write wins.
		industries[record.SvcIndutyCd] = reshapeRecord(record, name)
	}

	return &models.DistrictSales{
		// The district name rides on every record; the first one found is used.
		DistrictName: records[0].AdstrdCdNm,
		Quarter:      quarter,
		Industries:   industries,
	}, nil
}

// reshapeRecord converts one flat store record into the nested analysis
// structure. Every leaf is populated; fields absent from the source document
// have already decoded to zero.
func reshapeRecord(record *models.RawSalesRecord, industryName string) models.IndustrySales {
	return models.IndustrySales{
		IndustryName: industryName,
		SalesAnalysis: models.SalesAnalysis{
			DailySales: models.DailySales{
				Data: models.DailySalesData{
					Monday:    record.MonSelngAmt,
					Tuesday:   record.TuesSelngAmt,
					Wednesday: record.WedSelngAmt,
					Thursday:  record.ThurSelngAmt,
					Friday:    record.FriSelngAmt,
					Saturday:  record.SatSelngAmt,
					Sunday:    record.SunSelngAmt,
				},
			},
			TimeBasedSales: models.TimeSales{
				Data: models.TimeSalesData{
					LateNight: record.Tmzon0006SelngAmt,
					Morning:   record.Tmzon0611SelngAmt,
					Lunch:     record.Tmzon1114SelngAmt,
					Afternoon: record.Tmzon1417SelngAmt,
					Evening:   record.Tmzon1721SelngAmt,
					Night:     record.Tmzon2124SelngAmt,
				},
			},
			Demographics: models.Demographics{
				Gender: models.GenderSales{
					Male:   record.MlSelngAmt,
					Female: record.FmlSelngAmt,
				},
				Age: models.AgeSales{
					Age10:     record.Agrde10SelngAmt,
					Age20:     record.Agrde20SelngAmt,
					Age30:     record.Agrde30SelngAmt,
					Age40:     record.Agrde40SelngAmt,
					Age50:     record.Agrde50SelngAmt,
					Age60Plus: record.Agrde60AboveSelngAmt,
				},
			},
			WeekdayWeekend: models.WeekdayWeekend{
				Weekday: record.MdwkSelngCo,
				Weekend: record.WkendSelngCo,
			},
		},
	}
}
