package services

import (
	"context"
	"errors"
	"testing"

	"smwu-sales-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

// fakeStore serves records keyed by industry code and counts lookups.
type fakeStore struct {
	records      map[string]*models.RawSalesRecord
	transportErr map[string]error
	calls        int
	lastQuarter  string
}

func (f *fakeStore) GetByKey(_ context.Context, _, quarter, industryCode string) (*models.RawSalesRecord, error) {
	f.calls++
	f.lastQuarter = quarter
	if err, ok := f.transportErr[industryCode]; ok {
		return nil, err
	}
	if record, ok := f.records[industryCode]; ok {
		return record, nil
	}
	return nil, ErrDocumentAbsent
}

func TestAggregateReshapesRecord(t *testing.T) {
	store := &fakeStore{
		records: map[string]*models.RawSalesRecord{
			"CS100001": {
				SvcIndutyCd: "CS100001",
				AdstrdCdNm:  "청파동",
				MonSelngAmt: 100,
				MlSelngAmt:  40,
				FmlSelngAmt: 60,
			},
		},
	}
	service := NewSalesService(store)

	view, err := service.Aggregate(context.Background(), "11110", "20242")
	assert.NoError(t, err)
	assert.Equal(t, "청파동", view.DistrictName)
	assert.Equal(t, "20242", view.Quarter)
	assert.Len(t, view.Industries, 1)

	industry, ok := view.Industries["CS100001"]
	assert.True(t, ok)
	assert.Equal(t, "한식음식점", industry.IndustryName)
	assert.Equal(t, int64(100), industry.SalesAnalysis.DailySales.Data.Monday)
	assert.Equal(t, int64(40), industry.SalesAnalysis.Demographics.Gender.Male)
	assert.Equal(t, int64(60), industry.SalesAnalysis.Demographics.Gender.Female)

	// Fields missing from the raw record are zero-filled, never absent.
	assert.Equal(t, int64(0), industry.SalesAnalysis.DailySales.Data.Tuesday)
	assert.Equal(t, int64(0), industry.SalesAnalysis.TimeBasedSales.Data.Lunch)
	assert.Equal(t, int64(0), industry.SalesAnalysis.Demographics.Age.Age60Plus)
	assert.Equal(t, int64(0), industry.SalesAnalysis.WeekdayWeekend.Weekend)
}

func TestAggregateNotFound(t *testing.T) {
	store := &fakeStore{}
	service := NewSalesService(store)

	view, err := service.Aggregate(context.Background(), "99999", "20242")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrNotFound)

	// Every catalog category must have been attempted before giving up.
	assert.Equal(t, len(FoodIndustryCatalog), store.calls)
}

func TestAggregateTransportErrorTreatedAsAbsence(t *testing.T) {
	store := &fakeStore{
		records: map[string]*models.RawSalesRecord{
			"CS100010": {SvcIndutyCd: "CS100010", AdstrdCdNm: "효창동"},
		},
		transportErr: map[string]error{
			"CS100001": errors.New("store unreachable"),
		},
	}
	service := NewSalesService(store)

	view, err := service.Aggregate(context.Background(), "11110", "20242")
	assert.NoError(t, err)
	assert.Equal(t, len(FoodIndustryCatalog), store.calls)
	assert.Len(t, view.Industries, 1)
	assert.Contains(t, view.Industries, "CS100010")
}

func TestAggregateAllTransportErrorsIsNotFound(t *testing.T) {
	transportErr := make(map[string]error, len(FoodIndustryCatalog))
	for _, category := range FoodIndustryCatalog {
		transportErr[category.Code] = errors.New("store unreachable")
	}
	service := NewSalesService(&fakeStore{transportErr: transportErr})

	_, err := service.Aggregate(context.Background(), "11110", "20242")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAggregateDefaultQuarter(t *testing.T) {
	store := &fakeStore{
		records: map[string]*models.RawSalesRecord{
			"CS100001": {SvcIndutyCd: "CS100001"},
		},
	}
	service := NewSalesService(store)

	view, err := service.Aggregate(context.Background(), "11110", "")
	assert.NoError(t, err)
	assert.Equal(t, DefaultQuarter, view.Quarter)
	assert.Equal(t, DefaultQuarter, store.lastQuarter)
}

func TestAggregateSkipsUnknownIndustryCode(t *testing.T) {
	store := &fakeStore{
		records: map[string]*models.RawSalesRecord{
			"CS100001": {SvcIndutyCd: "ZZ999999", AdstrdCdNm: "청파동"},
		},
	}
	service := NewSalesService(store)

	view, err := service.Aggregate(context.Background(), "11110", "20242")
	assert.NoError(t, err)
	assert.Empty(t, view.Industries)
	assert.Equal(t, "청파동", view.DistrictName)
}

func TestAggregateDuplicateCodeLastWriteWins(t *testing.T) {
	// Two documents carrying the same embedded code should not break the
	// reshape; the later one in catalog order wins.
	store := &fakeStore{
		records: map[string]*models.RawSalesRecord{
			"CS100001": {SvcIndutyCd: "CS100001", MonSelngAmt: 1},
			"CS100002": {SvcIndutyCd: "CS100001", MonSelngAmt: 2},
		},
	}
	service := NewSalesService(store)

	view, err := service.Aggregate(context.Background(), "11110", "20242")
	assert.NoError(t, err)
	assert.Len(t, view.Industries, 1)
	assert.Equal(t, int64(2), view.Industries["CS100001"].SalesAnalysis.DailySales.Data.Monday)
}

func TestReshapeRecordIsDeterministic(t *testing.T) {
	record := &models.RawSalesRecord{
		SvcIndutyCd:       "CS100005",
		MonSelngAmt:       10,
		Tmzon0611SelngAmt: 20,
		Agrde30SelngAmt:   30,
		WkendSelngCo:      40,
	}

	first := reshapeRecord(record, "제과점")
	second := reshapeRecord(record, "제과점")
	assert.Equal(t, first, second)
	assert.Equal(t, int64(20), first.SalesAnalysis.TimeBasedSales.Data.Morning)
	assert.Equal(t, int64(30), first.SalesAnalysis.Demographics.Age.Age30)
	assert.Equal(t, int64(40), first.SalesAnalysis.WeekdayWeekend.Weekend)
}

func TestCurrentQuarterFormat(t *testing.T) {
	quarter := CurrentQuarter()
	assert.Len(t, quarter, 5)
	assert.Regexp(t, `^\d{4}[1-4]$`, quarter)
}
