//go:build ignore

// Loads one quarter of the Seoul commercial-district sales export
// (행정동 추정매출 xlsx) into the Couchbase bucket the API reads from.
//
// Usage: go run scripts/seed_sales_docs.go <export.xlsx>
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	config "smwu-sales-api/configs"
	"smwu-sales-api/pkg/services"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
)

// numericFields are the per-row amount columns carried into each document.
// Columns missing from the export are simply left out; the API zero-fills.
var numericFields = []string{
	"mon_selng_amt", "tues_selng_amt", "wed_selng_amt", "thur_selng_amt",
	"fri_selng_amt", "sat_selng_amt", "sun_selng_amt",
	"tmzon_00_06_selng_amt", "tmzon_06_11_selng_amt", "tmzon_11_14_selng_amt",
	"tmzon_14_17_selng_amt", "tmzon_17_21_selng_amt", "tmzon_21_24_selng_amt",
	"ml_selng_amt", "fml_selng_amt",
	"agrde_10_selng_amt", "agrde_20_selng_amt", "agrde_30_selng_amt",
	"agrde_40_selng_amt", "agrde_50_selng_amt", "agrde_60_above_selng_amt",
	"mdwk_selng_co", "wkend_selng_co",
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/seed_sales_docs.go <export.xlsx>")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	cfg := config.LoadConfig()

	store, err := services.NewStoreService(
		cfg.ConnectionString(),
		cfg.CouchbaseUser,
		cfg.CouchbasePassword,
		cfg.CouchbaseBucket,
	)
	if err != nil {
		log.Fatalf("Failed to initialize StoreService: %v", err)
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open %s: %v", os.Args[1], err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		log.Fatalf("Failed to read sheet rows: %v", err)
	}
	if len(rows) < 2 {
		log.Fatal("Export needs a header row and at least one data row")
	}

	header := rows[0]
	col := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	quarterIdx := col("stdr_yyqu_cd")
	districtIdx := col("adstrd_cd")
	nameIdx := col("adstrd_cd_nm")
	industryIdx := col("svc_induty_cd")
	if quarterIdx < 0 || districtIdx < 0 || industryIdx < 0 {
		log.Fatal("Export is missing one of the key columns: stdr_yyqu_cd, adstrd_cd, svc_induty_cd")
	}

	ctx := context.Background()
	seeded := 0
	for _, row := range rows[1:] {
		cell := func(i int) string {
			if i >= 0 && i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		district := cell(districtIdx)
		quarter := cell(quarterIdx)
		industry := cell(industryIdx)
		if district == "" || quarter == "" || industry == "" {
			continue
		}

		doc := map[string]interface{}{
			"svc_induty_cd": industry,
			"adstrd_cd_nm":  cell(nameIdx),
		}
		for _, field := range numericFields {
			idx := col(field)
			if idx < 0 {
				continue
			}
			value, err := strconv.ParseInt(strings.ReplaceAll(cell(idx), ",", ""), 10, 64)
			if err != nil {
				continue
			}
			doc[field] = value
		}

		key := services.ComposeKey(district, quarter, industry)
		if err := store.Upsert(ctx, key, doc); err != nil {
			log.Printf("Upsert %s failed: %v", key, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d sales documents into bucket %q", seeded, cfg.CouchbaseBucket)
}
