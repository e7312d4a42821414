package services

// Category pairs a stable industry code with its display name.
type Category struct {
	Code string
	Name string
}

// FoodIndustryCatalog is the fixed fan-out set for district aggregation.
// The order here is the lookup order. Codes must stay in lockstep with the
// ETL that populates the bucket; nothing is added or removed at runtime.
var FoodIndustryCatalog = []Category{
	{Code: "CS100001", Name: "한식음식점"},
	{Code: "CS100002", Name: "중식음식점"},
	{Code: "CS100003", Name: "일식음식점"},
	{Code: "CS100004", Name: "양식음식점"},
	{Code: "CS100005", Name: "제과점"},
	{Code: "CS100006", Name: "패스트푸드점"},
	{Code: "CS100007", Name: "치킨전문점"},
	{Code: "CS100008", Name: "분식전문점"},
	{Code: "CS100009", Name: "호프-간이주점"},
	{Code: "CS100010", Name: "커피-음료"},
	{Code: "CS200001", Name: "편의점"},
}

// IndustryName returns the display name for an industry code and whether
// the code belongs to the catalog.
func IndustryName(code string) (string, bool) {
	for _, category := range FoodIndustryCatalog {
		if category.Code == code {
			return category.Name, true
		}
	}
	return "", false
}
