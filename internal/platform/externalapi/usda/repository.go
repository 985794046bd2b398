package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"calorie_backend/internal/feature/foods/domain/entity"
	"calorie_backend/internal/feature/foods/usecase"
	"calorie_backend/internal/platform/externalapi/usda/dto"
)

// Nutrient type identifiers in FoodData Central. Energy is reported under
// two different definitions; nutrientEnergy (Atwater general factors, 2047)
// is the one this service displays, falling back to the legacy
// nutrientEnergyKcal (1008) for records that only carry that one.
const (
	nutrientEnergy     = 2047
	nutrientEnergyKcal = 1008
	nutrientProtein    = 1003
	nutrientFat        = 1004
	nutrientCarbs      = 1005
)

// Query parameters fixed by the product: the two curated data types, fifty
// results per page, sorted by data type ascending.
const (
	searchDataTypes = "Foundation,SR Legacy"
	searchPageSize  = 50
	searchSortBy    = "dataType.keyword"
	searchSortOrder = "asc"
)

// FoodDataClient is a FoodRepository implementation backed by the USDA
// FoodData Central search API.
type FoodDataClient struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that FoodDataClient implements FoodRepository.
var _ usecase.FoodRepository = (*FoodDataClient)(nil)

// NewFoodDataClient creates a new FoodDataClient instance with the given
// configuration and HTTP client.
func NewFoodDataClient(cfg Config, client *http.Client) *FoodDataClient {
	return &FoodDataClient{cfg: cfg, client: client}
}

// Search queries the /foods/search endpoint and flattens each result's
// nutrient array into a Food. A query matching nothing returns an empty
// slice; a non-2xx upstream status returns usecase.ErrUpstream.
func (f *FoodDataClient) Search(ctx context.Context, query string) ([]entity.Food, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("dataType", searchDataTypes)
	q.Set("pageSize", fmt.Sprintf("%d", searchPageSize))
	q.Set("pageNumber", "1")
	q.Set("sortBy", searchSortBy)
	q.Set("sortOrder", searchSortOrder)
	q.Set("api_key", f.cfg.APIKey)

	u := fmt.Sprintf("%s/foods/search?%s", f.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: http %d", usecase.ErrUpstream, res.StatusCode)
	}

	var body dto.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	foods := make([]entity.Food, 0, len(body.Foods))
	for _, raw := range body.Foods {
		food := entity.Food{
			FdcID:           raw.FdcID,
			Description:     raw.Description,
			ServingSize:     raw.ServingSize,
			ServingSizeUnit: raw.ServingSizeUnit,
		}
		// Per 100 g when the record declares no serving size.
		if food.ServingSize == 0 {
			food.ServingSize = 100
			food.ServingSizeUnit = "g"
		}

		values := make(map[int64]float64, len(raw.FoodNutrients))
		for _, n := range raw.FoodNutrients {
			values[n.NutrientID] = n.Value
		}

		if v, ok := values[nutrientEnergy]; ok {
			food.Calories = v
		} else {
			food.Calories = values[nutrientEnergyKcal]
		}
		food.Protein = values[nutrientProtein]
		food.Fat = values[nutrientFat]
		food.Carbs = values[nutrientCarbs]

		foods = append(foods, food)
	}
	return foods, nil
}
