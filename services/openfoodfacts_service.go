package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/Fayets/NutriFA/apperror"
)

// Product is the normalized result of an external barcode lookup.
type Product struct {
	Name            string
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
}

// ProductFetcher is the external food-database collaborator.
type ProductFetcher interface {
	FetchProduct(barcode string) (*Product, error)
}

type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

// NewOpenFoodFactsService builds the client for the Open Food Facts
// product API. One attempt per lookup, 5 second timeout, no retries.
func NewOpenFoodFactsService() *OpenFoodFactsService {
	baseURL := os.Getenv("OPENFOODFACTS_BASE_URL")
	if baseURL == "" {
		baseURL = "https://world.openfoodfacts.org"
	}
	return &OpenFoodFactsService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type offProductResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string                 `json:"product_name"`
		Nutriments  map[string]interface{} `json:"nutriments"`
	} `json:"product"`
}

func (s *OpenFoodFactsService) FetchProduct(barcode string) (*Product, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(barcode))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, apperror.UpstreamUnavailable("could not reach the external food database")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.UpstreamUnavailable("could not read the external food database response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperror.UpstreamUnavailable("unexpected response from the external food database")
	}

	var payload offProductResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperror.UpstreamUnavailable("could not parse the external food database response")
	}

	// status=1 is the API's "product found" sentinel.
	if payload.Status != 1 {
		return nil, apperror.NotFound("product")
	}

	name := payload.Product.ProductName
	if name == "" {
		return nil, apperror.InvalidUpstreamData("incomplete nutritional data from the external food database")
	}

	nutriments := payload.Product.Nutriments
	calories, err := nutrimentValue(nutriments, "energy-kcal_100g")
	if err != nil {
		return nil, err
	}
	protein, err := nutrimentValue(nutriments, "proteins_100g")
	if err != nil {
		return nil, err
	}
	carbs, err := nutrimentValue(nutriments, "carbohydrates_100g")
	if err != nil {
		return nil, err
	}
	fat, err := nutrimentValue(nutriments, "fat_100g")
	if err != nil {
		return nil, err
	}

	return &Product{
		Name:            name,
		CaloriesPer100g: calories,
		ProteinPer100g:  protein,
		CarbsPer100g:    carbs,
		FatPer100g:      fat,
	}, nil
}

// nutrimentValue extracts one per-100g field. The API serves these as
// JSON numbers or numeric strings depending on the product.
func nutrimentValue(nutriments map[string]interface{}, key string) (float64, error) {
	raw, ok := nutriments[key]
	if !ok || raw == nil {
		return 0, apperror.InvalidUpstreamData("incomplete nutritional data from the external food database")
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, apperror.InvalidUpstreamData("malformed nutritional data from the external food database")
		}
		return f, nil
	default:
		return 0, apperror.InvalidUpstreamData("malformed nutritional data from the external food database")
	}
}
