package exchange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

type pricingRequest struct {
	Brand        Brand           `json:"brand"`
	AgeYears     float64         `json:"age_years"`
	Condition    Condition       `json:"condition"`
	PurifierType string          `json:"purifier_type,omitempty"`
}

type pricingResponse struct {
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
}

// HTTPPricingClient calls a remote valuation endpoint at
// POST {baseURL}/exchange/estimate.
type HTTPPricingClient struct {
	client *resty.Client
}

func NewHTTPPricingClient(baseURL, apiKey string, timeout time.Duration) *HTTPPricingClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}
	return &HTTPPricingClient{client: client}
}

func (c *HTTPPricingClient) EstimateValue(ctx context.Context, req ValuationRequest) (decimal.Decimal, error) {
	var out pricingResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(pricingRequest{
			Brand:        req.Brand,
			AgeYears:     req.AgeYears.InexactFloat64(),
			Condition:    req.Condition,
			PurifierType: req.PurifierType,
		}).
		SetResult(&out).
		Post("/exchange/estimate")
	if err != nil {
		return decimal.Zero, fmt.Errorf("pricing request: %w", err)
	}
	if resp.IsError() {
		return decimal.Zero, fmt.Errorf("pricing service returned status %d", resp.StatusCode())
	}
	if out.EstimatedValue == nil {
		return decimal.Zero, errors.New("pricing service response has no estimated_value")
	}
	return *out.EstimatedValue, nil
}
