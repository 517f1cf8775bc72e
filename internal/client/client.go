// Package client 換算 API 的 HTTP 客戶端
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-converter/internal/core/conversion"
	"recipe-converter/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// convertRequest POST /api/v1/conversion 的請求內容
type convertRequest struct {
	RecipeText     *string `json:"recipe_text"`
	FromUnitSystem string  `json:"from_unit_system"`
	ToUnitSystem   string  `json:"to_unit_system"`
}

type ingredientTable struct {
	Ingredients map[string]conversion.Profile `json:"ingredients"`
}

// APIError 伺服器回傳的錯誤
type APIError struct {
	Status   int
	Response common.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response.Code == "" {
		return fmt.Sprintf("conversion API returned status %d", e.Status)
	}
	return fmt.Sprintf("conversion API error %s (status %d): %s", e.Response.Code, e.Status, e.Response.Message)
}

// Client 換算 API 客戶端
type Client struct {
	client *resty.Client
}

// New 創建客戶端，baseURL 例如 http://localhost:8080
func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "recipeconv")

	return &Client{client: client}
}

// Convert 呼叫 POST /api/v1/conversion
func (c *Client) Convert(ctx context.Context, text string, from, to conversion.System) (*conversion.Result, error) {
	requestID := common.GenerateUUID()
	var result conversion.Result
	var apiErr common.ErrorResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(convertRequest{
			RecipeText:     &text,
			FromUnitSystem: string(from),
			ToUnitSystem:   string(to),
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/v1/conversion")
	if err != nil {
		return nil, fmt.Errorf("failed to send conversion request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("換算 API 回傳錯誤",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("request_id", requestID),
			zap.String("code", apiErr.Code),
		)
		return nil, &APIError{Status: resp.StatusCode(), Response: apiErr}
	}

	return &result, nil
}

// Ingredients 呼叫 GET /api/v1/conversion/ingredients
func (c *Client) Ingredients(ctx context.Context) (map[string]conversion.Profile, error) {
	var table ingredientTable
	var apiErr common.ErrorResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&table).
		SetError(&apiErr).
		Get("/api/v1/conversion/ingredients")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ingredient table: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode(), Response: apiErr}
	}
	return table.Ingredients, nil
}
