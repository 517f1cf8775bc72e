package recipe

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"recipe-converter/internal/core/cache"
	"recipe-converter/internal/core/conversion"
	"recipe-converter/internal/infrastructure/config"
	"recipe-converter/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestService(store cache.Store) *ConversionService {
	return NewConversionService(conversion.NewConverter(nil, conversion.Options{}), store)
}

func TestConvert(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Convert(context.Background(), ConversionRequest{
		RecipeText: strPtr("1 cup sugar\n\n1 pinch salt"),
		From:       "us",
		To:         "metric",
	}, "req-1")
	require.NoError(t, err)
	require.Len(t, res.ConvertedRecipe, 2)
	assert.Equal(t, "砂糖", res.ConvertedRecipe[0].Ingredient)
	assert.Equal(t, 200.0, res.ConvertedRecipe[0].Amount.Value)
	assert.False(t, res.ConvertedRecipe[1].Amount.Valid)
}

func TestConvertValidation(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Convert(context.Background(), ConversionRequest{From: "us", To: "metric"}, "")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	tests := map[string]ConversionRequest{
		"unknown from": {RecipeText: strPtr("1 cup sugar"), From: "imperial", To: "metric"},
		"unknown to":   {RecipeText: strPtr("1 cup sugar"), From: "us", To: "si"},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Convert(context.Background(), req, "")
			require.Error(t, err)

			var custom *common.CustomError
			require.True(t, errors.As(err, &custom))
			assert.Equal(t, common.ErrCodeUnsupportedSystem, custom.Code)
			assert.Equal(t, http.StatusBadRequest, custom.Status)
			assert.False(t, common.IsValidationError(err))
		})
	}
}

func TestConvertDefaultsAndAliases(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Convert(context.Background(), ConversionRequest{
		RecipeText: strPtr("バター 50g"),
		From:       "JP",
		To:         "us",
	}, "")
	require.NoError(t, err)
	require.Len(t, res.ConvertedRecipe, 1)
	assert.Equal(t, "butter", res.ConvertedRecipe[0].Ingredient)
	assert.Equal(t, "oz", res.ConvertedRecipe[0].Unit)

	empty, err := svc.Convert(context.Background(), ConversionRequest{RecipeText: strPtr("")}, "")
	require.NoError(t, err)
	assert.Empty(t, empty.ConvertedRecipe)
}

func TestConvertUsesCache(t *testing.T) {
	store := cache.NewManager(config.CacheConfig{MaxSize: 10, TTL: time.Minute})
	defer store.Close()
	svc := newTestService(store)

	req := ConversionRequest{
		RecipeText: strPtr("120ml 牛乳"),
		From:       "metric",
		To:         "us",
	}
	first, err := svc.Convert(context.Background(), req, "")
	require.NoError(t, err)
	second, err := svc.Convert(context.Background(), req, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	stats := svc.CacheStats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("down") }
func (failingStore) Set(context.Context, string, string) error   { return errors.New("down") }
func (failingStore) Close() error                                { return nil }

func TestConvertIgnoresCacheFailures(t *testing.T) {
	svc := newTestService(failingStore{})

	res, err := svc.Convert(context.Background(), ConversionRequest{
		RecipeText: strPtr("1 cup sugar"),
		From:       "us",
		To:         "metric",
	}, "")
	require.NoError(t, err)
	assert.Len(t, res.ConvertedRecipe, 1)
	assert.Nil(t, svc.CacheStats())
}

type pingingStore struct {
	failingStore
	err error
}

func (s pingingStore) Ping(context.Context) error { return s.err }

func TestPing(t *testing.T) {
	assert.NoError(t, newTestService(nil).Ping(context.Background()))
	assert.NoError(t, newTestService(pingingStore{}).Ping(context.Background()))

	down := errors.New("connection refused")
	assert.ErrorIs(t, newTestService(pingingStore{err: down}).Ping(context.Background()), down)
}
