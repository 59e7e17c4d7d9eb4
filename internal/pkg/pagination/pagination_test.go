package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func paramsFor(t *testing.T, query string) *Params {
	t.Helper()
	app := fiber.New()

	var params *Params
	app.Get("/", func(c *fiber.Ctx) error {
		params = GetParams(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/?"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return params
}

func TestGetParams(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{"defaults", "", 1, DefaultLimit, 0},
		{"explicit", "page=3&limit=10", 3, 10, 20},
		{"zero page", "page=0", 1, DefaultLimit, 0},
		{"negative limit", "limit=-5", 1, DefaultLimit, 0},
		{"limit above max", "limit=500", 1, MaxLimit, 0},
		{"garbage", "page=abc&limit=xyz", 1, DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsFor(t, tt.query)
			require.Equal(t, tt.page, params.Page)
			require.Equal(t, tt.limit, params.Limit)
			require.Equal(t, tt.offset, params.Offset)
		})
	}
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(&Params{Page: 2, Limit: 10}, 25)
	require.Equal(t, 3, meta.TotalPages)
	require.True(t, meta.HasNext)
	require.True(t, meta.HasPrev)

	meta = GetMeta(&Params{Page: 1, Limit: 10}, 5)
	require.Equal(t, 1, meta.TotalPages)
	require.False(t, meta.HasNext)
	require.False(t, meta.HasPrev)
}
