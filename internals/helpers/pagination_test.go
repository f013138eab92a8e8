package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOn(t *testing.T, target string) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePaginationDefaults(t *testing.T) {
	p := parseOn(t, "/")
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestParsePaginationClamps(t *testing.T) {
	p := parseOn(t, "/?page=0&limit=-5")
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = parseOn(t, "/?page=2&limit=9999")
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)

	p = parseOn(t, "/?page=abc&limit=xyz")
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 30, Params{Page: 4, Limit: 10}.Offset())
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(25, Params{Page: 2, Limit: 10})
	assert.Equal(t, int64(25), m.Total)
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, Limit: 10})
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)

	m = BuildMeta(10, Params{Page: 1, Limit: 10})
	assert.Equal(t, 1, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}
