package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePagination reads page/pageSize query parameters. page defaults to 1,
// pageSize to 20 and is clamped to 100 rather than rejected.
func parsePagination(c *fiber.Ctx) (page, pageSize int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = c.QueryInt("pageSize", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// listResponse is the envelope every paginated listing returns.
func listResponse(items interface{}, total int64, page, pageSize int) fiber.Map {
	return fiber.Map{
		"items":    items,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	}
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
