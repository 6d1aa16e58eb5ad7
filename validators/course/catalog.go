package courseValidator

import (
	"strconv"
	"strings"

	"github.com/zalakuldip2011/edemy-sub001/middleware"
	courseService "github.com/zalakuldip2011/edemy-sub001/services/course"

	"github.com/gofiber/fiber/v2"
)

// CatalogSearch validates the public catalog query string and stores the
// parsed filter and pagination in locals.
func CatalogSearch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		filter := courseService.CatalogFilter{
			Category: strings.TrimSpace(c.Query("category")),
			Level:    strings.TrimSpace(c.Query("level")),
			Language: strings.TrimSpace(c.Query("language")),
			Tag:      strings.TrimSpace(c.Query("tag")),
			Query:    strings.TrimSpace(c.Query("q")),
		}

		if raw := strings.TrimSpace(c.Query("min_price")); raw != "" {
			minPrice, err := strconv.ParseFloat(raw, 64)
			if err != nil || minPrice < 0 {
				errors["min_price"] = "min_price must be a non-negative number!"
			} else {
				filter.MinPrice = &minPrice
			}
		}

		if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
			maxPrice, err := strconv.ParseFloat(raw, 64)
			if err != nil || maxPrice < 0 {
				errors["max_price"] = "max_price must be a non-negative number!"
			} else {
				filter.MaxPrice = &maxPrice
			}
		}

		if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
			errors["min_price"] = "min_price cannot exceed max_price!"
		}

		page := 1
		if raw := strings.TrimSpace(c.Query("page")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				errors["page"] = "Page must be greater than 0!"
			} else {
				page = parsed
			}
		}

		limit := 10
		if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				errors["limit"] = "Limit must be greater than 0!"
			} else {
				limit = parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("catalogFilter", filter)
		c.Locals("page", page)
		c.Locals("limit", limit)
		c.Locals("sort", strings.TrimSpace(c.Query("sort")))
		return c.Next()
	}
}
