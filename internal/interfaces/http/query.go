package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// parsePage lee limit/offset. Los rangos los valida el caso de uso.
func parsePage(c *fiber.Ctx) (filter.Page, error) {
	page := filter.DefaultPage()
	var err error
	if page.Limit, err = queryInt(c, "limit", filter.DefaultLimit); err != nil {
		return page, err
	}
	if page.Offset, err = queryInt(c, "offset", 0); err != nil {
		return page, err
	}
	return page, nil
}

// parseDates lee start_date/end_date. Un end_date sin hora cubre el día completo.
func parseDates(c *fiber.Ctx) (filter.DateRange, error) {
	var r filter.DateRange
	var err error
	if r.Start, err = filter.ParseDate("start_date", c.Query("start_date"), false); err != nil {
		return r, err
	}
	if r.End, err = filter.ParseDate("end_date", c.Query("end_date"), true); err != nil {
		return r, err
	}
	return r, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.Invalid(key, "debe ser un entero")
	}
	return n, nil
}

func queryOptInt(c *fiber.Ctx, key string) (*int, error) {
	if c.Query(key) == "" {
		return nil, nil
	}
	n, err := queryInt(c, key, 0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func queryOptBool(c *fiber.Ctx, key string) (*bool, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, domain.Invalid(key, "debe ser true o false")
	}
	return &b, nil
}

func queryBool(c *fiber.Ctx, key string) (bool, error) {
	b, err := queryOptBool(c, key)
	if err != nil || b == nil {
		return false, err
	}
	return *b, nil
}
