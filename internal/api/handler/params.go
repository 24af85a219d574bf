package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// pathID parses the :id route parameter as a positive integer.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, domain.Validation("El ID debe ser un número entero válido")
	}
	return id, nil
}
