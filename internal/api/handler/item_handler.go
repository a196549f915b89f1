package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fullstack-app/catalog-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for the paginated catalog.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /items.
//
// @Summary      List catalog items, paginated
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"      default(1)
// @Param        limit  query     int  false  "Page size (max 100)"        default(10)
// @Success      200    {object}  listItemsResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	req := listItemsRequest{Page: 1, Limit: 10}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), req.Page, req.Limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListItemsResponse(page))
}
