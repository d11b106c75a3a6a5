package http

import (
	"net/http"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListInventory handles GET /api/v1/inventory.
func (s *Server) ListInventory(c echo.Context) error {
	items, err := s.h.ListInventory.Handle(c.Request().Context(), queries.NewListInventoryQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateInventoryItem handles POST /api/v1/inventory.
func (s *Server) CreateInventoryItem(c echo.Context) error {
	var req createInventoryItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryItemCommand(
		actorFrom(c).ID, itemID, req.ProductName, req.Size, *req.Price, *req.Quantity,
	)
	if err != nil {
		return err
	}
	if err = s.h.CreateInventoryItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: itemID.String()})
}

// AdjustStock handles POST /api/v1/inventory/:id/adjustments.
func (s *Server) AdjustStock(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req adjustStockRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdjustStockCommand(actorFrom(c).ID, itemID, *req.Delta)
	if err != nil {
		return err
	}
	if err = s.h.AdjustStock.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// SetStock handles PUT /api/v1/inventory/:id/quantity.
func (s *Server) SetStock(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req setStockRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetStockCommand(actorFrom(c).ID, itemID, *req.Quantity)
	if err != nil {
		return err
	}
	if err = s.h.SetStock.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeInventoryPrice handles PUT /api/v1/inventory/:id/price.
func (s *Server) ChangeInventoryPrice(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req changePriceRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeInventoryPriceCommand(actorFrom(c).ID, itemID, *req.Price)
	if err != nil {
		return err
	}
	if err = s.h.ChangeInventoryPrice.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ArchiveInventoryItem handles DELETE /api/v1/inventory/:id.
func (s *Server) ArchiveInventoryItem(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewArchiveInventoryItemCommand(actorFrom(c).ID, itemID)
	if err != nil {
		return err
	}
	if err = s.h.ArchiveInventoryItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
