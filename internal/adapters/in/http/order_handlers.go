package http

import (
	"errors"
	"fmt"
	"net/http"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actorFrom(c).ID, orderID, commands.CreateOrderInput{
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Size:          req.Size,
		Quantity:      req.Quantity,
		DeliveryMode:  req.DeliveryMode,
	})
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders?status=&rider_id=.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(c.QueryParam("status"), c.QueryParam("rider_id"))
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id. Employees only see orders
// assigned to them.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	if actor.Role == user.Employee && (view.RiderID == nil || *view.RiderID != actor.ID.Value()) {
		return commands.ErrOrderNotAssignedToActor
	}
	return c.JSON(http.StatusOK, view)
}

// SetOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req setStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewSetOrderStatusCommand(actor.ID, actor.Role, orderID, req.Status)
	if err != nil {
		return err
	}
	if err = s.h.SetOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignRider handles PUT /api/v1/orders/:id/rider.
func (s *Server) AssignRider(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assignRiderRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("rider_id", err)
	}

	cmd, err := commands.NewAssignRiderCommand(actorFrom(c).ID, orderID, riderID)
	if err != nil {
		return err
	}
	if err = s.h.AssignRider.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/delivery. The photo is
// stored first and removed again when the order cannot be completed.
func (s *Server) CompleteDelivery(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("photo", err)
	}
	if file.Size > MaxPhotoBytes {
		return errs.NewValueIsOutOfRangeError("photo size", file.Size, 1, MaxPhotoBytes)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open uploaded photo: %w", err)
	}
	defer src.Close()

	ctx := c.Request().Context()
	ref, err := s.photos.Save(ctx, orderID, file.Filename, src)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(actorFrom(c).ID, orderID, ref)
	if err == nil {
		err = s.h.CompleteDelivery.Handle(ctx, cmd)
	}
	if err != nil {
		if delErr := s.photos.Delete(ctx, ref); delErr != nil {
			return errors.Join(err, delErr)
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"delivery_photo": ref})
}

// ArchiveOrder handles DELETE /api/v1/orders/:id.
func (s *Server) ArchiveOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewArchiveOrderCommand(actorFrom(c).ID, orderID)
	if err != nil {
		return err
	}
	if err = s.h.ArchiveOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
