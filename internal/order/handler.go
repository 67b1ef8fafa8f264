package order

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nextsocial/shop-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders", h.getOrders)
}

type createOrderRequest struct {
	Cart       map[string]int `json:"cart"`
	Quantity   int            `json:"quantity"`
	TotalPrice float64        `json:"totalPrice"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Cart) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart cannot be empty"})
	}
	if payload.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
	}
	if payload.TotalPrice < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "prices must be non-negative"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Create(Order{
		UserID:     userID,
		Cart:       payload.Cart,
		Quantity:   payload.Quantity,
		TotalPrice: payload.TotalPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// getOrders returns all orders belonging to the currently authenticated user.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}
