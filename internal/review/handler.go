package review

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nextsocial/shop-backend/internal/user"
)

type Handler struct {
	service *Service
}

type createRequest struct {
	Asin    string  `json:"asin"`
	Overall float64 `json:"overall"`
	Summary string  `json:"summary"`
	Text    string  `json:"reviewText"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/reviews/:asin", h.listByAsin)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/reviews", h.create)
}

func (h *Handler) listByAsin(c *fiber.Ctx) error {
	reviews, err := h.service.ListByAsin(c.Params("asin"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(reviews)
}

func (h *Handler) create(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(Review{
		UserID:  userID,
		Asin:    payload.Asin,
		Overall: payload.Overall,
		Summary: payload.Summary,
		Text:    payload.Text,
	})
	if err != nil {
		if err == ErrInvalidRating || err == ErrMissingAsin {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
