package recommend

import (
	"log"
	"math/rand"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/recommendations", h.getRecommendations)
	app.Get("/api/recommendations/demographic", h.getDemographic)
	app.Get("/api/recommendations/retrain-check", h.getRetrainCheck)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	topN := 30
	if v, err := strconv.Atoi(c.Query("top_n")); err == nil && v > 0 {
		topN = v
	}
	userID := c.Query("user_id")
	if userID == "" {
		userID = DemoUserIDs[rand.Intn(len(DemoUserIDs))]
	}

	result, err := h.service.Recommend(userID, topN)
	if err != nil {
		log.Printf("recommendation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate recommendations"})
	}
	return c.JSON(result)
}

func (h *Handler) getDemographic(c *fiber.Ctx) error {
	q := DemographicQuery{
		Gender:  c.Query("gender"),
		Address: c.Query("address"),
	}
	if v, err := strconv.ParseFloat(c.Query("age"), 64); err == nil {
		q.Age = &v
	}
	if v, err := strconv.Atoi(c.Query("top_n")); err == nil && v > 0 {
		q.TopN = v
	}
	if v, err := strconv.ParseFloat(c.Query("tolerance"), 64); err == nil && v > 0 {
		q.Tolerance = v
	}

	result, err := h.service.RecommendDemographic(c.Context(), q)
	if err != nil {
		log.Printf("demographic recommendation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate recommendations"})
	}
	return c.JSON(result)
}

func (h *Handler) getRetrainCheck(c *fiber.Ctx) error {
	verdict, err := h.service.CheckRetrain(c.Context())
	if err != nil {
		log.Printf("retrain check error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check retrain thresholds"})
	}
	return c.JSON(verdict)
}
