package product

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func seedProducts(n int) []Product {
	out := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		price := float64(10 + i)
		out = append(out, Product{
			Asin:  fmt.Sprintf("B%04d", i),
			Title: fmt.Sprintf("Product %d", i),
			Price: &price,
		})
	}
	return out
}

func makeApp(seed []Product) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed))).RegisterPublicRoutes(app)
	return app
}

func TestGetProducts_DefaultLimit(t *testing.T) {
	app := makeApp(seedProducts(30))

	res, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}

	var got []Product
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 20 {
		t.Fatalf("default limit: got %d products, want 20", len(got))
	}
}

func TestGetProducts_ExplicitLimit(t *testing.T) {
	app := makeApp(seedProducts(30))

	res, err := app.Test(httptest.NewRequest("GET", "/api/products?limit=5", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got []Product
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d products, want 5", len(got))
	}
}

func TestGetProduct(t *testing.T) {
	app := makeApp(seedProducts(3))

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/B0001", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var got Product
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Asin != "B0001" || got.Title != "Product 1" {
		t.Fatalf("unexpected product: %+v", got)
	}

	res2, err := app.Test(httptest.NewRequest("GET", "/api/products/MISSING", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing product: status = %d", res2.StatusCode)
	}
}
