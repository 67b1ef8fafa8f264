package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// helper to build an app with a simple "bootstrap" middleware that injects a
// jwt.Token into locals when the X-User-ID header is provided. This avoids
// pulling in the full jwtware middleware and keeps tests lightweight.
func makeAppWithUserHandler(uHandler *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			claims := jwt.MapClaims{"user_id": v}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	uHandler.RegisterPublicRoutes(app)
	uHandler.RegisterProtectedRoutes(app)
	return app
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hashed)
}

func TestSignup_ValidationAndCreation(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeAppWithUserHandler(NewHandler(NewService(repo)))

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing fields", `{"email":"a@b.com","password":"pw"}`, fiber.StatusBadRequest},
		{"bad gender", `{"email":"a@b.com","password":"pw","reviewerName":"A","age":30,"gender":"Other","address":"Town"}`, fiber.StatusBadRequest},
		{"age out of range", `{"email":"a@b.com","password":"pw","reviewerName":"A","age":150,"gender":"Male","address":"Town"}`, fiber.StatusBadRequest},
		{"valid", `{"email":"a@b.com","password":"pw","reviewerName":"A","age":30,"gender":"Male","address":"Town"}`, fiber.StatusCreated},
		{"duplicate email", `{"email":"a@b.com","password":"pw","reviewerName":"A","age":30,"gender":"Male","address":"Town"}`, fiber.StatusConflict},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/api/user/signup", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if res.StatusCode != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, res.StatusCode, tc.want)
		}
	}

	created, err := repo.GetByEmail("a@b.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if len(created.UserID) != 26 {
		t.Fatalf("userId = %q, want 26-char id", created.UserID)
	}
	for _, ch := range created.UserID {
		if !strings.ContainsRune(userIDCharset, ch) {
			t.Fatalf("userId contains unexpected character %q", ch)
		}
	}
	if created.Password == "pw" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestSignin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	seed := []User{{
		UserID:   "SEEDUSER00000000000000000A",
		Email:    "j@example.com",
		Password: hashFor(t, "opensesame"),
	}}
	app := makeAppWithUserHandler(NewHandler(NewService(NewInMemoryRepository(seed))))

	req := httptest.NewRequest("POST", "/api/user/signin", strings.NewReader(`{"email":"j@example.com","password":"opensesame"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    User   `json:"user"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Login successful" || body.Token == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.User.Password != "" {
		t.Fatalf("password leaked in signin response")
	}

	tok, err := jwt.Parse(body.Token, func(*jwt.Token) (any, error) { return []byte("test-secret"), nil })
	if err != nil || !tok.Valid {
		t.Fatalf("returned token does not verify: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["user_id"] != "SEEDUSER00000000000000000A" {
		t.Fatalf("user_id claim = %v", claims["user_id"])
	}

	bad := httptest.NewRequest("POST", "/api/user/signin", strings.NewReader(`{"email":"j@example.com","password":"wrong"}`))
	bad.Header.Set("Content-Type", "application/json")
	res2, err := app.Test(bad)
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d", res2.StatusCode)
	}
}

func TestGetUserAndProfile(t *testing.T) {
	seed := []User{{UserID: "USERAAAAAAAAAAAAAAAAAAAAAA", Email: "j@example.com", ReviewerName: "Jenny"}}
	app := makeAppWithUserHandler(NewHandler(NewService(NewInMemoryRepository(seed))))

	res, err := app.Test(httptest.NewRequest("GET", "/api/user/USERAAAAAAAAAAAAAAAAAAAAAA", nil))
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Jenny") {
		t.Fatalf("body = %s", string(b))
	}

	res2, err := app.Test(httptest.NewRequest("GET", "/api/user/NOSUCHUSER", nil))
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing user: status = %d", res2.StatusCode)
	}

	// profile requires the jwt claim
	res3, err := app.Test(httptest.NewRequest("GET", "/api/profile", nil))
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if res3.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("unauthenticated profile: status = %d", res3.StatusCode)
	}

	req4 := httptest.NewRequest("GET", "/api/profile", nil)
	req4.Header.Set("X-User-ID", "USERAAAAAAAAAAAAAAAAAAAAAA")
	res4, err := app.Test(req4)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("authorized profile: status = %d", res4.StatusCode)
	}
	b4, _ := io.ReadAll(res4.Body)
	if strings.Contains(string(b4), "password") {
		t.Fatalf("profile response should not expose password field")
	}
}

func TestToggleLike(t *testing.T) {
	const id = "USERAAAAAAAAAAAAAAAAAAAAAA"
	repo := NewInMemoryRepository([]User{{UserID: id, Email: "j@example.com"}})
	app := makeAppWithUserHandler(NewHandler(NewService(repo)))

	like := func(asin string) []string {
		req := httptest.NewRequest("PUT", "/api/user/"+id+"/like", strings.NewReader(`{"asin":"`+asin+`"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", id)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("like failed: %v", err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("like status = %d", res.StatusCode)
		}
		var body struct {
			LikedProducts []string `json:"likedProducts"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body.LikedProducts
	}

	if got := like("B001"); len(got) != 1 || got[0] != "B001" {
		t.Fatalf("first like = %v", got)
	}
	if got := like("B002"); len(got) != 2 {
		t.Fatalf("second like = %v", got)
	}
	// liking again removes
	if got := like("B001"); len(got) != 1 || got[0] != "B002" {
		t.Fatalf("unlike = %v", got)
	}

	// cannot toggle another user's likes
	req := httptest.NewRequest("PUT", "/api/user/SOMEONEELSE/like", strings.NewReader(`{"asin":"B001"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", id)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("cross-user like: status = %d", res.StatusCode)
	}
}
