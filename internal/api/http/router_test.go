package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/api/http/handlers"
	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/config"
	"github.com/a1technologies/cooling-crm/internal/events"
	"github.com/a1technologies/cooling-crm/internal/idgen"
	"github.com/a1technologies/cooling-crm/internal/observability"
	"github.com/a1technologies/cooling-crm/internal/repository"
	"github.com/a1technologies/cooling-crm/internal/seed"
	"github.com/a1technologies/cooling-crm/internal/service"
	"github.com/a1technologies/cooling-crm/internal/session"
	"github.com/a1technologies/cooling-crm/pkg/util/validator"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	data, err := seed.Default()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	ids, err := idgen.NewSnowflake(1)
	if err != nil {
		t.Fatalf("idgen: %v", err)
	}
	logger := zap.NewNop()
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60}}

	productRepo := repository.NewProductRepository(data.Products)
	dispatcher := events.NewInMemoryDispatcher()
	sessions := session.NewManager(session.ManagerDependencies{
		Slot:      session.NewMemorySlot(),
		Directory: session.NewStaticDirectory(data.Identities),
		SlotKey:   config.DefaultSlotKey,
	})
	authService := service.NewAuthService(cfg, service.AuthDependencies{Sessions: sessions})
	catalog := service.NewCatalogService(service.CatalogDependencies{ProductRepo: productRepo, IDs: ids})
	ledger := service.NewLedgerService(service.LedgerDependencies{
		RequestRepo:    repository.NewServiceRequestRepository(data.ServiceRequests),
		ProductRepo:    productRepo,
		TechnicianRepo: repository.NewTechnicianRepository(data.Technicians),
		HistoryRepo:    repository.NewStatusHistoryRepository(),
		Dispatcher:     dispatcher,
		IDs:            ids,
	})
	content, err := service.NewContentService(context.Background(), data.Content, service.ContentDependencies{
		Store:      repository.NewLogContentStore(logger),
		Dispatcher: dispatcher,
		IDs:        ids,
		Logger:     logger,
	})
	if err != nil {
		t.Fatalf("content: %v", err)
	}

	metrics := observability.NewMetrics()
	v := validator.New()
	app := NewApp("a1-cooling-crm-test")
	RegisterMiddlewares(app, logger, metrics, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:          handlers.NewHealthHandler("a1-cooling-crm", "test", handlers.HealthDependencies{}),
		Metrics:         handlers.NewMetricsHandler(metrics),
		Auth:            handlers.NewAuthHandler(authService, v, false),
		Products:        handlers.NewProductsHandler(catalog, v),
		ServiceRequests: handlers.NewServiceRequestsHandler(ledger, v),
		Content:         handlers.NewContentHandler(content, v),
		Views: handlers.NewViewsHandler(handlers.ViewsDependencies{
			Auth:    authService,
			Catalog: catalog,
			Ledger:  ledger,
			Content: content,
		}),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), sessions, logger),
	})
	return app
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope, []byte, string) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		_ = json.Unmarshal(raw, &env)
	}
	return resp.StatusCode, env, raw, resp.Header.Get(fiber.HeaderLocation)
}

func loginAs(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	status, env, raw, _ := do(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{"email": email})
	if status != fiber.StatusOK {
		t.Fatalf("login %s: %d %s", email, status, raw)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("login %s: missing token in %s", email, raw)
	}
	return data.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return out
}

func TestViewsForAnonymousVisitor(t *testing.T) {
	app := newTestApp(t)

	status, _, raw, _ := do(t, app, fiber.MethodGet, "/", "", nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), `"view":"landing"`) {
		t.Fatalf("expected landing view, got %d %s", status, raw)
	}

	status, _, raw, _ = do(t, app, fiber.MethodGet, "/login", "", nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), "customer@a1.com") {
		t.Fatalf("expected login view with demo accounts, got %d %s", status, raw)
	}

	status, _, raw, _ = do(t, app, fiber.MethodGet, "/product/p002", "", nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), "Heavy Duty Ducting") {
		t.Fatalf("expected product detail, got %d %s", status, raw)
	}

	status, _, _, _ = do(t, app, fiber.MethodGet, "/product/missing", "", nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", status)
	}

	redirects := map[string]string{
		"/print-report/sr003": "/login",
		"/admin":              "/",
		"/product":            "/",
	}
	for path, want := range redirects {
		status, _, _, location := do(t, app, fiber.MethodGet, path, "", nil)
		if status != fiber.StatusFound || location != want {
			t.Fatalf("%s: expected redirect to %s, got %d %q", path, want, status, location)
		}
	}
}

func TestViewsForRoles(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		email string
		view  string
		panel string
	}{
		{"admin@a1.com", "admin_dashboard", "Admin Panel"},
		{"tech@a1.com", "technician_dashboard", "Technician Panel"},
		{"customer@a1.com", "customer_dashboard", "Customer Portal"},
	}
	for _, tc := range cases {
		t.Run(tc.view, func(t *testing.T) {
			token := loginAs(t, app, tc.email)
			status, _, raw, _ := do(t, app, fiber.MethodGet, "/", token, nil)
			if status != fiber.StatusOK || !strings.Contains(string(raw), `"view":"`+tc.view+`"`) || !strings.Contains(string(raw), tc.panel) {
				t.Fatalf("expected %s, got %d %s", tc.view, status, raw)
			}
			status, _, _, location := do(t, app, fiber.MethodGet, "/login", token, nil)
			if status != fiber.StatusFound || location != "/" {
				t.Fatalf("logged in /login must redirect home, got %d %q", status, location)
			}
		})
	}
}

func TestPrintReport(t *testing.T) {
	app := newTestApp(t)
	admin := loginAs(t, app, "admin@a1.com")

	status, _, raw, _ := do(t, app, fiber.MethodGet, "/print-report/sr003", admin, nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), "window.print()") {
		t.Fatalf("expected printable html, got %d", status)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/print-report/sr003?format=pdf", nil)
	req.Header.Set(fiber.HeaderCookie, auth.CookieName+"="+admin)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK || resp.Header.Get(fiber.HeaderContentType) != "application/pdf" || !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatalf("expected pdf via cookie, got %d %q", resp.StatusCode, resp.Header.Get(fiber.HeaderContentType))
	}

	status, _, raw, _ = do(t, app, fiber.MethodGet, "/print-report/nope", admin, nil)
	if status != fiber.StatusNotFound || !strings.Contains(string(raw), "Report not found.") {
		t.Fatalf("expected not found page, got %d %s", status, raw)
	}

	customer := loginAs(t, app, "customer@a1.com")
	status, _, _, location := do(t, app, fiber.MethodGet, "/print-report/sr003", customer, nil)
	if status != fiber.StatusFound || location != "/" {
		t.Fatalf("non-admin must be redirected, got %d %q", status, location)
	}
}

func TestLoginErrors(t *testing.T) {
	app := newTestApp(t)

	status, env, _, _ := do(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@x.com"})
	if status != fiber.StatusUnauthorized || env.Error == nil || env.Error.Code != "UNKNOWN_EMAIL" {
		t.Fatalf("expected UNKNOWN_EMAIL, got %d %+v", status, env.Error)
	}
	status, _, raw, _ := do(t, app, fiber.MethodGet, "/login", "", nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), `"view":"login"`) {
		t.Fatalf("failed login must leave login view reachable, got %d", status)
	}

	status, env, _, _ = do(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{"email": ""})
	if status != fiber.StatusBadRequest || env.Error == nil || env.Error.Message != service.EmailRequiredMessage {
		t.Fatalf("expected email prompt, got %d %+v", status, env.Error)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "customer@a1.com")

	status, _, raw, _ := do(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), "John Doe") {
		t.Fatalf("me: %d %s", status, raw)
	}
	if status, _, _, _ := do(t, app, fiber.MethodPost, "/api/auth/logout", token, nil); status != fiber.StatusNoContent {
		t.Fatalf("logout: %d", status)
	}
	status, env, _, _ := do(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	if status != fiber.StatusUnauthorized || env.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("expected 401 after logout, got %d", status)
	}
}

func TestServiceRequestLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	admin := loginAs(t, app, "admin@a1.com")
	tech := loginAs(t, app, "tech@a1.com")
	customer := loginAs(t, app, "customer@a1.com")

	status, env, raw, _ := do(t, app, fiber.MethodPost, "/api/service-requests", customer, map[string]string{
		"product_id":        "p001",
		"issue_description": "Not cooling properly",
		"address":           "123 Main St, Mumbai",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("submit: %d %s", status, raw)
	}
	created := decode[map[string]any](t, env.Data)
	id, _ := created["id"].(string)
	if created["status"] != "unsolved" || !strings.HasPrefix(id, "sr") {
		t.Fatalf("unexpected created request %v", created)
	}

	status, env, _, _ = do(t, app, fiber.MethodPost, "/api/service-requests/"+id+"/assign", customer, map[string]string{"technician_id": "tech1"})
	if status != fiber.StatusForbidden || env.Error.Code != "FORBIDDEN" {
		t.Fatalf("customer assign must be forbidden, got %d", status)
	}

	status, env, _, _ = do(t, app, fiber.MethodPost, "/api/service-requests/"+id+"/complete", tech, map[string]any{"rating": 5})
	if status != fiber.StatusConflict || env.Error.Code != "INVALID_TRANSITION" {
		t.Fatalf("complete before assign must conflict, got %d", status)
	}

	status, env, raw, _ = do(t, app, fiber.MethodPost, "/api/service-requests/"+id+"/assign", admin, map[string]string{"technician_id": "tech1"})
	if status != fiber.StatusOK {
		t.Fatalf("assign: %d %s", status, raw)
	}
	assigned := decode[map[string]any](t, env.Data)
	if assigned["status"] != "in_process" || assigned["assigned_technician_name"] != "Ramesh Kumar" {
		t.Fatalf("unexpected assigned request %v", assigned)
	}

	status, env, _, _ = do(t, app, fiber.MethodPost, "/api/service-requests/"+id+"/complete", tech, map[string]any{"notes": "Replaced pump", "rating": 0})
	if status != fiber.StatusBadRequest || env.Error.Message != service.RatingRequiredMessage {
		t.Fatalf("rating 0 must be rejected, got %d %+v", status, env.Error)
	}

	status, env, raw, _ = do(t, app, fiber.MethodPost, "/api/service-requests/"+id+"/complete", tech, map[string]any{"notes": "Replaced pump", "rating": 5, "remarks": "Great"})
	if status != fiber.StatusOK {
		t.Fatalf("complete: %d %s", status, raw)
	}
	solved := decode[map[string]any](t, env.Data)
	feedback, _ := solved["feedback"].(map[string]any)
	if solved["status"] != "solved" || feedback["remarks"] != "Great" {
		t.Fatalf("unexpected solved request %v", solved)
	}

	status, env, _, _ = do(t, app, fiber.MethodGet, "/api/service-requests/"+id+"/history", admin, nil)
	if history := decode[[]map[string]any](t, env.Data); status != fiber.StatusOK || len(history) != 2 {
		t.Fatalf("expected two history entries, got %d %v", status, history)
	}

	status, env, _, _ = do(t, app, fiber.MethodGet, "/api/service-requests/mine", customer, nil)
	mine := decode[[]map[string]any](t, env.Data)
	if status != fiber.StatusOK || len(mine) == 0 || mine[0]["id"] != id {
		t.Fatalf("new request must lead the customer's list, got %v", mine)
	}

	status, env, _, _ = do(t, app, fiber.MethodGet, "/api/service-requests?status=solved&search=cooler", admin, nil)
	filtered := decode[[]map[string]any](t, env.Data)
	if status != fiber.StatusOK || len(filtered) == 0 {
		t.Fatalf("expected filtered results, got %d %v", status, filtered)
	}
	for _, r := range filtered {
		if r["status"] != "solved" {
			t.Fatalf("filter leaked %v", r)
		}
	}

	if status, _, _, _ := do(t, app, fiber.MethodGet, "/api/service-requests?status=bogus", admin, nil); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad status, got %d", status)
	}
}

func TestAPIGuards(t *testing.T) {
	app := newTestApp(t)

	status, env, _, _ := do(t, app, fiber.MethodGet, "/api/service-requests", "", nil)
	if status != fiber.StatusUnauthorized || env.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("expected 401, got %d", status)
	}
	status, env, _, _ = do(t, app, fiber.MethodGet, "/api/nothing-here", "", nil)
	if status != fiber.StatusNotFound || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("expected 404 envelope, got %d", status)
	}
	status, _, _, _ = do(t, app, fiber.MethodGet, "/api/products", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("catalog is public, got %d", status)
	}
	tech := loginAs(t, app, "tech@a1.com")
	status, _, _, _ = do(t, app, fiber.MethodPost, "/api/products", tech, map[string]any{"name": "X", "price": 1})
	if status != fiber.StatusForbidden {
		t.Fatalf("technician must not edit catalog, got %d", status)
	}
}

func TestCatalogAndContentOverHTTP(t *testing.T) {
	app := newTestApp(t)
	admin := loginAs(t, app, "admin@a1.com")

	status, env, _, _ := do(t, app, fiber.MethodPost, "/api/products", admin, map[string]any{"name": "", "price": -1})
	if status != fiber.StatusBadRequest || env.Error.Details["name"] != "required" {
		t.Fatalf("expected validation details, got %d %+v", status, env.Error)
	}

	status, env, _, _ = do(t, app, fiber.MethodPost, "/api/products", admin, map[string]any{
		"name":           "Mist Fan",
		"specifications": "Quiet, , 3 Speeds",
		"price":          7000,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create product: %d", status)
	}
	product := decode[map[string]any](t, env.Data)
	specs, _ := product["specifications"].([]any)
	if len(specs) != 2 || !strings.Contains(product["image_url"].(string), "picsum.photos/seed/Mist%20Fan") {
		t.Fatalf("unexpected product %v", product)
	}

	path := "/api/products/" + product["id"].(string)
	if status, _, _, _ := do(t, app, fiber.MethodDelete, path, admin, nil); status != fiber.StatusBadRequest {
		t.Fatalf("unconfirmed delete must fail, got %d", status)
	}
	if status, _, _, _ := do(t, app, fiber.MethodDelete, path+"?confirm=true", admin, nil); status != fiber.StatusNoContent {
		t.Fatalf("confirmed delete: %d", status)
	}
	if status, _, _, _ := do(t, app, fiber.MethodGet, path, "", nil); status != fiber.StatusNotFound {
		t.Fatalf("deleted product must be gone, got %d", status)
	}

	status, env, _, _ = do(t, app, fiber.MethodPut, "/api/content/testimonials", admin, map[string]string{
		"customer_name": "Asha",
		"text":          "Quick service",
	})
	if status != fiber.StatusOK {
		t.Fatalf("upsert testimonial: %d", status)
	}
	saved := decode[map[string]any](t, env.Data)
	tid, _ := saved["id"].(string)
	if !strings.HasPrefix(tid, "t") {
		t.Fatalf("unexpected testimonial id %q", tid)
	}
	if status, _, _, _ := do(t, app, fiber.MethodDelete, "/api/content/testimonials/"+tid+"?confirm=true", admin, nil); status != fiber.StatusNoContent {
		t.Fatalf("delete testimonial: %d", status)
	}

	status, _, _, _ = do(t, app, fiber.MethodPut, "/api/content/stats", admin, map[string]any{
		"stats": []map[string]string{{"id": "s1", "value": "1"}, {"id": "s1", "value": "2"}},
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("duplicate stat ids must fail, got %d", status)
	}

	status, _, _, _ = do(t, app, fiber.MethodPut, "/api/content/hero", admin, map[string]string{"title": "Cooler Summers", "subtitle": "Since 2010"})
	if status != fiber.StatusOK {
		t.Fatalf("hero: %d", status)
	}
	if status, _, _, _ := do(t, app, fiber.MethodPost, "/api/content/persist", admin, nil); status != fiber.StatusOK {
		t.Fatalf("persist: %d", status)
	}
	_, env, _, _ = do(t, app, fiber.MethodGet, "/api/content", "", nil)
	if doc := decode[map[string]any](t, env.Data); doc["hero"].(map[string]any)["title"] != "Cooler Summers" {
		t.Fatalf("hero not updated: %v", doc["hero"])
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)
	status, _, raw, _ := do(t, app, fiber.MethodGet, "/health/ready", "", nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), `"disabled"`) {
		t.Fatalf("ready: %d %s", status, raw)
	}
	status, _, raw, _ = do(t, app, fiber.MethodGet, "/metrics", "", nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), "/health/ready|GET|200") {
		t.Fatalf("metrics: %d %s", status, raw)
	}
}

func TestStoredIDsSurviveLaterRequests(t *testing.T) {
	app := newTestApp(t)
	admin := loginAs(t, app, "admin@a1.com")

	status, _, raw, _ := do(t, app, fiber.MethodPut, "/api/products/p001", admin, map[string]any{"name": "Industrial Cooler X2", "price": 26000})
	if status != fiber.StatusOK {
		t.Fatalf("update: %d %s", status, raw)
	}
	if status, _, _, _ := do(t, app, fiber.MethodGet, "/api/products/zzzz", "", nil); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for zzzz, got %d", status)
	}
	_, env, _, _ := do(t, app, fiber.MethodGet, "/api/products", "", nil)
	products := decode[[]map[string]any](t, env.Data)
	if len(products) == 0 || products[0]["id"] != "p001" || products[0]["name"] != "Industrial Cooler X2" {
		t.Fatalf("updated product id changed: %v", products)
	}

	if status, _, raw, _ := do(t, app, fiber.MethodPost, "/api/service-requests/sr001/assign", admin, map[string]string{"technician_id": "tech2"}); status != fiber.StatusOK {
		t.Fatalf("assign: %d %s", status, raw)
	}
	if status, _, _, _ := do(t, app, fiber.MethodGet, "/api/service-requests/xxxxx", admin, nil); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for xxxxx, got %d", status)
	}
	status, env, raw, _ = do(t, app, fiber.MethodGet, "/api/service-requests/sr001", admin, nil)
	if got := decode[map[string]any](t, env.Data); status != fiber.StatusOK || got["id"] != "sr001" || got["status"] != "in_process" {
		t.Fatalf("assigned request id changed: %d %s", status, raw)
	}
	status, env, _, _ = do(t, app, fiber.MethodGet, "/api/service-requests/sr001/history", admin, nil)
	if history := decode[[]map[string]any](t, env.Data); status != fiber.StatusOK || len(history) != 1 {
		t.Fatalf("history lost after later requests: %d %v", status, history)
	}
}
