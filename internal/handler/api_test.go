package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"bardabar-be-svc/internal/config"
	"bardabar-be-svc/internal/database"
	"bardabar-be-svc/internal/middleware"
	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/internal/upload"
	"bardabar-be-svc/pkg/logger"
)

const testJWTSecret = "api-test-secret"

// newTestServer wires the full HTTP stack against a throwaway sqlite
// database, mirroring the production composition in cmd/server.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(&config.DatabaseConfig{
		Driver: "sqlite",
		DBName: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := logger.NewLogger("error", "text")
	uploadDir := t.TempDir()
	uploader := upload.NewUploader(uploadDir)

	menuRepo := repository.NewMenuRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	newsRepo := repository.NewNewsRepository(db.DB)
	staffRepo := repository.NewStaffRepository(db.DB)
	contactRepo := repository.NewContactRepository(db.DB)
	aboutRepo := repository.NewAboutRepository(db.DB)
	adminRepo := repository.NewAdminRepository(db.DB)

	jwtConfig := config.JWTConfig{Secret: testJWTSecret, TTLHours: 1}

	router := gin.New()
	router.Use(gin.Recovery())
	router.NoRoute(middleware.NoRouteHandler())
	router.Static("/uploads", uploadDir)

	SetupRoutes(
		router,
		service.NewMenuService(menuRepo, uploader, log),
		service.NewEventService(eventRepo, uploader, log),
		service.NewNewsService(newsRepo, uploader, log),
		service.NewStaffService(staffRepo, uploader, log),
		service.NewContactService(contactRepo, log),
		service.NewAboutService(aboutRepo, log),
		service.NewAdminService(adminRepo, jwtConfig, log),
		testJWTSecret,
		log,
	)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeInto(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/verify", "",
		gin.H{"password": service.DefaultAdminPassword})
	if recorder.Code != http.StatusOK {
		t.Fatalf("verify returned %d: %s", recorder.Code, recorder.Body.String())
	}

	var result struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	decodeInto(t, recorder, &result)
	if !result.Success || result.Token == "" {
		t.Fatalf("expected admin token, got %+v", result)
	}
	return result.Token
}

func TestHealthCheck(t *testing.T) {
	router := newTestServer(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var body map[string]string
	decodeInto(t, recorder, &body)
	if body["status"] != "ok" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestServer(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/nope", "", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	var body map[string]string
	decodeInto(t, recorder, &body)
	if body["error"] != "Route not found" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAdminVerifyAndStatus(t *testing.T) {
	router := newTestServer(t)

	wrong := doJSON(t, router, http.MethodPost, "/api/admin/verify", "", gin.H{"password": "guess"})
	if wrong.Code != http.StatusOK {
		t.Fatalf("expected 200 for wrong password, got %d", wrong.Code)
	}
	var rejected struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	decodeInto(t, wrong, &rejected)
	if rejected.Success || rejected.Token != "" {
		t.Errorf("wrong password must not issue a token: %+v", rejected)
	}

	token := adminToken(t, router)

	anonymous := doJSON(t, router, http.MethodGet, "/api/admin/status", "", nil)
	var anonStatus struct {
		IsAdmin bool `json:"isAdmin"`
	}
	decodeInto(t, anonymous, &anonStatus)
	if anonStatus.IsAdmin {
		t.Error("anonymous caller reported as admin")
	}

	authed := doJSON(t, router, http.MethodGet, "/api/admin/status", token, nil)
	var status struct {
		IsAdmin bool `json:"isAdmin"`
	}
	decodeInto(t, authed, &status)
	if !status.IsAdmin {
		t.Error("token holder not reported as admin")
	}
}

func TestMutationsRequireAdminToken(t *testing.T) {
	router := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/menu/categories"},
		{http.MethodPut, "/api/menu/categories/1"},
		{http.MethodDelete, "/api/menu/categories/1"},
		{http.MethodPost, "/api/menu/items"},
		{http.MethodPost, "/api/events"},
		{http.MethodPost, "/api/news"},
		{http.MethodPost, "/api/staff"},
		{http.MethodGet, "/api/contacts"},
		{http.MethodPut, "/api/about"},
		{http.MethodPost, "/api/admin/password"},
	}
	for _, p := range paths {
		recorder := doJSON(t, router, p.method, p.path, "", gin.H{})
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, recorder.Code)
		}
	}

	// No write may have slipped through the gate.
	categories := doJSON(t, router, http.MethodGet, "/api/menu/categories", "", nil)
	var list []models.MenuCategory
	decodeInto(t, categories, &list)
	if len(list) != 0 {
		t.Errorf("unauthorized request created data: %+v", list)
	}
}

func TestCategoryListedAtOrderPosition(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t, router)

	for i, name := range []string{"Закуски", "Супы", "Горячее"} {
		recorder := doJSON(t, router, http.MethodPost, "/api/menu/categories", token,
			gin.H{"name": name, "order": (i + 1) * 10})
		if recorder.Code != http.StatusOK {
			t.Fatalf("create %q returned %d: %s", name, recorder.Code, recorder.Body.String())
		}
	}

	created := doJSON(t, router, http.MethodPost, "/api/menu/categories", token,
		gin.H{"name": "Десерты", "order": 25})
	if created.Code != http.StatusOK {
		t.Fatalf("create returned %d: %s", created.Code, created.Body.String())
	}

	recorder := doJSON(t, router, http.MethodGet, "/api/menu/categories", "", nil)
	var list []models.MenuCategory
	decodeInto(t, recorder, &list)

	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	want := []string{"Закуски", "Супы", "Десерты", "Горячее"}
	if len(names) != len(want) {
		t.Fatalf("expected %d categories, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestContactFlow(t *testing.T) {
	router := newTestServer(t)

	submitted := doJSON(t, router, http.MethodPost, "/api/contacts", "", gin.H{
		"name":    "Анна",
		"phone":   "+7 900 000-00-00",
		"type":    "reservation",
		"message": "Столик на четверых",
	})
	if submitted.Code != http.StatusOK {
		t.Fatalf("public submit returned %d: %s", submitted.Code, submitted.Body.String())
	}

	invalid := doJSON(t, router, http.MethodPost, "/api/contacts", "", gin.H{"name": "Анна"})
	if invalid.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for incomplete request, got %d", invalid.Code)
	}

	gated := doJSON(t, router, http.MethodGet, "/api/contacts", "", nil)
	if gated.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 listing without token, got %d", gated.Code)
	}

	token := adminToken(t, router)
	listed := doJSON(t, router, http.MethodGet, "/api/contacts", token, nil)
	if listed.Code != http.StatusOK {
		t.Fatalf("admin listing returned %d: %s", listed.Code, listed.Body.String())
	}
	var requests []models.ContactRequest
	decodeInto(t, listed, &requests)
	if len(requests) != 1 || requests[0].Name != "Анна" {
		t.Errorf("unexpected stored requests: %+v", requests)
	}
}

func TestMenuItemImageUploadAndServing(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t, router)

	category := doJSON(t, router, http.MethodPost, "/api/menu/categories", token,
		gin.H{"name": "Пицца", "order": 1})
	var cat models.MenuCategory
	decodeInto(t, category, &cat)

	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x10, 0x20, 0x30}
	payload := base64.StdEncoding.EncodeToString(raw)
	created := doJSON(t, router, http.MethodPost, "/api/menu/items", token, gin.H{
		"name":        "Маргарита",
		"price":       450,
		"categoryId":  cat.ID,
		"imageBase64": "data:image/jpeg;base64," + payload,
	})
	if created.Code != http.StatusOK {
		t.Fatalf("create item returned %d: %s", created.Code, created.Body.String())
	}

	var item models.MenuItem
	decodeInto(t, created, &item)
	if !strings.HasPrefix(item.ImageURL, "/uploads/menu-items/") {
		t.Fatalf("expected uploads URL, got %q", item.ImageURL)
	}
	if strings.Contains(created.Body.String(), payload) {
		t.Error("base64 payload leaked into the item response")
	}

	served := doJSON(t, router, http.MethodGet, item.ImageURL, "", nil)
	if served.Code != http.StatusOK {
		t.Fatalf("stored image not served: %d", served.Code)
	}
	if !bytes.Equal(served.Body.Bytes(), raw) {
		t.Error("served image bytes differ from uploaded payload")
	}
}

func TestCreateItemRejectsBadImage(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t, router)

	category := doJSON(t, router, http.MethodPost, "/api/menu/categories", token,
		gin.H{"name": "Салаты", "order": 1})
	var cat models.MenuCategory
	decodeInto(t, category, &cat)

	created := doJSON(t, router, http.MethodPost, "/api/menu/items", token, gin.H{
		"name":        "Цезарь",
		"price":       380,
		"categoryId":  cat.ID,
		"imageBase64": "plain text, no marker",
	})
	if created.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", created.Code, created.Body.String())
	}

	items := doJSON(t, router, http.MethodGet, "/api/menu/items", "", nil)
	var list []models.MenuItem
	decodeInto(t, items, &list)
	if len(list) != 0 {
		t.Errorf("rejected item was persisted: %+v", list)
	}
}

func TestImportItemsEndpoint(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t, router)

	category := doJSON(t, router, http.MethodPost, "/api/menu/categories", token,
		gin.H{"name": "Импорт", "order": 1})
	var cat models.MenuCategory
	decodeInto(t, category, &cat)

	workbook := excelize.NewFile()
	rows := [][]interface{}{
		{"Категория", "Цена", "Название", "Описание", "Артикул"},
		{cat.ID, 450, "Плов", "С бараниной", "M-101"},
		{cat.ID, 200, "Лагман", "", "M-102"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := workbook.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("file", "menu.xlsx")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if err := workbook.Write(part); err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/menu/items/import", &form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("import returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var result struct {
		Inserted int `json:"inserted"`
		Skipped  int `json:"skipped"`
	}
	decodeInto(t, recorder, &result)
	if result.Inserted != 2 || result.Skipped != 0 {
		t.Errorf("expected 2 inserted / 0 skipped, got %+v", result)
	}

	items := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/menu/items?categoryId=%d", cat.ID), "", nil)
	var list []models.MenuItem
	decodeInto(t, items, &list)
	if len(list) != 2 {
		t.Errorf("expected 2 imported items, got %d", len(list))
	}
}

func TestEventLifecycle(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t, router)

	date := time.Now().AddDate(0, 0, 7).UTC().Format(time.RFC3339)
	created := doJSON(t, router, http.MethodPost, "/api/events", token, gin.H{
		"title":       "Джазовый вечер",
		"description": "Живая музыка",
		"date":        date,
	})
	if created.Code != http.StatusOK {
		t.Fatalf("create returned %d: %s", created.Code, created.Body.String())
	}
	var event models.Event
	decodeInto(t, created, &event)

	title := "Джаз и блюз"
	updated := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/events/%d", event.ID), token,
		gin.H{"title": title})
	if updated.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", updated.Code, updated.Body.String())
	}
	var changed models.Event
	decodeInto(t, updated, &changed)
	if changed.Title != title || changed.Description != "Живая музыка" {
		t.Errorf("partial update wrong: %+v", changed)
	}

	missing := doJSON(t, router, http.MethodPut, "/api/events/9999", token, gin.H{"title": "x"})
	if missing.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown event, got %d", missing.Code)
	}

	deleted := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/events/%d", event.ID), token, nil)
	if deleted.Code != http.StatusOK {
		t.Fatalf("delete returned %d: %s", deleted.Code, deleted.Body.String())
	}

	listed := doJSON(t, router, http.MethodGet, "/api/events", "", nil)
	var events []models.Event
	decodeInto(t, listed, &events)
	if len(events) != 0 {
		t.Errorf("expected empty event list, got %+v", events)
	}
}

func TestAboutLifecycle(t *testing.T) {
	router := newTestServer(t)

	first := doJSON(t, router, http.MethodGet, "/api/about", "", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("get returned %d: %s", first.Code, first.Body.String())
	}
	var defaults models.AboutContent
	decodeInto(t, first, &defaults)
	if defaults.Title != "О нас" || defaults.Advantages != "[]" {
		t.Errorf("unexpected defaults: %+v", defaults)
	}

	token := adminToken(t, router)
	updated := doJSON(t, router, http.MethodPut, "/api/about", token, gin.H{
		"content":    "Кафе в самом центре",
		"advantages": `[{"title":"Парковка","description":"Бесплатная"}]`,
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", updated.Code, updated.Body.String())
	}

	invalid := doJSON(t, router, http.MethodPut, "/api/about", token, gin.H{
		"content":    "не пройдёт",
		"advantages": "{broken",
	})
	if invalid.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for broken advantages, got %d", invalid.Code)
	}

	second := doJSON(t, router, http.MethodGet, "/api/about", "", nil)
	var content models.AboutContent
	decodeInto(t, second, &content)
	if content.Content != "Кафе в самом центре" {
		t.Errorf("rejected update mutated content: %q", content.Content)
	}
	if content.ID != defaults.ID {
		t.Errorf("about content is not a singleton: %d vs %d", content.ID, defaults.ID)
	}
}

func TestSetPasswordEndpoint(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t, router)

	changed := doJSON(t, router, http.MethodPost, "/api/admin/password", token,
		gin.H{"password": "совершенно-новый"})
	if changed.Code != http.StatusOK {
		t.Fatalf("set password returned %d: %s", changed.Code, changed.Body.String())
	}

	old := doJSON(t, router, http.MethodPost, "/api/admin/verify", "",
		gin.H{"password": service.DefaultAdminPassword})
	var rejected struct {
		Success bool `json:"success"`
	}
	decodeInto(t, old, &rejected)
	if rejected.Success {
		t.Error("default password still accepted after change")
	}

	current := doJSON(t, router, http.MethodPost, "/api/admin/verify", "",
		gin.H{"password": "совершенно-новый"})
	var accepted struct {
		Success bool `json:"success"`
	}
	decodeInto(t, current, &accepted)
	if !accepted.Success {
		t.Error("new password rejected")
	}
}
