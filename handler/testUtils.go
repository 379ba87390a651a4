package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"emberfall_backend/service"

	"github.com/gofiber/fiber/v2"
)

func testServer(h *GameHandler) *fiber.App {
	app := fiber.New()

	app.Post("/login", h.Login)
	app.Get("/info", h.ServerInfo)
	app.Get("/character/:name", h.CharacterInfo)
	app.Post("/presence", h.PresenceUpdate)

	app.Get("/vip/:accountId", h.VIPList)
	app.Post("/vip/add", h.VIPAdd)
	app.Post("/vip/edit", h.VIPEdit)
	app.Post("/vip/remove", h.VIPRemove)

	app.Get("/vip-groups/:accountId", h.VIPGroupList)
	app.Post("/vip-groups/add", h.VIPGroupAdd)
	app.Post("/vip-groups/edit", h.VIPGroupEdit)
	app.Post("/vip-groups/remove", h.VIPGroupRemove)
	app.Post("/vip-groups/add-member", h.VIPGroupAddMember)
	app.Post("/vip-groups/remove-member", h.VIPGroupRemoveMember)

	return app
}

func testHandler(auth *service.MockAuthService, players *service.MockPlayerService, worlds *service.MockWorldService, vip *service.MockVIPService, presence *service.MockPresenceService, log *service.MockLoggerService, sessionMode bool) *GameHandler {
	return New(auth, players, worlds, vip, presence, log, sessionMode)
}

func testSendRequest(t *testing.T, app *fiber.App, method, target string, data interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			t.Fatalf("Error encoding request body: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Error sending test request: %v", err)
	}
	return resp
}

func testDecode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Error decoding response body: %v", err)
	}
}
