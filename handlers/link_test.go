package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"

	"github.com/wavegames/walletlink/middleware"
	"github.com/wavegames/walletlink/services"
	mockservices "github.com/wavegames/walletlink/services/mock"
)

const (
	testToken   = "tok-abc123"
	testDiscord = "111222333444555666"
	testAddress = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
)

func newLinkApp(links services.LinkService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	app.Post("/link", LinkDiscord(&WebApp{LinkService: links}))
	return app
}

func linkRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/link", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", raw, err)
	}
	return body
}

func Test_LinkDiscord(t *testing.T) {
	validBody := `{"token":"` + testToken + `","discord":"` + testDiscord + `","address":"` + testAddress + `"}`

	tests := []struct {
		name        string
		body        string
		setup       func(m *mockservices.MockLinkService)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed json",
			body:        `{"token":`,
			setup:       func(m *mockservices.MockLinkService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "bad address format",
			body:        `{"token":"t","discord":"d","address":"not-an-address"}`,
			setup:       func(m *mockservices.MockLinkService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name: "invalid token",
			body: validBody,
			setup: func(m *mockservices.MockLinkService) {
				m.EXPECT().
					RedeemToken(gomock.Any(), testToken, testDiscord, testAddress).
					Return(nil, services.ErrInvalidToken)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
		{
			name: "token already used",
			body: validBody,
			setup: func(m *mockservices.MockLinkService) {
				m.EXPECT().
					RedeemToken(gomock.Any(), testToken, testDiscord, testAddress).
					Return(nil, services.ErrTokenAlreadyUsed)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token already used",
		},
		{
			name: "address conflict",
			body: validBody,
			setup: func(m *mockservices.MockLinkService) {
				m.EXPECT().
					RedeemToken(gomock.Any(), testToken, testDiscord, testAddress).
					Return(nil, services.ErrAddressConflict)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Address already linked to another Discord account",
		},
		{
			name: "store failure stays opaque",
			body: validBody,
			setup: func(m *mockservices.MockLinkService) {
				m.EXPECT().
					RedeemToken(gomock.Any(), testToken, testDiscord, testAddress).
					Return(nil, errors.New("pq: connection refused"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Database error",
		},
		{
			name: "success",
			body: validBody,
			setup: func(m *mockservices.MockLinkService) {
				m.EXPECT().
					RedeemToken(gomock.Any(), testToken, testDiscord, testAddress).
					Return(&services.LinkResult{Address: testAddress, DiscordID: testDiscord}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Discord linked successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := mockservices.NewMockLinkService(gomock.NewController(t))
			tt.setup(links)

			app := newLinkApp(links)
			resp, err := app.Test(linkRequest(tt.body))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body := decodeBody(t, resp)
			if !bodyHasMessage(body, tt.wantMessage) {
				t.Errorf("response %v missing message %q", body, tt.wantMessage)
			}
		})
	}
}

// bodyHasMessage checks both the success message field and the nested error
// message field of the response envelope.
func bodyHasMessage(body map[string]any, want string) bool {
	if msg, ok := body["message"].(string); ok && msg == want {
		return true
	}
	if errObj, ok := body["error"].(map[string]any); ok {
		if msg, ok := errObj["message"].(string); ok && msg == want {
			return true
		}
	}
	return false
}

func Test_LinkDiscord_uppercaseAddressNormalized(t *testing.T) {
	links := mockservices.NewMockLinkService(gomock.NewController(t))
	links.EXPECT().
		RedeemToken(gomock.Any(), testToken, testDiscord, testAddress).
		Return(&services.LinkResult{Address: testAddress, DiscordID: testDiscord}, nil)

	app := newLinkApp(links)
	upper := "0x" + strings.ToUpper(testAddress[2:])
	body := `{"token":"` + testToken + `","discord":"` + testDiscord + `","address":"` + upper + `"}`

	resp, err := app.Test(linkRequest(body))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
