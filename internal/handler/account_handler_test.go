package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/service"
)

// ---- mock implementations ----

type mockAccountRegistrar struct {
	registerFn func(models.Account) (*models.Account, error)
	loginFn    func(string, string) (*models.Account, error)
}

func (m *mockAccountRegistrar) Register(candidate models.Account) (*models.Account, error) {
	if m.registerFn != nil {
		return m.registerFn(candidate)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountRegistrar) VerifyLogin(username, password string) (*models.Account, error) {
	if m.loginFn != nil {
		return m.loginFn(username, password)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newAccountTestRouter(accounts AccountRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAccountHandler(accounts)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- test data ----

var aTestAccount = &models.Account{ID: 1, Username: "bob", Password: "1234"}

// ---- tests ----

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		registerFn     func(models.Account) (*models.Account, error)
		expectedStatus int
	}{
		{
			name:           "success - account created",
			body:           map[string]interface{}{"username": "bob", "password": "1234"},
			registerFn:     func(models.Account) (*models.Account, error) { return aTestAccount, nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing username",
			body:           map[string]interface{}{"password": "1234"},
			registerFn:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - password too short",
			body:           map[string]interface{}{"username": "bob", "password": "123"},
			registerFn:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad request - service rejects blank username",
			body: map[string]interface{}{"username": "   ", "password": "1234"},
			registerFn: func(models.Account) (*models.Account, error) {
				return nil, service.ErrInvalidAccount
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict - username taken",
			body: map[string]interface{}{"username": "bob", "password": "1234"},
			registerFn: func(models.Account) (*models.Account, error) {
				return nil, service.ErrUsernameTaken
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "server error - store failure",
			body: map[string]interface{}{"username": "bob", "password": "1234"},
			registerFn: func(models.Account) (*models.Account, error) {
				return nil, fmt.Errorf("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAccountTestRouter(&mockAccountRegistrar{registerFn: tt.registerFn})
			w := doRequest(router, http.MethodPost, "/register", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRegisterResponseBody(t *testing.T) {
	router := newAccountTestRouter(&mockAccountRegistrar{
		registerFn: func(models.Account) (*models.Account, error) { return aTestAccount, nil },
	})
	w := doRequest(router, http.MethodPost, "/register", map[string]interface{}{"username": "bob", "password": "1234"})

	var got models.Account
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 1 || got.Username != "bob" {
		t.Errorf("unexpected response account: %+v", got)
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		loginFn        func(string, string) (*models.Account, error)
		expectedStatus int
	}{
		{
			name:           "success - correct credentials",
			body:           map[string]interface{}{"username": "bob", "password": "1234"},
			loginFn:        func(string, string) (*models.Account, error) { return aTestAccount, nil },
			expectedStatus: http.StatusOK,
		},
		{
			name: "unauthorized - wrong password",
			body: map[string]interface{}{"username": "bob", "password": "4321"},
			loginFn: func(string, string) (*models.Account, error) {
				return nil, service.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unauthorized - unknown username",
			body: map[string]interface{}{"username": "alice", "password": "1234"},
			loginFn: func(string, string) (*models.Account, error) {
				return nil, service.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unauthorized - missing password",
			body: map[string]interface{}{"username": "bob"},
			loginFn: func(string, string) (*models.Account, error) {
				return nil, service.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAccountTestRouter(&mockAccountRegistrar{loginFn: tt.loginFn})
			w := doRequest(router, http.MethodPost, "/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
