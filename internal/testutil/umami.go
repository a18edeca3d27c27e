package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UmamiServer simula o login e o endpoint de pageviews de uma instância Umami
type UmamiServer struct {
	*httptest.Server
	Username  string
	Password  string
	WebsiteID string
	Token     string
	Recorder  *Recorder

	mu              sync.Mutex
	pageviewsBody   string
	pageviewsStatus int
}

func NewUmamiServer(username, password, websiteID string) *UmamiServer {
	s := &UmamiServer{
		Username:        username,
		Password:        password,
		WebsiteID:       websiteID,
		Token:           SignedToken(username, time.Now().Add(time.Hour)),
		Recorder:        &Recorder{},
		pageviewsBody:   `{"pageviews":[],"sessions":[]}`,
		pageviewsStatus: http.StatusOK,
	}

	router := NewRouter(
		Route{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: http.HandlerFunc(s.login),
		},
		Route{
			Path:        "/api/websites/:id/pageviews",
			Method:      http.MethodGet,
			Handler:     http.HandlerFunc(s.pageviews),
			Middlewares: []alice.Constructor{BearerAuth(s.Token)},
		},
	)

	s.Server = httptest.NewServer(alice.New(s.Recorder.Middleware()).Then(router))

	return s
}

// SignedToken gera um JWT HS256 no formato emitido pelo Umami
func SignedToken(subject string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString([]byte("umami-test-secret"))
	if err != nil {
		panic(err)
	}

	return signed
}

// SetPageviews define a resposta do endpoint de pageviews
func (s *UmamiServer) SetPageviews(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pageviewsStatus = status
	s.pageviewsBody = body
}

func (s *UmamiServer) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if req.Username != s.Username || req.Password != s.Password {
		http.Error(w, "Incorrect username and/or password.", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": s.Token})
}

func (s *UmamiServer) pageviews(w http.ResponseWriter, r *http.Request) {
	if Param(r, "id") != s.WebsiteID {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	status, body := s.pageviewsStatus, s.pageviewsBody
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
