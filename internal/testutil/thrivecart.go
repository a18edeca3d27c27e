package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/justinas/alice"
)

const emptyTransactionsPage = `{"meta":{"total":0,"results":25},"transactions":[]}`

type failure struct {
	status int
	body   string
}

// ThriveCartServer simula GET /api/external/transactions com páginas pré-definidas
type ThriveCartServer struct {
	*httptest.Server
	APIKey   string
	Recorder *Recorder

	mu       sync.Mutex
	pages    map[int]string
	failures map[int]failure
}

func NewThriveCartServer(apiKey string) *ThriveCartServer {
	s := &ThriveCartServer{
		APIKey:   apiKey,
		Recorder: &Recorder{},
		pages:    make(map[int]string),
		failures: make(map[int]failure),
	}

	router := NewRouter(Route{
		Path:        "/api/external/transactions",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(s.transactions),
		Middlewares: []alice.Constructor{BearerAuth(apiKey)},
	})

	s.Server = httptest.NewServer(alice.New(s.Recorder.Middleware()).Then(router))

	return s
}

// SetPage define o corpo JSON devolvido para a página
func (s *ThriveCartServer) SetPage(page int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages[page] = body
}

// FailPage faz a página responder com o status e corpo informados
func (s *ThriveCartServer) FailPage(page, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[page] = failure{status: status, body: body}
}

func (s *ThriveCartServer) transactions(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	body, ok := s.pages[page]
	fail, failed := s.failures[page]
	s.mu.Unlock()

	if failed {
		w.WriteHeader(fail.status)
		_, _ = w.Write([]byte(fail.body))
		return
	}

	if !ok {
		body = emptyTransactionsPage
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
