package testutil

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/justinas/alice"
)

// BearerAuth recusa requisições cujo cabeçalho Authorization não traga o token esperado
func BearerAuth(token string) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString != token {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RecordedRequest é uma requisição recebida por um servidor falso
type RecordedRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	StatusCode    int
}

// Recorder guarda as requisições recebidas, na ordem de chegada
type Recorder struct {
	mu       sync.Mutex
	requests []RecordedRequest
}

func (rec *Recorder) Requests() []RecordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	out := make([]RecordedRequest, len(rec.requests))
	copy(out, rec.requests)

	return out
}

// Count retorna quantas requisições chegaram no caminho informado
func (rec *Recorder) Count(path string) int {
	count := 0
	for _, req := range rec.Requests() {
		if req.Path == path {
			count++
		}
	}

	return count
}

// Middleware registra cada requisição com o status code devolvido
func (rec *Recorder) Middleware() alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(srw, r)

			rec.mu.Lock()
			rec.requests = append(rec.requests, RecordedRequest{
				Method:        r.Method,
				Path:          r.URL.Path,
				Query:         r.URL.Query(),
				Authorization: r.Header.Get("Authorization"),
				StatusCode:    srw.statusCode,
			})
			rec.mu.Unlock()
		})
	}
}

type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
