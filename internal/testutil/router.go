package testutil

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// Route descreve um endpoint dos servidores falsos dos provedores
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []alice.Constructor // Middlewares específicos desta rota
}

type Router struct {
	router *httprouter.Router
}

func NewRouter(routes ...Route) *Router {
	r := &Router{router: httprouter.New()}
	r.AddRoutes(routes...)

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas aplicando os middlewares na ordem declarada
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := alice.New(route.Middlewares...).Then(route.Handler)
		r.router.Handler(route.Method, route.Path, handler)
	}
}

// Param retorna um parâmetro de caminho, como :id em /api/websites/:id/pageviews
func Param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
