package server

import "net/http"

// BasicRouter routes the directory's HTTP surface: a middleware chain folded
// over [http.ServeMux].
type BasicRouter struct {
	mux   *http.ServeMux
	chain http.Handler
}

// NewBasicRouter creates an empty router with no middleware.
func NewBasicRouter() *BasicRouter {
	mux := http.NewServeMux()
	return &BasicRouter{mux: mux, chain: mux}
}

// Use folds middleware into the chain. Within one call, the first middleware
// ends up outermost; every registered route runs through the full chain.
func (r *BasicRouter) Use(middleware ...Middleware) {
	for i := len(middleware) - 1; i >= 0; i-- {
		r.chain = middleware[i](r.chain)
	}
}

// Handle registers a handler for a single method and path using the mux's
// method-qualified patterns. The mux answers 405 for other methods on the
// same path.
func (r *BasicRouter) Handle(method, path string, handler http.Handler) {
	r.mux.Handle(method+" "+path, handler)
}

// Handler registers every pattern from [Handler.Routes] against the handler.
// Method dispatch within a pattern is the handler's own concern.
func (r *BasicRouter) Handler(handler Handler) {
	for _, route := range handler.Routes() {
		r.mux.Handle(route, handler)
	}
}

// ServeHTTP sends the request through the middleware chain into the mux.
func (r *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.chain.ServeHTTP(w, req)
}
