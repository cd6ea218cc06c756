package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Route forwards everything under Prefix to Target. When StripPrefix is set
// the prefix is removed before forwarding ("/api/patients" -> "/patients" is
// expressed as Prefix:"/api", StripPrefix:true). Protected routes validate
// the bearer token before a single downstream byte is proxied.
type Route struct {
	Prefix      string
	Target      string
	StripPrefix bool
	Protected   bool
}

func NewRouter(routes []Route, validator TokenValidator) (http.Handler, error) {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	for _, route := range routes {
		target, err := url.Parse(route.Target)
		if err != nil {
			return nil, fmt.Errorf("parse route target %q: %w", route.Target, err)
		}
		prefix := "/" + strings.Trim(route.Prefix, "/")

		var handler http.Handler = newProxy(target, prefix, route.StripPrefix)
		if route.Protected {
			handler = RequireValidToken(validator)(handler)
		}
		r.Handle(prefix+"/*", handler)
		r.Handle(prefix, handler)
	}
	return r, nil
}

// newProxy builds a reverse proxy that rewrites only the target host (and
// optionally the prefix); headers, query, and body pass through unchanged.
func newProxy(target *url.URL, prefix string, strip bool) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.Host = target.Host
			if strip {
				path := strings.TrimPrefix(pr.In.URL.Path, prefix)
				if path == "" {
					path = "/"
				}
				pr.Out.URL.Path = path
			} else {
				pr.Out.URL.Path = pr.In.URL.Path
			}
			pr.SetXForwarded()
		},
	}
}
