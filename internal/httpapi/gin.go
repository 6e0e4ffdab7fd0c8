package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Routes served by the long-running server.
var Routes = []string{"/", "/generate-podcast"}

// NewRouter builds a gin engine with CORS and the podcast routes.
func NewRouter(h *Handler, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(allowOrigins)))
	Register(r, h)
	return r
}

// Register mounts the handler on GET and OPTIONS for every route.
func Register(r gin.IRoutes, h *Handler) {
	for _, path := range Routes {
		r.GET(path, h.Gin)
		r.OPTIONS(path, h.Gin)
	}
}

// Gin adapts Handle to a gin route.
func (h *Handler) Gin(c *gin.Context) {
	resp := h.Handle(c.Request.Context(), Request{
		Method: c.Request.Method,
		Query:  c.Request.URL.Query(),
	})

	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	if len(resp.Body) == 0 {
		c.Status(resp.StatusCode)
		return
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if len(allowOrigins) == 0 || lo.Contains(allowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cfg
}
