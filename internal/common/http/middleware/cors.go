package middleware

import (
	"net/http"
	"strings"

	pkgerrors "qahub/pkg/errors"
	"qahub/pkg/utils/response"

	"github.com/gin-gonic/gin"
)

// Methods a CORS policy accepts without listing them.
var implicitCORSMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

// CORSConfig describes the cross-origin policy.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
	AllowedMethods []string `yaml:"allowedMethods"`
	AllowedHeaders []string `yaml:"allowedHeaders"`
	MaxAge         string   `yaml:"maxAge"`
}

// DefaultCORSConfig allows any origin, the content-type header and PUT/DELETE
// on top of the implicit GET/POST/OPTIONS.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"content-type"},
	}
}

// CORSMiddleware applies the policy. Preflights asking for an origin, method
// or header outside the policy are rejected with CorsForbidden.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	methods := normalizeList(append(append([]string{}, implicitCORSMethods...), cfg.AllowedMethods...), strings.ToUpper)
	headers := normalizeList(cfg.AllowedHeaders, strings.ToLower)
	anyOrigin := containsFold(cfg.AllowedOrigins, "*")
	allowedMethods := strings.Join(methods, ", ")
	allowedHeaders := strings.Join(headers, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if !anyOrigin && !containsFold(cfg.AllowedOrigins, origin) {
			response.AbortWithError(c, pkgerrors.Transport(pkgerrors.CorsForbidden, "origin not allowed"))
			return
		}

		preflight := c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != ""
		if preflight {
			if reason := checkPreflight(c, methods, headers); reason != "" {
				response.AbortWithError(c, pkgerrors.Transport(pkgerrors.CorsForbidden, reason))
				return
			}
		}

		if anyOrigin {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}

		if preflight {
			c.Writer.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			if allowedHeaders != "" {
				c.Writer.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			}
			if cfg.MaxAge != "" {
				c.Writer.Header().Set("Access-Control-Max-Age", cfg.MaxAge)
			}
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func checkPreflight(c *gin.Context, methods, headers []string) string {
	method := strings.ToUpper(strings.TrimSpace(c.GetHeader("Access-Control-Request-Method")))
	if !containsFold(methods, method) {
		return "request-method not allowed"
	}
	for _, h := range strings.Split(c.GetHeader("Access-Control-Request-Headers"), ",") {
		h = strings.TrimSpace(h)
		if h != "" && !containsFold(headers, h) {
			return "header not allowed: " + strings.ToLower(h)
		}
	}
	return ""
}

func normalizeList(items []string, norm func(string) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = norm(strings.TrimSpace(item))
		if item != "" && !containsFold(out, item) {
			out = append(out, item)
		}
	}
	return out
}

func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item), target) {
			return true
		}
	}
	return false
}
