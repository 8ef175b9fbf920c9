package locale

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key carrying the resolved request locale
const ContextKey = "locale"

// Middleware resolves the request locale from the first path segment.
// Page requests without a recognized locale prefix are redirected to the
// prefixed path of the locale matched from Accept-Language. API, asset and
// well-known paths bypass rewriting entirely.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if BypassesRewrite(path) {
			c.Next()
			return
		}

		if l, _, ok := SplitPrefix(path); ok {
			c.Set(ContextKey, l)
			c.Next()
			return
		}

		target := FromAcceptLanguage(c.GetHeader("Accept-Language"))
		redirect := "/" + target.String()
		if path != "/" {
			redirect += path
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			redirect += "?" + raw
		}
		c.Redirect(http.StatusTemporaryRedirect, redirect)
		c.Abort()
	}
}

// FromContext returns the locale resolved by Middleware, or the default
func FromContext(c *gin.Context) Locale {
	if v, ok := c.Get(ContextKey); ok {
		if l, ok := v.(Locale); ok {
			return l
		}
	}
	return Default
}

// BypassesRewrite reports whether a request path is exempt from locale
// rewriting: API, asset and well-known paths are served as-is.
func BypassesRewrite(path string) bool {
	prefixes := []string{"/api/", "/health", "/static/", "/images/", "/favicon", "/.well-known/"}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return path == "/api"
}
