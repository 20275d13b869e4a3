package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"shipsched/internal/utils"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "sailing schedule service"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// EnvCheck reports whether model credentials are configured, masking the key.
func (h *Handlers) EnvCheck(c *gin.Context) {
	if h.Model.Provider == "ollama" {
		c.JSON(http.StatusOK, gin.H{"status": "success", "provider": h.Model.Provider})
		return
	}
	if h.Model.APIKey == "" {
		c.JSON(http.StatusOK, gin.H{"status": "failure", "provider": h.Model.Provider, "error": "OPENAI_API_KEY not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":             "success",
		"provider":           h.Model.Provider,
		"openai_key_snippet": utils.MaskSecret(h.Model.APIKey),
	})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
