package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/versten1uk/new-arch-spike/internal/bridge"
	"github.com/versten1uk/new-arch-spike/internal/capability"
	"github.com/versten1uk/new-arch-spike/internal/infrastructure/monitoring"
	"github.com/versten1uk/new-arch-spike/internal/interop"
	"github.com/versten1uk/new-arch-spike/internal/shared/utils"
)

// Version is reported by the root handler
const Version = "0.1.0"

// InvokeRequest is the body of a bridge call
type InvokeRequest struct {
	Args map[string]interface{} `json:"args"`
}

// Handlers contains all HTTP handlers
type Handlers struct {
	bridges      *bridge.Registry
	capabilities *interop.Registry
	metrics      *monitoring.Metrics
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(bridges *bridge.Registry, capabilities *interop.Registry, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		bridges:      bridges,
		capabilities: capabilities,
		metrics:      metrics,
	}
}

// Root returns the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "new-arch-spike",
		"version": Version,
	})
}

// Health reports whether every capability is bound
func (h *Handlers) Health(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK
	resp := gin.H{
		"capabilities": h.capabilities.Names(),
		"bridge":       h.bridges.Stats(),
	}

	if err := h.capabilities.Validate(capability.All()...); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
		resp["error"] = err.Error()
	}
	if h.metrics != nil {
		resp["metrics"] = h.metrics.Snapshot()
	}

	resp["status"] = status
	c.JSON(code, resp)
}

// ListModules lists bridge module definitions
func (h *Handlers) ListModules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"modules": h.bridges.List(),
		"stats":   h.bridges.Stats(),
	})
}

// GetModule returns a single module definition
func (h *Handlers) GetModule(c *gin.Context) {
	name := c.Param("module")
	if err := utils.ValidateName(name, "module"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, ok := h.bridges.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "module not found: " + name})
		return
	}
	c.JSON(http.StatusOK, module.Definition())
}

// ListCapabilities lists bound capability names
func (h *Handlers) ListCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"capabilities": h.capabilities.Names(),
		"expected":     capability.All(),
	})
}

// Invoke calls a bridge method
func (h *Handlers) Invoke(c *gin.Context) {
	name := c.Param("module")
	method := c.Param("method")

	if err := utils.ValidateName(name, "module"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateName(method, "method"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req InvokeRequest
	if c.Request.ContentLength != 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, utils.MaxBodySize)
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if err := utils.ValidateArgs(req.Args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.bridges.Call(c.Request.Context(), name, method, req.Args)
	if err != nil {
		_ = c.Error(err)
		c.JSON(statusFor(err), result)
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, bridge.ErrModuleNotFound), errors.Is(err, bridge.ErrMethodNotFound):
		return http.StatusNotFound
	case errors.Is(err, capability.ErrNotFound):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
