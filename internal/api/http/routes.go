package http

import (
	"github.com/gin-gonic/gin"
)

// Register mounts the API on router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/capabilities", h.ListCapabilities)

	modules := router.Group("/modules")
	modules.GET("", h.ListModules)
	modules.GET("/:module", h.GetModule)
	modules.POST("/:module/:method", h.Invoke)

	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}
}
