/*
Package monitoring provides Prometheus metrics for the host.

# Overview

Metrics owns a private Prometheus registry so several hosts (or tests) can
live in one process. It also implements the observer hooks of the capability
registry and the bridge, so every lookup and every bridge call is counted.

# Metrics

  - HTTP requests (count, latency, request and response size)
  - Bridge calls (count by status, latency, failures)
  - Capability resolutions (hit or miss per capability)
  - Bound capabilities and uptime

# Usage

	metrics := monitoring.NewMetrics()
	registry := interop.New(interop.WithObserver(metrics))
	bridges := bridge.NewRegistry(metrics)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
