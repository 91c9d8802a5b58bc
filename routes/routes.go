package routes

// Package routes wires gin handlers for the extraction service.
//
// Layout:
// - api.go: versioned API routes (/api/v1/*) and health probes
// - web.go: landing and docs routes (/, /docs)
//
// Usage:
// routes.SetupAllRoutes(router, controller)
