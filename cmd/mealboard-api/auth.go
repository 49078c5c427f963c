package main

import (
	"mealboard/internal/modkit/httpkit"
	"mealboard/internal/platform/net/middleware"
	"mealboard/internal/services/ident"
)

// authPort adapts the token verifier to the middleware seam
func authPort(v *ident.Verifier) middleware.AuthPort {
	return httpkit.NewPortFunc(v.Parse)
}
