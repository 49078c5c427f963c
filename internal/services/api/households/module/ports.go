package module

import "mealboard/internal/services/api/households/domain"

// Ports exposes household capabilities for cross module wiring
type Ports struct {
	Membership domain.MembershipPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
