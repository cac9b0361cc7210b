package entity

import "github.com/shopspring/decimal"

// Niveles de membresía válidos.
const (
	MembershipBronze   = "bronze"
	MembershipSilver   = "silver"
	MembershipGold     = "gold"
	MembershipPlatinum = "platinum"
)

// MembershipTier define la tarifa de envío por unidad de un nivel de membresía.
// Las tarifas son configuración estática, no se persisten.
type MembershipTier struct {
	Name         string
	ShippingRate decimal.Decimal // tarifa por unidad (no por pedido)
}

// Tarifas por unidad en orden decreciente bronze → platinum.
var membershipTiers = map[string]MembershipTier{
	MembershipBronze:   {Name: MembershipBronze, ShippingRate: decimal.NewFromInt(1)},
	MembershipSilver:   {Name: MembershipSilver, ShippingRate: decimal.RequireFromString("0.75")},
	MembershipGold:     {Name: MembershipGold, ShippingRate: decimal.RequireFromString("0.5")},
	MembershipPlatinum: {Name: MembershipPlatinum, ShippingRate: decimal.Zero},
}

// TierFor devuelve el nivel de membresía por nombre.
// Un nombre desconocido o vacío resuelve al nivel más bajo (bronze).
func TierFor(name string) MembershipTier {
	if tier, ok := membershipTiers[name]; ok {
		return tier
	}
	return membershipTiers[MembershipBronze]
}

// ValidMembership indica si el nombre corresponde a un nivel conocido.
func ValidMembership(name string) bool {
	_, ok := membershipTiers[name]
	return ok
}
