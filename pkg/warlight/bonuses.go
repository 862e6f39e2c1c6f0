package warlight

// Bonus is a (name, value) pair used to override a template's bonus values.
type Bonus struct {
	Name  string
	Value int
}

// BonusOverride is the wire form of a Bonus.
type BonusOverride struct {
	BonusName string `json:"bonusName"`
	Value     int    `json:"value"`
}

// OverrideBonuses maps bonuses to their wire form, keeping order.
func OverrideBonuses(bonuses []Bonus) []BonusOverride {
	overrides := make([]BonusOverride, 0, len(bonuses))
	for _, b := range bonuses {
		overrides = append(overrides, BonusOverride{BonusName: b.Name, Value: b.Value})
	}
	return overrides
}
