package types

// Lamp states. A lamp is either on or off; the switch actions are one-way
// idempotent transitions between the two.
const (
	LampStateOff = "off"
	LampStateOn  = "on"
)

// StateName returns the lamp state constant for the given flag.
func StateName(on bool) string {
	if on {
		return LampStateOn
	}
	return LampStateOff
}
