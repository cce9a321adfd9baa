package cpu

// Quirks selects between the behaviours of historical interpreters.
type Quirks struct {
	// 8xy6 and 8xyE shift Vy into Vx, instead of shifting Vx in place.
	ShiftUsesVy bool

	// Fx55 and Fx65 leave I at I + x + 1.
	LoadStoreIncrementsI bool

	// Dxyn reduces its origin modulo the display size, instead of failing
	// with display.ErrOutOfScreenBounds.
	WrapSpriteOrigin bool

	// JP, CALL and JP V0 fail with ErrAddressUneven on odd targets.
	StrictAlignment bool
}

// DefaultQuirks returns the quirks of the reference interpreter.
func DefaultQuirks() Quirks {
	return Quirks{
		StrictAlignment: true,
	}
}
