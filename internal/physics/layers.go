package physics

// LayerMask is a bit set of GameObject layers (0-31).
type LayerMask uint32

const (
	LayerDefault = 0
	LayerGlass   = 1 // see-through geometry, commonly ignored by targeting rays

	NoLayers  LayerMask = 0
	AllLayers LayerMask = ^LayerMask(0)
)

// LayerBit returns the mask containing only layer. Out of range layers yield an empty mask.
func LayerBit(layer int) LayerMask {
	if layer < 0 || layer > 31 {
		return NoLayers
	}
	return LayerMask(1) << uint(layer)
}

// Contains reports whether layer is set in m.
func (m LayerMask) Contains(layer int) bool {
	return m&LayerBit(layer) != 0
}

// With returns m with layer added.
func (m LayerMask) With(layer int) LayerMask {
	return m | LayerBit(layer)
}
