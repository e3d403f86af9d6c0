package core

import "math/rand"

// Random color channels are drawn from [minChannel, 255].
const minChannel = 50

// Piece is one entry of the active set: a shape and its color.
type Piece struct {
	ShapeID ShapeID // Catalog entry the shape was derived from
	Turns   int     // Quarter turns applied to the catalog entry (0-3)
	Shape   Shape
	Color   RGB
}

// Dealer supplies fresh active sets.
type Dealer interface {
	// Deal returns n new pieces.
	Deal(n int) []Piece
}

// RandomDealer deals catalog shapes with random rotation and color.
type RandomDealer struct {
	rng     *rand.Rand
	uniform bool
	color   RGB
}

// NewRandomDealer creates a dealer seeded with seed.
// When uniform is set every piece gets color, otherwise colors are random.
func NewRandomDealer(seed int64, uniform bool, color RGB) *RandomDealer {
	return &RandomDealer{
		rng:     rand.New(rand.NewSource(seed)),
		uniform: uniform,
		color:   color,
	}
}

// Deal picks n pieces. For each piece the catalog id, the number of turns
// and then the color channels are drawn, in that order.
func (d *RandomDealer) Deal(n int) []Piece {
	pieces := make([]Piece, 0, n)
	for i := 0; i < n; i++ {
		id := ShapeID(d.rng.Intn(CatalogSize))
		turns := d.rng.Intn(4)
		pieces = append(pieces, Piece{
			ShapeID: id,
			Turns:   turns,
			Shape:   catalog[id].RotateN(turns),
			Color:   d.nextColor(),
		})
	}
	return pieces
}

func (d *RandomDealer) nextColor() RGB {
	if d.uniform {
		return d.color
	}
	span := 256 - minChannel
	return RGB{
		R: uint8(minChannel + d.rng.Intn(span)),
		G: uint8(minChannel + d.rng.Intn(span)),
		B: uint8(minChannel + d.rng.Intn(span)),
	}
}
