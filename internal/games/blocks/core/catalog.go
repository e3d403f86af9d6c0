package core

// ShapeID indexes the shape catalog.
type ShapeID int

// catalog holds the 20 hand-authored patterns offered to the player,
// from the monomino up to the hexominoes. Order is significant: ids are
// positions in this table and the dealer picks among them uniformly.
var catalog = [...]Shape{
	MustParseShape("#"),
	MustParseShape("##"),
	MustParseShape("###"),
	MustParseShape("##", "##"),
	MustParseShape("####"),
	MustParseShape("###", "#.."),
	MustParseShape("##.", ".##"),
	MustParseShape("###", ".#."),
	MustParseShape("#####"),
	MustParseShape("#", "#", "#", "#", "#"),
	MustParseShape("#.", "##", ".#"),
	MustParseShape("###", ".#.", ".#."),
	MustParseShape("####", "...#"),
	MustParseShape("###", "#.#"),
	MustParseShape("##", "#.", "##"),
	MustParseShape("#.#", "###"),
	MustParseShape("######"),
	MustParseShape("#", "#", "#", "#", "#", "#"),
	MustParseShape("###", "###"),
	MustParseShape("##", "##", "##"),
}

// CatalogSize is the number of shapes in the catalog.
const CatalogSize = len(catalog)

// CatalogShape returns the catalog entry with the given id.
func CatalogShape(id ShapeID) (Shape, bool) {
	if id < 0 || int(id) >= CatalogSize {
		return Shape{}, false
	}
	return catalog[id], true
}

// Catalog returns a copy of the whole catalog, indexed by ShapeID.
func Catalog() []Shape {
	out := make([]Shape, CatalogSize)
	copy(out, catalog[:])
	return out
}
