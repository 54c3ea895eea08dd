package entity

import "math"

// Tile is a single cell code in a room grid.
type Tile int

const (
	TileEmpty    Tile = 0
	TileWall     Tile = 1
	TilePlatform Tile = 2 // one-way: blocks only falling bodies from above
	TileHazard   Tile = 3
	TileExit     Tile = 9
)

// Solid reports whether the tile blocks movement in every direction.
// One-way platforms are not solid; the vertical physics pass handles them.
func (t Tile) Solid() bool {
	return t == TileWall
}

// TileSize is the edge length of one grid cell in pixels.
const TileSize = 16

// Grid is the tile layout of one room.
type Grid struct {
	Cols, Rows int
	Tiles      [][]Tile

	// Spawn position in pixels and the exit cell, fixed at generation.
	SpawnX, SpawnY   float64
	ExitCol, ExitRow int
}

// NewGrid returns a grid of the given extent with every cell empty.
func NewGrid(cols, rows int) *Grid {
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
	}
	return &Grid{Cols: cols, Rows: rows, Tiles: tiles}
}

// TileAt returns the tile code at the given cell coordinates.
// Out-of-range cells read as walls, so the world edge is impassable
// without bounds checks at every call site.
func (g *Grid) TileAt(col, row int) Tile {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return TileWall
	}
	return g.Tiles[row][col]
}

// SetTile writes a tile code. Out-of-range writes are ignored.
func (g *Grid) SetTile(col, row int, t Tile) {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return
	}
	g.Tiles[row][col] = t
}

// Cell returns the cell coordinates containing the given pixel position.
func Cell(px, py float64) (col, row int) {
	return int(math.Floor(px / TileSize)), int(math.Floor(py / TileSize))
}

// TileAtPixel returns the tile containing the given pixel position.
func (g *Grid) TileAtPixel(px, py float64) Tile {
	col, row := Cell(px, py)
	return g.TileAt(col, row)
}

// SolidAtPixel reports whether the tile at the pixel position is solid.
func (g *Grid) SolidAtPixel(px, py float64) bool {
	return g.TileAtPixel(px, py).Solid()
}

// Width returns the grid width in pixels.
func (g *Grid) Width() float64 {
	return float64(g.Cols * TileSize)
}

// Height returns the grid height in pixels.
func (g *Grid) Height() float64 {
	return float64(g.Rows * TileSize)
}
