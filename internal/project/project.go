// Package project models a pokeemerald-style decomp source tree: map and
// layout records, object events, and the name-to-path tables scanned out of
// the project's C headers. Records are built immutably first; cross
// references are resolved in a separate linking pass.
package project

// Layout describes map dimensions and tileset references. Width and Height
// are in metatiles.
type Layout struct {
	ID               string
	Name             string
	Width            int
	Height           int
	PrimaryTileset   string
	SecondaryTileset string
	BorderPath       string
	BlockdataPath    string
}

// ObjectEvent is a placed entity on a map. X and Y are in metatile-grid
// coordinates.
type ObjectEvent struct {
	GraphicsID   string
	X            int
	Y            int
	MovementType MovementType
}

// Map is one map record. ID is group<<8 | index within the group. Layout is
// nil until linked.
type Map struct {
	ID           int
	GroupNum     int
	MapNum       int
	Dir          string // directory name under data/maps
	Name         string
	LayoutID     string
	Layout       *Layout
	ObjectEvents []ObjectEvent
}

// LinkLayouts resolves each map's layout reference against the layout table.
// Maps whose layout is missing are left unlinked; their names are returned.
func LinkLayouts(maps []*Map, layouts map[string]*Layout) (unlinked []string) {
	for _, m := range maps {
		if layout, ok := layouts[m.LayoutID]; ok {
			m.Layout = layout
		} else {
			unlinked = append(unlinked, m.Name)
		}
	}
	return unlinked
}
