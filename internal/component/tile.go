// component/tile.go
package component

import "go-hex-defense/pkg/hexmap"

// Tile — клетка поля
type Tile struct {
	Terrain hexmap.Terrain
}

// TilePath flags tiles on the current enemy route. It lives apart from Tile
// so that marking the route is never seen as a terrain change: terrain
// changes trigger repathing, and repathing rewrites this flag.
type TilePath struct {
	IsPath bool
}

// DamageArea is the damage per attack tick dealt on a tile, summed over
// every tower whose range covers it.
type DamageArea struct {
	Damage uint32
}
