// component/tower.go
package component

import "go-hex-defense/pkg/hexmap"

// Tower marks an entity as a tower. Hex never changes after placement.
type Tower struct {
	Hex hexmap.Hex // Гекс, на котором стоит башня
}
