package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	ReachedEnd bool // Достиг ли враг конца пути
}
