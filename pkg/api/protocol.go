// Package api описывает протокол наблюдательного сервера.
// Наблюдатель только смотрит: команды симуляции снаружи не принимаются.
package api

// EntityState - снимок одной сущности для наблюдателя
type EntityState struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Facing float64 `json:"facing"`
	HP     int     `json:"hp,omitempty"`
	MaxHP  int     `json:"maxHp,omitempty"`
	IsDead bool    `json:"isDead,omitempty"`
}

// ServerResponse - один кадр состояния зоны
type ServerResponse struct {
	Type     string        `json:"type"` // "SNAPSHOT"
	Tick     int           `json:"tick"`
	Area     string        `json:"area"`
	Entities []EntityState `json:"entities"`
}

// ClientCommand - рукопожатие наблюдателя
type ClientCommand struct {
	Action string `json:"action"` // "WATCH"
	Token  string `json:"token,omitempty"`
}
