package model

// Category groups tasks and habits by area (work, health, study, etc.).
// The color tokens are opaque style identifiers owned by the UI; the engine
// stores them but never interprets them.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ColorBg   string `json:"colorBg"`
	ColorText string `json:"colorText"`
}
