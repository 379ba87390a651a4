package model

type World struct {
	ID       uint8  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Motd     string `json:"motd"`
	Location string `json:"location"`
	IP       string `json:"ip"`
	Port     uint16 `json:"port"`
	Creation int64  `json:"creation"`
}
