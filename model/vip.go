package model

type VIPEntry struct {
	PlayerID    uint32 `json:"player_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        uint32 `json:"icon"`
	Notify      bool   `json:"notify"`
}

type VIPGroupEntry struct {
	ID           uint8  `json:"id"`
	Name         string `json:"name"`
	Customizable bool   `json:"customizable"`
}
