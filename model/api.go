package model

import "errors"

type BaseResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type LoginAPI struct {
	Account     string `json:"account"`
	Password    string `json:"password"`
	Character   string `json:"character"`
	OldProtocol bool   `json:"old_protocol"`
}

func (l *LoginAPI) Validate() error {
	if l.Account == "" {
		return errors.New("account cannot be empty")
	}
	if l.Character == "" {
		return errors.New("character cannot be empty")
	}
	return nil
}

type LoginResponseAPI struct {
	AccountID    uint32             `json:"account_id"`
	AccountType  uint8              `json:"account_type"`
	SessionToken string             `json:"session_token,omitempty"`
	Characters   []AccountCharacter `json:"characters"`
	Worlds       []World            `json:"worlds"`
}

type ServerInfoAPI struct {
	Worlds        []World `json:"worlds"`
	PlayersOnline int     `json:"players_online"`
}

type CharacterInfoAPI struct {
	ID         uint32 `json:"id"`
	Name       string `json:"name"`
	Level      uint32 `json:"level"`
	Vocation   uint16 `json:"vocation"`
	Sex        uint8  `json:"sex"`
	TownID     uint32 `json:"town_id"`
	LastLogin  int64  `json:"last_login"`
	LastLogout int64  `json:"last_logout"`
	Online     bool   `json:"online"`
}

type PresenceAPI struct {
	PlayerID uint32 `json:"player_id"`
	Online   bool   `json:"online"`
}

func (p *PresenceAPI) Validate() error {
	if p.PlayerID == 0 {
		return errors.New("player id cannot be zero")
	}
	return nil
}

type VIPEntryAPI struct {
	AccountID   uint32 `json:"account_id"`
	PlayerID    uint32 `json:"player_id"`
	Description string `json:"description"`
	Icon        uint32 `json:"icon"`
	Notify      bool   `json:"notify"`
}

func (v *VIPEntryAPI) Validate() error {
	if v.AccountID == 0 {
		return errors.New("account id cannot be zero")
	}
	if v.PlayerID == 0 {
		return errors.New("player id cannot be zero")
	}
	return nil
}

type VIPGroupAPI struct {
	GroupID      uint8  `json:"group_id"`
	AccountID    uint32 `json:"account_id"`
	PlayerID     uint32 `json:"player_id"`
	Name         string `json:"name"`
	Customizable bool   `json:"customizable"`
}

func (v *VIPGroupAPI) Validate() error {
	if v.AccountID == 0 {
		return errors.New("account id cannot be zero")
	}
	return nil
}
