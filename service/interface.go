package service

import (
	"emberfall_backend/model"
	"emberfall_backend/repository"
)

// Storage interfaces implemented by *repository.GameRepository; the services
// depend on these so tests can substitute doubles.

type AccountStore interface {
	AccountByDescriptor(descriptor string) (*repository.AccountRow, error)
	AccountBySession(token string) (*repository.AccountRow, error)
	AccountCharacters(accountID uint32) ([]model.AccountCharacter, error)
	AccountType(accountID uint32) (uint8, error)
	CreateSession(accountID uint32) (string, error)
}

type PlayerStore interface {
	LoadPlayerByID(p *model.Player, id uint32, full bool) error
	LoadPlayerByName(p *model.Player, name string, full bool) error
	SavePlayer(p *model.Player) error
}

type PresenceStore interface {
	InsertOnlinePlayer(guid uint32) error
	DeleteOnlinePlayer(guid uint32) error
	OnlineCount() (int, error)
}

type VIPStore interface {
	VIPEntries(accountID uint32) ([]model.VIPEntry, error)
	AddVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) error
	EditVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) error
	RemoveVIPEntry(accountID, guid uint32) error
	VIPGroupEntries(accountID, guid uint32) ([]model.VIPGroupEntry, error)
	AddVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) error
	EditVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) error
	RemoveVIPGroupEntry(groupID uint8, accountID uint32) error
	AddGuidVIPGroupEntry(groupID uint8, accountID, guid uint32) error
	RemoveGuidVIPGroupEntry(accountID, guid uint32) error
}

type WorldStore interface {
	CountWorlds() (int, error)
	InsertWorld(w model.World) error
	Worlds() ([]model.World, error)
}

// Service interfaces consumed by the HTTP handlers.

type AuthServiceInterface interface {
	GameWorldAuthentication(descriptor, password, characterName string, oldProtocol bool) (uint32, bool)
	GetAccountType(accountID uint32) uint8
	CreateSession(accountID uint32) (string, error)
	Characters(accountID uint32) ([]model.AccountCharacter, error)
}

type PlayerServiceInterface interface {
	LoadPlayerByID(p *model.Player, id uint32, full bool) bool
	LoadPlayerByName(p *model.Player, name string, full bool) bool
	SavePlayer(p *model.Player) bool
}

type WorldServiceInterface interface {
	EnsureFirstWorld()
	LoadWorlds() []model.World
}

type VIPServiceInterface interface {
	GetVIPEntries(accountID uint32) []model.VIPEntry
	AddVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool)
	EditVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool)
	RemoveVIPEntry(accountID, guid uint32)
	GetVIPGroupEntries(accountID, guid uint32) []model.VIPGroupEntry
	AddVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool)
	EditVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool)
	RemoveVIPGroupEntry(groupID uint8, accountID uint32)
	AddGuidVIPGroupEntry(groupID uint8, accountID, guid uint32)
	RemoveGuidVIPGroupEntry(accountID, guid uint32)
}

type PresenceServiceInterface interface {
	SetOnline(guid uint32, online bool)
	IsOnline(guid uint32) bool
	OnlineCount() int
}

type LoggerInterface interface {
	Info(msg string)
	Warning(msg string)
	Exception(msg string)
	Debug(msg string)
	Shutdown()
}
