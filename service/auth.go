package service

import (
	"emberfall_backend/model"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/jzelinskie/whirlpool"
)

const AuthTypeSession = "session"

// AuthService is the gate every game session passes before a player is
// loaded. It only reads; the caller loads the character through the player
// service after a successful authentication.
type AuthService struct {
	accounts AccountStore
	authType string
	logger   LoggerInterface
}

func NewAuthService(accounts AccountStore, authType string, logger LoggerInterface) *AuthService {
	return &AuthService{accounts: accounts, authType: authType, logger: logger}
}

// GameWorldAuthentication validates the account credential and confirms the
// requested character belongs to the account and is not soft-deleted. In
// session mode the descriptor is a session token and no password comparison
// happens; in password mode the password is checked against the stored hash.
func (a *AuthService) GameWorldAuthentication(descriptor, password, characterName string, oldProtocol bool) (uint32, bool) {
	if oldProtocol && a.authType == AuthTypeSession {
		a.logger.Warning(fmt.Sprintf("GameWorldAuthentication(): old protocol client cannot use session auth [%s]", descriptor))
		return 0, false
	}

	account, err := a.loadAccount(descriptor)
	if err != nil {
		a.logger.Exception(fmt.Sprintf("GameWorldAuthentication(): couldn't load account [%s]: %v", descriptor, err))
		return 0, false
	}

	if a.authType != AuthTypeSession {
		if hashWP(password) != account.Password {
			a.logger.Warning(fmt.Sprintf("GameWorldAuthentication(): password mismatch for account [%s]", descriptor))
			return 0, false
		}
	}

	// Reload after the credential check; the check may have touched account
	// state (session refresh, failed-attempt counters).
	account, err = a.loadAccount(descriptor)
	if err != nil {
		a.logger.Exception(fmt.Sprintf("GameWorldAuthentication(): failed to reload account [%s]: %v", descriptor, err))
		return 0, false
	}

	characters, err := a.accounts.AccountCharacters(account.ID)
	if err != nil {
		a.logger.Exception(fmt.Sprintf("GameWorldAuthentication(): failed to load account [%s] players: %v", descriptor, err))
		return 0, false
	}

	for _, character := range characters {
		if character.Name == characterName {
			if character.Deletion != 0 {
				break
			}
			return account.ID, true
		}
	}

	a.logger.Warning(fmt.Sprintf("GameWorldAuthentication(): account [%s] player [%s] not found or deleted", descriptor, characterName))
	return 0, false
}

func (a *AuthService) loadAccount(descriptor string) (*accountRecord, error) {
	if a.authType == AuthTypeSession {
		if _, err := uuid.Parse(descriptor); err != nil {
			return nil, fmt.Errorf("malformed session token: %w", err)
		}
		row, err := a.accounts.AccountBySession(descriptor)
		if err != nil {
			return nil, err
		}
		return &accountRecord{ID: row.ID, Password: row.Password}, nil
	}

	row, err := a.accounts.AccountByDescriptor(descriptor)
	if err != nil {
		return nil, err
	}
	return &accountRecord{ID: row.ID, Password: row.Password}, nil
}

type accountRecord struct {
	ID       uint32
	Password string
}

// GetAccountType defaults to a normal account when the row is unreadable.
func (a *AuthService) GetAccountType(accountID uint32) uint8 {
	accountType, err := a.accounts.AccountType(accountID)
	if err != nil {
		return model.AccountTypeNormal
	}
	return accountType
}

func (a *AuthService) CreateSession(accountID uint32) (string, error) {
	return a.accounts.CreateSession(accountID)
}

func (a *AuthService) Characters(accountID uint32) ([]model.AccountCharacter, error) {
	return a.accounts.AccountCharacters(accountID)
}

func hashWP(payload string) string {
	w := whirlpool.New()
	w.Write([]byte(payload))
	return hex.EncodeToString(w.Sum(nil))
}
