package model

// Account privilege levels stored in accounts.type.
const (
	AccountTypeNormal      uint8 = 1
	AccountTypeTutor       uint8 = 2
	AccountTypeSeniorTutor uint8 = 3
	AccountTypeGameMaster  uint8 = 4
	AccountTypeGod         uint8 = 5
)

type Account struct {
	ID       uint32 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Type     uint8  `json:"type"`
	PremDays uint16 `json:"premium_days"`

	// OldProtocol marks a pre-session protocol generation client; the
	// descriptor is then an account number rather than a name or email.
	OldProtocol bool `json:"old_protocol"`
}

// AccountCharacter is one roster entry of an account. A non-zero Deletion
// timestamp soft-deletes the character without removing its rows.
type AccountCharacter struct {
	Name     string `json:"name"`
	Deletion int64  `json:"deletion"`
}
