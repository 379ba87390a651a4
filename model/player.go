package model

// Skill indexes into Player.Skills.
const (
	SkillFist = iota
	SkillClub
	SkillSword
	SkillAxe
	SkillDistance
	SkillShielding
	SkillFishing
	SkillCount
)

const BlessingCount = 8

type Position struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
	Z uint8  `json:"z"`
}

type Outfit struct {
	LookType   uint16 `json:"look_type"`
	LookTypeEx uint16 `json:"look_type_ex"`
	LookHead   uint8  `json:"look_head"`
	LookBody   uint8  `json:"look_body"`
	LookLegs   uint8  `json:"look_legs"`
	LookFeet   uint8  `json:"look_feet"`
	LookAddons uint8  `json:"look_addons"`
	LookMount  uint16 `json:"look_mount"`
}

type Skill struct {
	Level uint16 `json:"level"`
	Tries uint64 `json:"tries"`
}

type Kill struct {
	Target    uint32 `json:"target"`
	Time      int64  `json:"time"`
	Unavenged bool   `json:"unavenged"`
}

type GuildMembership struct {
	GuildID uint32 `json:"guild_id"`
	RankID  uint32 `json:"rank_id"`
	Nick    string `json:"nick"`
}

// ItemRow is one flattened item of an item tree. PID links to the parent's
// SID; top-level rows use the owning slot id as PID. Rebuilding runtime
// containers from the linkage is the simulation layer's job.
type ItemRow struct {
	PID        int32  `json:"pid"`
	SID        int32  `json:"sid"`
	ItemType   uint16 `json:"item_type"`
	Count      uint16 `json:"count"`
	Attributes []byte `json:"attributes"`
}

type Charms struct {
	Points      uint32 `json:"points"`
	SpentPoints uint32 `json:"spent_points"`
	Expansion   bool   `json:"expansion"`
	Runes       []byte `json:"runes"`
}

type PreySlot struct {
	Slot            uint8  `json:"slot"`
	State           uint8  `json:"state"`
	RaceID          uint16 `json:"race_id"`
	Option          uint8  `json:"option"`
	BonusType       uint8  `json:"bonus_type"`
	BonusRarity     uint8  `json:"bonus_rarity"`
	BonusPercentage uint16 `json:"bonus_percentage"`
	BonusTimeLeft   uint16 `json:"bonus_time_left"`
	FreeRerollIn    int64  `json:"free_reroll_in"`
	MonsterList     string `json:"monster_list"`
}

type TaskHuntingSlot struct {
	Slot         uint8  `json:"slot"`
	State        uint8  `json:"state"`
	RaceID       uint16 `json:"race_id"`
	Upgrade      bool   `json:"upgrade"`
	RarityLevel  uint8  `json:"rarity_level"`
	KillAmount   uint16 `json:"kill_amount"`
	DisabledTime int64  `json:"disabled_time"`
	FreeRerollIn int64  `json:"free_reroll_in"`
	MonsterList  string `json:"monster_list"`
}

type ForgeHistoryEntry struct {
	ActionType  int32  `json:"action_type"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	CreatedAt   int64  `json:"created_at"`
}

type Bosstiary struct {
	Points        uint32 `json:"points"`
	BossIDSlotOne uint32 `json:"boss_id_slot_one"`
	BossIDSlotTwo uint32 `json:"boss_id_slot_two"`
	RemoveTimes   uint32 `json:"remove_times"`
	Tracker       []byte `json:"tracker"`
}

// Player is the persisted avatar aggregate. A fresh zero-value Player acts as
// the shell the load pipeline populates in place; when any load step fails
// the shell may be partially populated and must be discarded, not reused.
type Player struct {
	ID        uint32
	Name      string
	WorldID   uint8
	AccountID uint32
	GroupID   uint16

	Level      uint32
	Experience uint64
	Health     int32
	HealthMax  int32
	Mana       int32
	ManaMax    int32
	ManaSpent  uint64
	MagicLevel uint8
	Soul       uint8
	Cap        uint32
	Vocation   uint16
	Sex        uint8
	Direction  uint8
	Stamina    uint16

	TownID   uint32
	Position Position

	Outfit    Outfit
	Blessings [BlessingCount]uint8
	Conditions []byte

	Skull     uint8
	SkullTime int64

	Skills [SkillCount]Skill

	Balance uint64

	OfflineTrainingTime  int32
	OfflineTrainingSkill int8

	LastLogin  int64
	LastLogout int64
	LastIP     uint32
	SaveFlag   bool
	Deletion   int64

	Guild GuildMembership

	Stash      map[uint16]uint32
	StorageMap map[uint32]int32

	Charms Charms

	Inventory   []ItemRow
	DepotItems  []ItemRow
	RewardItems []ItemRow
	InboxItems  []ItemRow
	StoreInbox  []ItemRow

	Spells []string
	Kills  []Kill

	Prey        []PreySlot
	TaskHunting []TaskHuntingSlot

	ForgeHistory []ForgeHistoryEntry
	Bosstiary    Bosstiary

	// WheelData is the serialized wheel point allocation.
	WheelData []byte

	Initialized bool
}

const preySlotCount = 3

// InitializeSubsystems backfills the owning-subsystem state that is not
// table-backed: empty slots for prey and task hunting, and non-nil maps so
// world logic can mutate them without nil checks.
func (p *Player) InitializeSubsystems() {
	if p.Stash == nil {
		p.Stash = make(map[uint16]uint32)
	}
	if p.StorageMap == nil {
		p.StorageMap = make(map[uint32]int32)
	}
	for slot := uint8(0); slot < preySlotCount; slot++ {
		if !p.hasPreySlot(slot) {
			p.Prey = append(p.Prey, PreySlot{Slot: slot})
		}
		if !p.hasTaskHuntingSlot(slot) {
			p.TaskHunting = append(p.TaskHunting, TaskHuntingSlot{Slot: slot})
		}
	}
	p.Initialized = true
}

// UpdateDerivedState recomputes state that depends on every field being
// present. Runs after the full load sequence.
func (p *Player) UpdateDerivedState() {
	if p.Health > p.HealthMax {
		p.Health = p.HealthMax
	}
	if p.Mana > p.ManaMax {
		p.Mana = p.ManaMax
	}
}

func (p *Player) hasPreySlot(slot uint8) bool {
	for i := range p.Prey {
		if p.Prey[i].Slot == slot {
			return true
		}
	}
	return false
}

func (p *Player) hasTaskHuntingSlot(slot uint8) bool {
	for i := range p.TaskHunting {
		if p.TaskHunting[i].Slot == slot {
			return true
		}
	}
	return false
}
