package repository

// PlayerRow is the primary players row every load step reads its slice of.
type PlayerRow struct {
	ID        uint32 `db:"id"`
	Name      string `db:"name"`
	WorldID   uint8  `db:"world_id"`
	AccountID uint32 `db:"account_id"`
	GroupID   uint16 `db:"group_id"`

	Level      uint32 `db:"level"`
	Experience uint64 `db:"experience"`
	Health     int32  `db:"health"`
	HealthMax  int32  `db:"healthmax"`
	Mana       int32  `db:"mana"`
	ManaMax    int32  `db:"manamax"`
	ManaSpent  uint64 `db:"manaspent"`
	MagLevel   uint8  `db:"maglevel"`
	Soul       uint8  `db:"soul"`
	Cap        uint32 `db:"cap"`
	Vocation   uint16 `db:"vocation"`
	Sex        uint8  `db:"sex"`
	Direction  uint8  `db:"direction"`
	Stamina    uint16 `db:"stamina"`

	TownID uint32 `db:"town_id"`
	PosX   uint16 `db:"posx"`
	PosY   uint16 `db:"posy"`
	PosZ   uint8  `db:"posz"`

	LookType   uint16 `db:"looktype"`
	LookTypeEx uint16 `db:"looktypeex"`
	LookHead   uint8  `db:"lookhead"`
	LookBody   uint8  `db:"lookbody"`
	LookLegs   uint8  `db:"looklegs"`
	LookFeet   uint8  `db:"lookfeet"`
	LookAddons uint8  `db:"lookaddons"`
	LookMount  uint16 `db:"lookmount"`

	Blessings  []byte `db:"blessings"`
	Conditions []byte `db:"conditions"`

	Skull     uint8 `db:"skull"`
	SkullTime int64 `db:"skulltime"`

	SkillFist           uint16 `db:"skill_fist"`
	SkillFistTries      uint64 `db:"skill_fist_tries"`
	SkillClub           uint16 `db:"skill_club"`
	SkillClubTries      uint64 `db:"skill_club_tries"`
	SkillSword          uint16 `db:"skill_sword"`
	SkillSwordTries     uint64 `db:"skill_sword_tries"`
	SkillAxe            uint16 `db:"skill_axe"`
	SkillAxeTries       uint64 `db:"skill_axe_tries"`
	SkillDist           uint16 `db:"skill_dist"`
	SkillDistTries      uint64 `db:"skill_dist_tries"`
	SkillShielding      uint16 `db:"skill_shielding"`
	SkillShieldingTries uint64 `db:"skill_shielding_tries"`
	SkillFishing        uint16 `db:"skill_fishing"`
	SkillFishingTries   uint64 `db:"skill_fishing_tries"`

	Balance uint64 `db:"balance"`

	OfflineTrainingTime  int32 `db:"offlinetraining_time"`
	OfflineTrainingSkill int8  `db:"offlinetraining_skill"`

	LastLogin  int64  `db:"lastlogin"`
	LastLogout int64  `db:"lastlogout"`
	LastIP     uint32 `db:"lastip"`
	Save       bool   `db:"save"`
	Deletion   int64  `db:"deletion"`
}

type AccountRow struct {
	ID       uint32 `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Type     uint8  `db:"type"`
	PremDays uint16 `db:"premdays"`
}

type AccountCharacterRow struct {
	Name     string `db:"name"`
	Deletion int64  `db:"deletion"`
}

type ItemDBRow struct {
	PID        int32  `db:"pid"`
	SID        int32  `db:"sid"`
	ItemType   uint16 `db:"itemtype"`
	Count      uint16 `db:"count"`
	Attributes []byte `db:"attributes"`
}

type StashDBRow struct {
	ItemID    uint16 `db:"item_id"`
	ItemCount uint32 `db:"item_count"`
}

type StorageDBRow struct {
	Key   uint32 `db:"key"`
	Value int32  `db:"value"`
}

type KillDBRow struct {
	Target    uint32 `db:"target"`
	Time      int64  `db:"time"`
	Unavenged bool   `db:"unavenged"`
}

type GuildMembershipRow struct {
	GuildID uint32 `db:"guild_id"`
	RankID  uint32 `db:"rank_id"`
	Nick    string `db:"nick"`
}

type CharmsDBRow struct {
	CharmPoints uint32 `db:"charm_points"`
	SpentPoints uint32 `db:"charm_spent_points"`
	Expansion   bool   `db:"charm_expansion"`
	Runes       []byte `db:"runes"`
}

type PreyDBRow struct {
	Slot            uint8  `db:"slot"`
	State           uint8  `db:"state"`
	RaceID          uint16 `db:"raceid"`
	Option          uint8  `db:"option"`
	BonusType       uint8  `db:"bonus_type"`
	BonusRarity     uint8  `db:"bonus_rarity"`
	BonusPercentage uint16 `db:"bonus_percentage"`
	BonusTimeLeft   uint16 `db:"bonus_time"`
	FreeRerollIn    int64  `db:"free_reroll"`
	MonsterList     string `db:"monster_list"`
}

type TaskHuntDBRow struct {
	Slot         uint8  `db:"slot"`
	State        uint8  `db:"state"`
	RaceID       uint16 `db:"raceid"`
	Upgrade      bool   `db:"upgrade"`
	RarityLevel  uint8  `db:"rarity"`
	KillAmount   uint16 `db:"kills"`
	DisabledTime int64  `db:"disabled_time"`
	FreeRerollIn int64  `db:"free_reroll"`
	MonsterList  string `db:"monster_list"`
}

type ForgeHistoryDBRow struct {
	ActionType  int32  `db:"action_type"`
	Description string `db:"description"`
	Done        bool   `db:"is_success"`
	CreatedAt   int64  `db:"created_at"`
}

type BosstiaryDBRow struct {
	Points        uint32 `db:"boss_points"`
	BossIDSlotOne uint32 `db:"boss_id_slot_one"`
	BossIDSlotTwo uint32 `db:"boss_id_slot_two"`
	RemoveTimes   uint32 `db:"remove_times"`
	Tracker       []byte `db:"tracker"`
}

type VIPEntryRow struct {
	PlayerID    uint32 `db:"player_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        uint32 `db:"icon"`
	Notify      bool   `db:"notify"`
}

type VIPGroupRow struct {
	ID           uint8  `db:"id"`
	Name         string `db:"name"`
	Customizable bool   `db:"customizable"`
}

type WorldRow struct {
	ID       uint8  `db:"id"`
	Name     string `db:"name"`
	Type     string `db:"type"`
	Motd     string `db:"motd"`
	Location string `db:"location"`
	IP       string `db:"ip"`
	Port     uint16 `db:"port"`
	Creation int64  `db:"creation"`
}
