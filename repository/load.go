package repository

import (
	"database/sql"
	"emberfall_backend/model"
	"errors"
	"fmt"
	"time"
)

// loadStep is one stage of the player load pipeline. Steps run in the order
// they are listed, each writing a disjoint part of the aggregate; inter-step
// dependencies (rewards need the store inbox initialized first) are encoded by
// the ordering below.
type loadStep struct {
	name string
	run  func(r *GameRepository, p *model.Player, row *PlayerRow) error
}

// playerLoadSteps is the fixed sequence every load runs.
var playerLoadSteps = []loadStep{
	{"first", (*GameRepository).loadPlayerFirst},
	{"experience", (*GameRepository).loadPlayerExperience},
	{"blessings", (*GameRepository).loadPlayerBlessings},
	{"conditions", (*GameRepository).loadPlayerConditions},
	{"outfit", (*GameRepository).loadPlayerDefaultOutfit},
	{"skull", (*GameRepository).loadPlayerSkullSystem},
	{"skills", (*GameRepository).loadPlayerSkills},
	{"kills", (*GameRepository).loadPlayerKills},
	{"guild", (*GameRepository).loadPlayerGuild},
	{"stash", (*GameRepository).loadPlayerStashItems},
	{"charms", (*GameRepository).loadPlayerBestiaryCharms},
	{"inventory", (*GameRepository).loadPlayerInventoryItems},
	{"storeinbox", (*GameRepository).loadPlayerStoreInbox},
	{"depot", (*GameRepository).loadPlayerDepotItems},
	{"rewards", (*GameRepository).loadPlayerRewardItems},
	{"inbox", (*GameRepository).loadPlayerInboxItems},
	{"storage", (*GameRepository).loadPlayerStorageMap},
	{"prey", (*GameRepository).loadPlayerPreyClass},
	{"taskhunting", (*GameRepository).loadPlayerTaskHuntingClass},
	{"spells", (*GameRepository).loadPlayerInstantSpellList},
}

// playerFullLoadSteps additionally run when the caller needs the subsystems
// that are irrelevant to an offline character (VIP display, remote lookups);
// they are markedly more expensive to reconstruct.
var playerFullLoadSteps = []loadStep{
	{"forgehistory", (*GameRepository).loadPlayerForgeHistory},
	{"bosstiary", (*GameRepository).loadPlayerBosstiary},
	{"wheel", (*GameRepository).loadPlayerWheelData},
	{"initialize", (*GameRepository).loadPlayerInitializeSystem},
	{"update", (*GameRepository).loadPlayerUpdateSystem},
}

func (r *GameRepository) LoadPlayerByID(p *model.Player, id uint32, full bool) error {
	row, err := r.playerRowByID(id)
	if err != nil {
		return err
	}
	return r.loadPlayer(p, row, full)
}

func (r *GameRepository) LoadPlayerByName(p *model.Player, name string, full bool) error {
	row, err := r.playerRowByName(name)
	if err != nil {
		return err
	}
	return r.loadPlayer(p, row, full)
}

func (r *GameRepository) playerRowByID(id uint32) (*PlayerRow, error) {
	var row PlayerRow
	query := "SELECT * FROM players WHERE id = ? AND world_id = ?"
	if err := r.DB.Get(&row, query, id, r.worldID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *GameRepository) playerRowByName(name string) (*PlayerRow, error) {
	var row PlayerRow
	query := "SELECT * FROM players WHERE name = ? AND world_id = ?"
	if err := r.DB.Get(&row, query, name, r.worldID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// loadPlayer populates the shell from the primary row plus auxiliary queries.
// On error the shell may be partially populated; callers must discard it.
func (r *GameRepository) loadPlayer(p *model.Player, row *PlayerRow, full bool) error {
	if row == nil || p == nil {
		missing := "result"
		if row != nil {
			missing = "player"
		}
		return fmt.Errorf("loadPlayer: %s is nil", missing)
	}

	steps := playerLoadSteps
	if full {
		steps = append(steps[:len(steps):len(steps)], playerFullLoadSteps...)
	}

	for _, step := range steps {
		if err := step.run(r, p, row); err != nil {
			return fmt.Errorf("load player %s stage %s: %w", row.Name, step.name, err)
		}
	}
	return nil
}

func (r *GameRepository) loadPlayerFirst(p *model.Player, row *PlayerRow) error {
	p.ID = row.ID
	p.Name = row.Name
	p.WorldID = row.WorldID
	p.AccountID = row.AccountID
	p.GroupID = row.GroupID
	p.Health = row.Health
	p.HealthMax = row.HealthMax
	p.Mana = row.Mana
	p.ManaMax = row.ManaMax
	p.Soul = row.Soul
	p.Cap = row.Cap
	p.Vocation = row.Vocation
	p.Sex = row.Sex
	p.Direction = row.Direction
	p.Stamina = row.Stamina
	p.TownID = row.TownID
	p.Position = model.Position{X: row.PosX, Y: row.PosY, Z: row.PosZ}
	p.Balance = row.Balance
	p.OfflineTrainingTime = row.OfflineTrainingTime
	p.OfflineTrainingSkill = row.OfflineTrainingSkill
	p.LastLogin = row.LastLogin
	p.LastLogout = row.LastLogout
	p.LastIP = row.LastIP
	p.SaveFlag = row.Save
	p.Deletion = row.Deletion
	return nil
}

func (r *GameRepository) loadPlayerExperience(p *model.Player, row *PlayerRow) error {
	p.Level = row.Level
	p.Experience = row.Experience
	return nil
}

func (r *GameRepository) loadPlayerBlessings(p *model.Player, row *PlayerRow) error {
	if len(row.Blessings) == 0 {
		return nil
	}
	if len(row.Blessings) != model.BlessingCount {
		return fmt.Errorf("malformed blessings blob: %d bytes", len(row.Blessings))
	}
	copy(p.Blessings[:], row.Blessings)
	return nil
}

func (r *GameRepository) loadPlayerConditions(p *model.Player, row *PlayerRow) error {
	if len(row.Conditions) > 0 {
		p.Conditions = append([]byte(nil), row.Conditions...)
	}
	return nil
}

func (r *GameRepository) loadPlayerDefaultOutfit(p *model.Player, row *PlayerRow) error {
	p.Outfit = model.Outfit{
		LookType:   row.LookType,
		LookTypeEx: row.LookTypeEx,
		LookHead:   row.LookHead,
		LookBody:   row.LookBody,
		LookLegs:   row.LookLegs,
		LookFeet:   row.LookFeet,
		LookAddons: row.LookAddons,
		LookMount:  row.LookMount,
	}
	return nil
}

func (r *GameRepository) loadPlayerSkullSystem(p *model.Player, row *PlayerRow) error {
	// An expired skull is dropped on load rather than carried into the session.
	if row.SkullTime > time.Now().Unix() {
		p.Skull = row.Skull
		p.SkullTime = row.SkullTime
	}
	return nil
}

func (r *GameRepository) loadPlayerSkills(p *model.Player, row *PlayerRow) error {
	p.MagicLevel = row.MagLevel
	p.ManaSpent = row.ManaSpent
	p.Skills[model.SkillFist] = model.Skill{Level: row.SkillFist, Tries: row.SkillFistTries}
	p.Skills[model.SkillClub] = model.Skill{Level: row.SkillClub, Tries: row.SkillClubTries}
	p.Skills[model.SkillSword] = model.Skill{Level: row.SkillSword, Tries: row.SkillSwordTries}
	p.Skills[model.SkillAxe] = model.Skill{Level: row.SkillAxe, Tries: row.SkillAxeTries}
	p.Skills[model.SkillDistance] = model.Skill{Level: row.SkillDist, Tries: row.SkillDistTries}
	p.Skills[model.SkillShielding] = model.Skill{Level: row.SkillShielding, Tries: row.SkillShieldingTries}
	p.Skills[model.SkillFishing] = model.Skill{Level: row.SkillFishing, Tries: row.SkillFishingTries}
	return nil
}

func (r *GameRepository) loadPlayerKills(p *model.Player, row *PlayerRow) error {
	var kills []KillDBRow
	query := "SELECT target, time, unavenged FROM player_kills WHERE player_id = ? ORDER BY time"
	if err := r.DB.Select(&kills, query, row.ID); err != nil {
		return err
	}
	for _, k := range kills {
		p.Kills = append(p.Kills, model.Kill{Target: k.Target, Time: k.Time, Unavenged: k.Unavenged})
	}
	return nil
}

func (r *GameRepository) loadPlayerGuild(p *model.Player, row *PlayerRow) error {
	var membership GuildMembershipRow
	query := "SELECT guild_id, rank_id, nick FROM guild_membership WHERE player_id = ?"
	if err := r.DB.Get(&membership, query, row.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	p.Guild = model.GuildMembership{GuildID: membership.GuildID, RankID: membership.RankID, Nick: membership.Nick}
	return nil
}

func (r *GameRepository) loadPlayerStashItems(p *model.Player, row *PlayerRow) error {
	var rows []StashDBRow
	query := "SELECT item_id, item_count FROM player_stash WHERE player_id = ?"
	if err := r.DB.Select(&rows, query, row.ID); err != nil {
		return err
	}
	p.Stash = make(map[uint16]uint32, len(rows))
	for _, s := range rows {
		p.Stash[s.ItemID] = s.ItemCount
	}
	return nil
}

func (r *GameRepository) loadPlayerBestiaryCharms(p *model.Player, row *PlayerRow) error {
	var charms CharmsDBRow
	query := "SELECT charm_points, charm_spent_points, charm_expansion, runes FROM player_charms WHERE player_id = ?"
	if err := r.DB.Get(&charms, query, row.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	p.Charms = model.Charms{
		Points:      charms.CharmPoints,
		SpentPoints: charms.SpentPoints,
		Expansion:   charms.Expansion,
		Runes:       charms.Runes,
	}
	return nil
}

func (r *GameRepository) loadItemRows(table string, playerID uint32) ([]model.ItemRow, error) {
	var rows []ItemDBRow
	query := fmt.Sprintf("SELECT pid, sid, itemtype, `count`, attributes FROM %s WHERE player_id = ? ORDER BY sid", table)
	if err := r.DB.Select(&rows, query, playerID); err != nil {
		return nil, err
	}
	items := make([]model.ItemRow, 0, len(rows))
	for _, it := range rows {
		items = append(items, model.ItemRow{
			PID:        it.PID,
			SID:        it.SID,
			ItemType:   it.ItemType,
			Count:      it.Count,
			Attributes: it.Attributes,
		})
	}
	return items, nil
}

func (r *GameRepository) loadPlayerInventoryItems(p *model.Player, row *PlayerRow) error {
	items, err := r.loadItemRows("player_items", row.ID)
	if err != nil {
		return err
	}
	p.Inventory = items
	return nil
}

// loadPlayerStoreInbox has no row dependency; it only prepares the store inbox
// container the reward step hangs its items off.
func (r *GameRepository) loadPlayerStoreInbox(p *model.Player, _ *PlayerRow) error {
	if p.StoreInbox == nil {
		p.StoreInbox = make([]model.ItemRow, 0)
	}
	return nil
}

func (r *GameRepository) loadPlayerDepotItems(p *model.Player, row *PlayerRow) error {
	items, err := r.loadItemRows("player_depotitems", row.ID)
	if err != nil {
		return err
	}
	p.DepotItems = items
	return nil
}

func (r *GameRepository) loadPlayerRewardItems(p *model.Player, row *PlayerRow) error {
	if p.StoreInbox == nil {
		return errors.New("reward items require an initialized store inbox")
	}
	items, err := r.loadItemRows("player_rewards", row.ID)
	if err != nil {
		return err
	}
	p.RewardItems = items
	return nil
}

func (r *GameRepository) loadPlayerInboxItems(p *model.Player, row *PlayerRow) error {
	items, err := r.loadItemRows("player_inboxitems", row.ID)
	if err != nil {
		return err
	}
	p.InboxItems = items
	return nil
}

func (r *GameRepository) loadPlayerStorageMap(p *model.Player, row *PlayerRow) error {
	var rows []StorageDBRow
	query := "SELECT `key`, value FROM player_storage WHERE player_id = ?"
	if err := r.DB.Select(&rows, query, row.ID); err != nil {
		return err
	}
	p.StorageMap = make(map[uint32]int32, len(rows))
	for _, s := range rows {
		p.StorageMap[s.Key] = s.Value
	}
	return nil
}

func (r *GameRepository) loadPlayerPreyClass(p *model.Player, row *PlayerRow) error {
	var rows []PreyDBRow
	query := "SELECT slot, state, raceid, `option`, bonus_type, bonus_rarity, bonus_percentage, bonus_time, free_reroll, monster_list FROM player_prey WHERE player_id = ? ORDER BY slot"
	if err := r.DB.Select(&rows, query, row.ID); err != nil {
		return err
	}
	for _, s := range rows {
		p.Prey = append(p.Prey, model.PreySlot{
			Slot:            s.Slot,
			State:           s.State,
			RaceID:          s.RaceID,
			Option:          s.Option,
			BonusType:       s.BonusType,
			BonusRarity:     s.BonusRarity,
			BonusPercentage: s.BonusPercentage,
			BonusTimeLeft:   s.BonusTimeLeft,
			FreeRerollIn:    s.FreeRerollIn,
			MonsterList:     s.MonsterList,
		})
	}
	return nil
}

func (r *GameRepository) loadPlayerTaskHuntingClass(p *model.Player, row *PlayerRow) error {
	var rows []TaskHuntDBRow
	query := "SELECT slot, state, raceid, upgrade, rarity, kills, disabled_time, free_reroll, monster_list FROM player_taskhunt WHERE player_id = ? ORDER BY slot"
	if err := r.DB.Select(&rows, query, row.ID); err != nil {
		return err
	}
	for _, s := range rows {
		p.TaskHunting = append(p.TaskHunting, model.TaskHuntingSlot{
			Slot:         s.Slot,
			State:        s.State,
			RaceID:       s.RaceID,
			Upgrade:      s.Upgrade,
			RarityLevel:  s.RarityLevel,
			KillAmount:   s.KillAmount,
			DisabledTime: s.DisabledTime,
			FreeRerollIn: s.FreeRerollIn,
			MonsterList:  s.MonsterList,
		})
	}
	return nil
}

func (r *GameRepository) loadPlayerInstantSpellList(p *model.Player, row *PlayerRow) error {
	var spells []string
	query := "SELECT name FROM player_spells WHERE player_id = ?"
	if err := r.DB.Select(&spells, query, row.ID); err != nil {
		return err
	}
	p.Spells = spells
	return nil
}

func (r *GameRepository) loadPlayerForgeHistory(p *model.Player, row *PlayerRow) error {
	var rows []ForgeHistoryDBRow
	query := "SELECT action_type, description, is_success, created_at FROM forge_history WHERE player_id = ? ORDER BY created_at"
	if err := r.DB.Select(&rows, query, row.ID); err != nil {
		return err
	}
	for _, h := range rows {
		p.ForgeHistory = append(p.ForgeHistory, model.ForgeHistoryEntry{
			ActionType:  h.ActionType,
			Description: h.Description,
			Done:        h.Done,
			CreatedAt:   h.CreatedAt,
		})
	}
	return nil
}

func (r *GameRepository) loadPlayerBosstiary(p *model.Player, row *PlayerRow) error {
	var b BosstiaryDBRow
	query := "SELECT boss_points, boss_id_slot_one, boss_id_slot_two, remove_times, tracker FROM player_bosstiary WHERE player_id = ?"
	if err := r.DB.Get(&b, query, row.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	p.Bosstiary = model.Bosstiary{
		Points:        b.Points,
		BossIDSlotOne: b.BossIDSlotOne,
		BossIDSlotTwo: b.BossIDSlotTwo,
		RemoveTimes:   b.RemoveTimes,
		Tracker:       b.Tracker,
	}
	return nil
}

func (r *GameRepository) loadPlayerWheelData(p *model.Player, row *PlayerRow) error {
	var wheel []byte
	query := "SELECT slot FROM player_wheeldata WHERE player_id = ?"
	if err := r.DB.Get(&wheel, query, row.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	p.WheelData = wheel
	return nil
}

func (r *GameRepository) loadPlayerInitializeSystem(p *model.Player, _ *PlayerRow) error {
	p.InitializeSubsystems()
	return nil
}

func (r *GameRepository) loadPlayerUpdateSystem(p *model.Player, _ *PlayerRow) error {
	p.UpdateDerivedState()
	return nil
}
