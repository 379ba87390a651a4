package repository

import (
	"emberfall_backend/model"
	"errors"
	"fmt"
	"github.com/jmoiron/sqlx"
)

// StageError reports which save stage failed for which player. It never
// escapes SavePlayer; the service layer collapses it into one log line and a
// boolean result.
type StageError struct {
	Stage  string
	Player string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("save player %s stage %s: %v", e.Player, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// saveStage is one stage of the player save pipeline. Stages run in order
// inside a single transaction; the first failure aborts the rest and rolls
// the whole save back. Rewards must come after inbox structures exist, so the
// order is not freely permutable.
type saveStage struct {
	name string
	run  func(r *GameRepository, tx *sqlx.Tx, p *model.Player) error
}

var playerSaveStages = []saveStage{
	{"first", (*GameRepository).savePlayerFirst},
	{"stash", (*GameRepository).savePlayerStash},
	{"spells", (*GameRepository).savePlayerSpells},
	{"kills", (*GameRepository).savePlayerKills},
	{"bestiary", (*GameRepository).savePlayerBestiarySystem},
	{"items", (*GameRepository).savePlayerItems},
	{"depot", (*GameRepository).savePlayerDepotItems},
	{"rewards", (*GameRepository).savePlayerRewardItems},
	{"inbox", (*GameRepository).savePlayerInbox},
	{"prey", (*GameRepository).savePlayerPreyClass},
	{"taskhunting", (*GameRepository).savePlayerTaskHuntingClass},
	{"forgehistory", (*GameRepository).savePlayerForgeHistory},
	{"bosstiary", (*GameRepository).savePlayerBosstiary},
	{"wheel", (*GameRepository).savePlayerWheelData},
	{"storage", (*GameRepository).savePlayerStorage},
}

// SavePlayer writes the aggregate back in one all-or-nothing transaction.
func (r *GameRepository) SavePlayer(p *model.Player) error {
	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		return r.savePlayerGuard(tx, p)
	})
}

func (r *GameRepository) savePlayerGuard(tx *sqlx.Tx, p *model.Player) error {
	if p == nil {
		return errors.New("savePlayerGuard: player is nil")
	}
	return runSaveStages(r, tx, p, playerSaveStages)
}

func runSaveStages(r *GameRepository, tx *sqlx.Tx, p *model.Player, stages []saveStage) error {
	for _, stage := range stages {
		if err := stage.run(r, tx, p); err != nil {
			return &StageError{Stage: stage.name, Player: p.Name, Err: err}
		}
	}
	return nil
}

func (r *GameRepository) savePlayerFirst(tx *sqlx.Tx, p *model.Player) error {
	query := `UPDATE players SET
		name = ?, account_id = ?, group_id = ?,
		level = ?, experience = ?, health = ?, healthmax = ?, mana = ?, manamax = ?,
		manaspent = ?, maglevel = ?, soul = ?, cap = ?, vocation = ?, sex = ?, direction = ?, stamina = ?,
		town_id = ?, posx = ?, posy = ?, posz = ?,
		looktype = ?, looktypeex = ?, lookhead = ?, lookbody = ?, looklegs = ?, lookfeet = ?, lookaddons = ?, lookmount = ?,
		blessings = ?, conditions = ?, skull = ?, skulltime = ?,
		skill_fist = ?, skill_fist_tries = ?, skill_club = ?, skill_club_tries = ?,
		skill_sword = ?, skill_sword_tries = ?, skill_axe = ?, skill_axe_tries = ?,
		skill_dist = ?, skill_dist_tries = ?, skill_shielding = ?, skill_shielding_tries = ?,
		skill_fishing = ?, skill_fishing_tries = ?,
		balance = ?, offlinetraining_time = ?, offlinetraining_skill = ?,
		lastlogin = ?, lastlogout = ?, lastip = ?, ` + "`save`" + ` = ?
		WHERE id = ? AND world_id = ?`

	_, err := tx.Exec(query,
		p.Name, p.AccountID, p.GroupID,
		p.Level, p.Experience, p.Health, p.HealthMax, p.Mana, p.ManaMax,
		p.ManaSpent, p.MagicLevel, p.Soul, p.Cap, p.Vocation, p.Sex, p.Direction, p.Stamina,
		p.TownID, p.Position.X, p.Position.Y, p.Position.Z,
		p.Outfit.LookType, p.Outfit.LookTypeEx, p.Outfit.LookHead, p.Outfit.LookBody,
		p.Outfit.LookLegs, p.Outfit.LookFeet, p.Outfit.LookAddons, p.Outfit.LookMount,
		p.Blessings[:], p.Conditions, p.Skull, p.SkullTime,
		p.Skills[model.SkillFist].Level, p.Skills[model.SkillFist].Tries,
		p.Skills[model.SkillClub].Level, p.Skills[model.SkillClub].Tries,
		p.Skills[model.SkillSword].Level, p.Skills[model.SkillSword].Tries,
		p.Skills[model.SkillAxe].Level, p.Skills[model.SkillAxe].Tries,
		p.Skills[model.SkillDistance].Level, p.Skills[model.SkillDistance].Tries,
		p.Skills[model.SkillShielding].Level, p.Skills[model.SkillShielding].Tries,
		p.Skills[model.SkillFishing].Level, p.Skills[model.SkillFishing].Tries,
		p.Balance, p.OfflineTrainingTime, p.OfflineTrainingSkill,
		p.LastLogin, p.LastLogout, p.LastIP, p.SaveFlag,
		p.ID, r.worldID,
	)
	return err
}

// clearPlayerRows drops the player's rows of one sub-entity table before the
// stage rewrites them.
func clearPlayerRows(tx *sqlx.Tx, table string, playerID uint32) error {
	_, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE player_id = ?", table), playerID)
	return err
}

func (r *GameRepository) savePlayerStash(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_stash", p.ID); err != nil {
		return err
	}
	for itemID, count := range p.Stash {
		if _, err := tx.Exec("INSERT INTO player_stash (player_id, item_id, item_count) VALUES (?, ?, ?)", p.ID, itemID, count); err != nil {
			return err
		}
	}
	return nil
}

func (r *GameRepository) savePlayerSpells(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_spells", p.ID); err != nil {
		return err
	}
	for _, name := range p.Spells {
		if _, err := tx.Exec("INSERT INTO player_spells (player_id, name) VALUES (?, ?)", p.ID, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *GameRepository) savePlayerKills(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_kills", p.ID); err != nil {
		return err
	}
	for _, k := range p.Kills {
		if _, err := tx.Exec("INSERT INTO player_kills (player_id, target, time, unavenged) VALUES (?, ?, ?, ?)", p.ID, k.Target, k.Time, k.Unavenged); err != nil {
			return err
		}
	}
	return nil
}

func (r *GameRepository) savePlayerBestiarySystem(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_charms", p.ID); err != nil {
		return err
	}
	_, err := tx.Exec(
		"INSERT INTO player_charms (player_id, charm_points, charm_spent_points, charm_expansion, runes) VALUES (?, ?, ?, ?, ?)",
		p.ID, p.Charms.Points, p.Charms.SpentPoints, p.Charms.Expansion, p.Charms.Runes,
	)
	return err
}

func saveItemRows(tx *sqlx.Tx, table string, playerID uint32, items []model.ItemRow) error {
	if err := clearPlayerRows(tx, table, playerID); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	query := fmt.Sprintf("INSERT INTO %s (player_id, pid, sid, itemtype, `count`, attributes) VALUES ", table)
	args := make([]interface{}, 0, len(items)*6)
	for i, it := range items {
		if i > 0 {
			query += ", "
		}
		query += "(" + placeholders(6) + ")"
		args = append(args, playerID, it.PID, it.SID, it.ItemType, it.Count, it.Attributes)
	}
	_, err := tx.Exec(query, args...)
	return err
}

func (r *GameRepository) savePlayerItems(tx *sqlx.Tx, p *model.Player) error {
	return saveItemRows(tx, "player_items", p.ID, p.Inventory)
}

func (r *GameRepository) savePlayerDepotItems(tx *sqlx.Tx, p *model.Player) error {
	return saveItemRows(tx, "player_depotitems", p.ID, p.DepotItems)
}

func (r *GameRepository) savePlayerRewardItems(tx *sqlx.Tx, p *model.Player) error {
	return saveItemRows(tx, "player_rewards", p.ID, p.RewardItems)
}

func (r *GameRepository) savePlayerInbox(tx *sqlx.Tx, p *model.Player) error {
	return saveItemRows(tx, "player_inboxitems", p.ID, p.InboxItems)
}

func (r *GameRepository) savePlayerPreyClass(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_prey", p.ID); err != nil {
		return err
	}
	for _, s := range p.Prey {
		if _, err := tx.Exec(
			"INSERT INTO player_prey (player_id, slot, state, raceid, `option`, bonus_type, bonus_rarity, bonus_percentage, bonus_time, free_reroll, monster_list) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			p.ID, s.Slot, s.State, s.RaceID, s.Option, s.BonusType, s.BonusRarity, s.BonusPercentage, s.BonusTimeLeft, s.FreeRerollIn, s.MonsterList,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *GameRepository) savePlayerTaskHuntingClass(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_taskhunt", p.ID); err != nil {
		return err
	}
	for _, s := range p.TaskHunting {
		if _, err := tx.Exec(
			"INSERT INTO player_taskhunt (player_id, slot, state, raceid, upgrade, rarity, kills, disabled_time, free_reroll, monster_list) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			p.ID, s.Slot, s.State, s.RaceID, s.Upgrade, s.RarityLevel, s.KillAmount, s.DisabledTime, s.FreeRerollIn, s.MonsterList,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *GameRepository) savePlayerForgeHistory(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "forge_history", p.ID); err != nil {
		return err
	}
	for _, h := range p.ForgeHistory {
		if _, err := tx.Exec(
			"INSERT INTO forge_history (player_id, action_type, description, is_success, created_at) VALUES (?, ?, ?, ?, ?)",
			p.ID, h.ActionType, h.Description, h.Done, h.CreatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *GameRepository) savePlayerBosstiary(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_bosstiary", p.ID); err != nil {
		return err
	}
	_, err := tx.Exec(
		"INSERT INTO player_bosstiary (player_id, boss_points, boss_id_slot_one, boss_id_slot_two, remove_times, tracker) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.Bosstiary.Points, p.Bosstiary.BossIDSlotOne, p.Bosstiary.BossIDSlotTwo, p.Bosstiary.RemoveTimes, p.Bosstiary.Tracker,
	)
	return err
}

func (r *GameRepository) savePlayerWheelData(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_wheeldata", p.ID); err != nil {
		return err
	}
	if len(p.WheelData) == 0 {
		return nil
	}
	_, err := tx.Exec("INSERT INTO player_wheeldata (player_id, slot) VALUES (?, ?)", p.ID, p.WheelData)
	return err
}

func (r *GameRepository) savePlayerStorage(tx *sqlx.Tx, p *model.Player) error {
	if err := clearPlayerRows(tx, "player_storage", p.ID); err != nil {
		return err
	}
	for key, value := range p.StorageMap {
		if _, err := tx.Exec("INSERT INTO player_storage (player_id, `key`, value) VALUES (?, ?, ?)", p.ID, key, value); err != nil {
			return err
		}
	}
	return nil
}
