package repository

import (
	"fmt"
	"testing"

	"emberfall_backend/model"
)

const (
	testWorldID uint8 = 1
	testDsn           = "emberfall:password@tcp(127.0.0.1:3306)/%s?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true" // Modify credentials
)

const accountsTable = `CREATE TABLE IF NOT EXISTS accounts (
	id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	name VARCHAR(32) NOT NULL,
	email VARCHAR(255) NOT NULL DEFAULT '',
	password CHAR(128) NOT NULL,
	type TINYINT UNSIGNED NOT NULL DEFAULT 1,
	premdays SMALLINT UNSIGNED NOT NULL DEFAULT 0,
	PRIMARY KEY (id)
)`

const accountSessionsTable = `CREATE TABLE IF NOT EXISTS account_sessions (
	token CHAR(36) NOT NULL,
	account_id INT UNSIGNED NOT NULL,
	expires BIGINT NOT NULL,
	PRIMARY KEY (token)
)`

const playersTable = "CREATE TABLE IF NOT EXISTS players (" +
	"id INT UNSIGNED NOT NULL AUTO_INCREMENT," +
	"name VARCHAR(255) NOT NULL," +
	"world_id TINYINT UNSIGNED NOT NULL DEFAULT 1," +
	"account_id INT UNSIGNED NOT NULL DEFAULT 0," +
	"group_id SMALLINT UNSIGNED NOT NULL DEFAULT 1," +
	"level INT UNSIGNED NOT NULL DEFAULT 1," +
	"experience BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"health INT NOT NULL DEFAULT 150," +
	"healthmax INT NOT NULL DEFAULT 150," +
	"mana INT NOT NULL DEFAULT 0," +
	"manamax INT NOT NULL DEFAULT 0," +
	"manaspent BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"maglevel TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"soul TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"cap INT UNSIGNED NOT NULL DEFAULT 400," +
	"vocation SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"sex TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"direction TINYINT UNSIGNED NOT NULL DEFAULT 2," +
	"stamina SMALLINT UNSIGNED NOT NULL DEFAULT 2520," +
	"town_id INT UNSIGNED NOT NULL DEFAULT 1," +
	"posx SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"posy SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"posz TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"looktype SMALLINT UNSIGNED NOT NULL DEFAULT 136," +
	"looktypeex SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"lookhead TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"lookbody TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"looklegs TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"lookfeet TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"lookaddons TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"lookmount SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"blessings BLOB NULL," +
	"conditions BLOB NULL," +
	"skull TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"skulltime BIGINT NOT NULL DEFAULT 0," +
	"skill_fist SMALLINT UNSIGNED NOT NULL DEFAULT 10," +
	"skill_fist_tries BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"skill_club SMALLINT UNSIGNED NOT NULL DEFAULT 10," +
	"skill_club_tries BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"skill_sword SMALLINT UNSIGNED NOT NULL DEFAULT 10," +
	"skill_sword_tries BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"skill_axe SMALLINT UNSIGNED NOT NULL DEFAULT 10," +
	"skill_axe_tries BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"skill_dist SMALLINT UNSIGNED NOT NULL DEFAULT 10," +
	"skill_dist_tries BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"skill_shielding SMALLINT UNSIGNED NOT NULL DEFAULT 10," +
	"skill_shielding_tries BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"skill_fishing SMALLINT UNSIGNED NOT NULL DEFAULT 10," +
	"skill_fishing_tries BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"balance BIGINT UNSIGNED NOT NULL DEFAULT 0," +
	"offlinetraining_time INT NOT NULL DEFAULT 43200," +
	"offlinetraining_skill TINYINT NOT NULL DEFAULT -1," +
	"lastlogin BIGINT NOT NULL DEFAULT 0," +
	"lastlogout BIGINT NOT NULL DEFAULT 0," +
	"lastip INT UNSIGNED NOT NULL DEFAULT 0," +
	"`save` TINYINT(1) NOT NULL DEFAULT 1," +
	"deletion BIGINT NOT NULL DEFAULT 0," +
	"PRIMARY KEY (id)" +
	")"

const playersOnlineTable = `CREATE TABLE IF NOT EXISTS players_online (
	player_id INT UNSIGNED NOT NULL,
	world_id TINYINT UNSIGNED NOT NULL DEFAULT 1,
	PRIMARY KEY (player_id, world_id)
)`

const accountVIPListTable = `CREATE TABLE IF NOT EXISTS account_viplist (
	account_id INT UNSIGNED NOT NULL,
	player_id INT UNSIGNED NOT NULL,
	world_id TINYINT UNSIGNED NOT NULL DEFAULT 1,
	description VARCHAR(128) NOT NULL DEFAULT '',
	icon INT UNSIGNED NOT NULL DEFAULT 0,
	notify TINYINT(1) NOT NULL DEFAULT 0,
	PRIMARY KEY (account_id, player_id, world_id)
)`

const accountVIPGroupsTable = `CREATE TABLE IF NOT EXISTS account_vipgroups (
	id TINYINT UNSIGNED NOT NULL,
	account_id INT UNSIGNED NOT NULL,
	name VARCHAR(128) NOT NULL,
	customizable TINYINT(1) NOT NULL DEFAULT 1,
	PRIMARY KEY (id, account_id)
)`

const accountVIPGroupListTable = `CREATE TABLE IF NOT EXISTS account_vipgrouplist (
	account_id INT UNSIGNED NOT NULL,
	player_id INT UNSIGNED NOT NULL,
	vipgroup_id TINYINT UNSIGNED NOT NULL,
	PRIMARY KEY (account_id, player_id, vipgroup_id)
)`

const worldsTable = `CREATE TABLE IF NOT EXISTS worlds (
	id TINYINT UNSIGNED NOT NULL AUTO_INCREMENT,
	name VARCHAR(255) NOT NULL,
	type VARCHAR(64) NOT NULL,
	motd VARCHAR(255) NOT NULL DEFAULT '',
	location VARCHAR(64) NOT NULL DEFAULT '',
	ip VARCHAR(64) NOT NULL DEFAULT '',
	port SMALLINT UNSIGNED NOT NULL DEFAULT 7172,
	creation BIGINT NOT NULL DEFAULT 0,
	PRIMARY KEY (id)
)`

const itemTableTemplate = "CREATE TABLE IF NOT EXISTS %s (" +
	"player_id INT UNSIGNED NOT NULL," +
	"pid INT NOT NULL DEFAULT 0," +
	"sid INT NOT NULL DEFAULT 0," +
	"itemtype SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"`count` SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"attributes BLOB NULL" +
	")"

const playerStorageTable = "CREATE TABLE IF NOT EXISTS player_storage (" +
	"player_id INT UNSIGNED NOT NULL," +
	"`key` INT UNSIGNED NOT NULL," +
	"value INT NOT NULL DEFAULT 0," +
	"PRIMARY KEY (player_id, `key`)" +
	")"

const playerStashTable = `CREATE TABLE IF NOT EXISTS player_stash (
	player_id INT UNSIGNED NOT NULL,
	item_id SMALLINT UNSIGNED NOT NULL,
	item_count INT UNSIGNED NOT NULL DEFAULT 0,
	PRIMARY KEY (player_id, item_id)
)`

const playerSpellsTable = `CREATE TABLE IF NOT EXISTS player_spells (
	player_id INT UNSIGNED NOT NULL,
	name VARCHAR(255) NOT NULL
)`

const playerKillsTable = `CREATE TABLE IF NOT EXISTS player_kills (
	player_id INT UNSIGNED NOT NULL,
	target INT UNSIGNED NOT NULL,
	time BIGINT NOT NULL DEFAULT 0,
	unavenged TINYINT(1) NOT NULL DEFAULT 0
)`

const playerPreyTable = "CREATE TABLE IF NOT EXISTS player_prey (" +
	"player_id INT UNSIGNED NOT NULL," +
	"slot TINYINT UNSIGNED NOT NULL," +
	"state TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"raceid SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"`option` TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"bonus_type TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"bonus_rarity TINYINT UNSIGNED NOT NULL DEFAULT 0," +
	"bonus_percentage SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"bonus_time SMALLINT UNSIGNED NOT NULL DEFAULT 0," +
	"free_reroll BIGINT NOT NULL DEFAULT 0," +
	"monster_list TEXT NULL," +
	"PRIMARY KEY (player_id, slot)" +
	")"

const playerTaskHuntTable = `CREATE TABLE IF NOT EXISTS player_taskhunt (
	player_id INT UNSIGNED NOT NULL,
	slot TINYINT UNSIGNED NOT NULL,
	state TINYINT UNSIGNED NOT NULL DEFAULT 0,
	raceid SMALLINT UNSIGNED NOT NULL DEFAULT 0,
	upgrade TINYINT(1) NOT NULL DEFAULT 0,
	rarity TINYINT UNSIGNED NOT NULL DEFAULT 0,
	kills SMALLINT UNSIGNED NOT NULL DEFAULT 0,
	disabled_time BIGINT NOT NULL DEFAULT 0,
	free_reroll BIGINT NOT NULL DEFAULT 0,
	monster_list TEXT NULL,
	PRIMARY KEY (player_id, slot)
)`

const forgeHistoryTable = `CREATE TABLE IF NOT EXISTS forge_history (
	player_id INT UNSIGNED NOT NULL,
	action_type INT NOT NULL DEFAULT 0,
	description TEXT NOT NULL,
	is_success TINYINT(1) NOT NULL DEFAULT 0,
	created_at BIGINT NOT NULL DEFAULT 0
)`

const playerBosstiaryTable = `CREATE TABLE IF NOT EXISTS player_bosstiary (
	player_id INT UNSIGNED NOT NULL,
	boss_points INT UNSIGNED NOT NULL DEFAULT 0,
	boss_id_slot_one INT UNSIGNED NOT NULL DEFAULT 0,
	boss_id_slot_two INT UNSIGNED NOT NULL DEFAULT 0,
	remove_times INT UNSIGNED NOT NULL DEFAULT 0,
	tracker BLOB NULL,
	PRIMARY KEY (player_id)
)`

const playerWheelDataTable = `CREATE TABLE IF NOT EXISTS player_wheeldata (
	player_id INT UNSIGNED NOT NULL,
	slot BLOB NOT NULL,
	PRIMARY KEY (player_id)
)`

const playerCharmsTable = `CREATE TABLE IF NOT EXISTS player_charms (
	player_id INT UNSIGNED NOT NULL,
	charm_points INT UNSIGNED NOT NULL DEFAULT 0,
	charm_spent_points INT UNSIGNED NOT NULL DEFAULT 0,
	charm_expansion TINYINT(1) NOT NULL DEFAULT 0,
	runes BLOB NULL,
	PRIMARY KEY (player_id)
)`

const guildMembershipTable = `CREATE TABLE IF NOT EXISTS guild_membership (
	player_id INT UNSIGNED NOT NULL,
	guild_id INT UNSIGNED NOT NULL,
	rank_id INT UNSIGNED NOT NULL,
	nick VARCHAR(255) NOT NULL DEFAULT '',
	PRIMARY KEY (player_id)
)`

const housesTable = `CREATE TABLE IF NOT EXISTS houses (
	id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	world_id TINYINT UNSIGNED NOT NULL DEFAULT 1,
	highest_bidder INT UNSIGNED NOT NULL DEFAULT 0,
	PRIMARY KEY (id)
)`

// testRepository connects to the local test database and recreates the
// schema. Tests needing a live database skip when it is unreachable so the
// in-memory tests still run everywhere.
func testRepository(t *testing.T) *GameRepository {
	t.Helper()

	bootstrap, errBoot := New(fmt.Sprintf(testDsn, ""), testWorldID)
	if errBoot != nil {
		t.Skipf("Skipping, test database unreachable: %v", errBoot)
		return nil
	}
	if _, err := bootstrap.DB.Exec("CREATE DATABASE IF NOT EXISTS test_schema"); err != nil {
		t.Fatalf("Error creating test database: %v", err)
		return nil
	}
	if err := bootstrap.DB.Close(); err != nil {
		t.Fatalf("Error closing bootstrap connection: %v", err)
		return nil
	}

	repo, errRepo := New(fmt.Sprintf(testDsn, "test_schema"), testWorldID)
	if errRepo != nil {
		t.Fatalf("Error creating test repository: %v", errRepo)
		return nil
	}

	ddl := []string{
		accountsTable, accountSessionsTable, playersTable, playersOnlineTable,
		accountVIPListTable, accountVIPGroupsTable, accountVIPGroupListTable,
		worldsTable,
		fmt.Sprintf(itemTableTemplate, "player_items"),
		fmt.Sprintf(itemTableTemplate, "player_depotitems"),
		fmt.Sprintf(itemTableTemplate, "player_rewards"),
		fmt.Sprintf(itemTableTemplate, "player_inboxitems"),
		playerStorageTable, playerStashTable, playerSpellsTable,
		playerKillsTable, playerPreyTable, playerTaskHuntTable,
		forgeHistoryTable, playerBosstiaryTable, playerWheelDataTable,
		playerCharmsTable, guildMembershipTable, housesTable,
	}
	for _, stmt := range ddl {
		if _, err := repo.DB.Exec(stmt); err != nil {
			t.Fatalf("Error creating test table: %v", err)
			return nil
		}
	}

	tables := []string{
		"accounts", "account_sessions", "players", "players_online",
		"account_viplist", "account_vipgroups", "account_vipgrouplist",
		"worlds", "player_items", "player_depotitems", "player_rewards",
		"player_inboxitems", "player_storage", "player_stash",
		"player_spells", "player_kills", "player_prey", "player_taskhunt",
		"forge_history", "player_bosstiary", "player_wheeldata",
		"player_charms", "guild_membership", "houses",
	}
	for _, table := range tables {
		if _, err := repo.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			t.Fatalf("Error truncating test table %s: %v", table, err)
			return nil
		}
	}

	return repo
}

func testCleanup(t *testing.T, repo *GameRepository) {
	t.Helper()

	if _, err := repo.DB.Exec("DROP DATABASE IF EXISTS test_schema"); err != nil {
		t.Fatalf("Error dropping test database: %v", err)
	}
	if err := repo.DB.Close(); err != nil {
		t.Fatalf("Error closing test database: %v", err)
	}
}

func testSeedAccount(t *testing.T, repo *GameRepository, name, password string, accType uint8) uint32 {
	t.Helper()

	res, err := repo.DB.Exec(
		"INSERT INTO accounts (name, email, password, type, premdays) VALUES (?, ?, ?, ?, ?)",
		name, name+"@test.local", password, accType, 0,
	)
	if err != nil {
		t.Fatalf("Error seeding account: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint32(id)
}

func testSeedPlayer(t *testing.T, repo *GameRepository, name string, accountID uint32) uint32 {
	t.Helper()

	res, err := repo.DB.Exec(
		"INSERT INTO players (name, world_id, account_id, level, experience, health, healthmax, mana, manamax) VALUES (?, ?, ?, 8, 4200, 185, 185, 40, 90)",
		name, repo.worldID, accountID,
	)
	if err != nil {
		t.Fatalf("Error seeding player: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint32(id)
}

func testLoadedPlayer(t *testing.T, repo *GameRepository, id uint32) *model.Player {
	t.Helper()

	var player model.Player
	if err := repo.LoadPlayerByID(&player, id, true); err != nil {
		t.Fatalf("Error loading seeded player: %v", err)
	}
	return &player
}
