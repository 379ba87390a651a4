package repository

import (
	"emberfall_backend/model"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "roundtrip", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Arkand", accountID)

	player := testLoadedPlayer(t, repo, playerID)
	player.Level = 120
	player.Experience = 2871106200
	player.Health = 1000
	player.HealthMax = 1255
	player.MagicLevel = 74
	player.Blessings = [model.BlessingCount]uint8{1, 1, 0, 1, 0, 0, 1, 0}
	player.Skills[model.SkillSword] = model.Skill{Level: 95, Tries: 1234}
	player.Balance = 500000
	player.Stash[3031] = 250
	player.StorageMap[17741] = 1
	player.Spells = []string{"exura", "exori"}
	player.Kills = []model.Kill{{Target: 99, Time: time.Now().Unix(), Unavenged: true}}
	player.Inventory = []model.ItemRow{
		{PID: 3, SID: 101, ItemType: 2854, Count: 1},
		{PID: 101, SID: 102, ItemType: 3031, Count: 100, Attributes: []byte{0x0f, 0x64}},
	}
	player.DepotItems = []model.ItemRow{{PID: 1, SID: 201, ItemType: 2589, Count: 1}}
	player.Charms = model.Charms{Points: 120, SpentPoints: 60, Expansion: true, Runes: []byte{0x01}}
	player.Prey[0] = model.PreySlot{Slot: 0, State: 2, RaceID: 21, BonusType: 1, BonusPercentage: 15, MonsterList: "21,34,55"}
	player.TaskHunting[1] = model.TaskHuntingSlot{Slot: 1, State: 1, RaceID: 34, KillAmount: 40, MonsterList: "34"}
	player.ForgeHistory = []model.ForgeHistoryEntry{{ActionType: 1, Description: "fusion", Done: true, CreatedAt: time.Now().Unix()}}
	player.Bosstiary = model.Bosstiary{Points: 7, BossIDSlotOne: 1412, Tracker: []byte{0x02}}
	player.WheelData = []byte{0x10, 0x20, 0x30}

	if err := repo.SavePlayer(player); err != nil {
		t.Fatalf("Error saving player: %v", err)
	}

	var reloaded model.Player
	if err := repo.LoadPlayerByID(&reloaded, playerID, true); err != nil {
		t.Fatalf("Error reloading player: %v", err)
	}

	assert.Equal(t, player.Level, reloaded.Level)
	assert.Equal(t, player.Experience, reloaded.Experience)
	assert.Equal(t, player.Health, reloaded.Health)
	assert.Equal(t, player.HealthMax, reloaded.HealthMax)
	assert.Equal(t, player.MagicLevel, reloaded.MagicLevel)
	assert.Equal(t, player.Blessings, reloaded.Blessings)
	assert.Equal(t, player.Skills[model.SkillSword], reloaded.Skills[model.SkillSword])
	assert.Equal(t, player.Balance, reloaded.Balance)
	assert.Equal(t, player.Stash, reloaded.Stash)
	assert.Equal(t, player.StorageMap, reloaded.StorageMap)
	assert.ElementsMatch(t, player.Spells, reloaded.Spells)
	assert.Equal(t, player.Kills, reloaded.Kills)
	assert.Equal(t, player.Inventory, reloaded.Inventory)
	assert.Equal(t, player.DepotItems, reloaded.DepotItems)
	assert.Equal(t, player.Charms, reloaded.Charms)
	assert.Equal(t, player.Prey[0], reloaded.Prey[0])
	assert.Equal(t, player.TaskHunting[1], reloaded.TaskHunting[1])
	assert.Equal(t, player.ForgeHistory, reloaded.ForgeHistory)
	assert.Equal(t, player.Bosstiary, reloaded.Bosstiary)
	assert.Equal(t, player.WheelData, reloaded.WheelData)
	assert.True(t, reloaded.Initialized)
}

func TestSavePlayerRollsBackOnStageFailure(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "atomic", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Halfway", accountID)

	player := testLoadedPlayer(t, repo, playerID)
	player.Level = 200
	player.WheelData = []byte{0x01}

	// Break a late stage; every earlier stage's write must roll back with it.
	if _, err := repo.DB.Exec("DROP TABLE player_wheeldata"); err != nil {
		t.Fatalf("Error dropping table: %v", err)
	}

	err := repo.SavePlayer(player)
	var stageErr *StageError
	if assert.ErrorAs(t, err, &stageErr) {
		assert.Equal(t, "wheel", stageErr.Stage)
		assert.Equal(t, "Halfway", stageErr.Player)
	}

	var level uint32
	if err = repo.DB.Get(&level, "SELECT level FROM players WHERE id = ?", playerID); err != nil {
		t.Fatalf("Error reading player level: %v", err)
	}
	assert.Equal(t, uint32(8), level, "the first stage's update must be rolled back")
}

func TestLoadPlayerOfflineSkipsExpensiveSubsystems(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "offline", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Velora", accountID)

	full := testLoadedPlayer(t, repo, playerID)
	full.ForgeHistory = []model.ForgeHistoryEntry{{ActionType: 2, Description: "transfer", CreatedAt: 100}}
	full.WheelData = []byte{0x01}
	if err := repo.SavePlayer(full); err != nil {
		t.Fatalf("Error saving player: %v", err)
	}

	var offline model.Player
	if err := repo.LoadPlayerByName(&offline, "Velora", false); err != nil {
		t.Fatalf("Error loading player in offline mode: %v", err)
	}

	assert.Empty(t, offline.ForgeHistory)
	assert.Empty(t, offline.WheelData)
	assert.False(t, offline.Initialized)
}

func TestLoadPlayerUnknown(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	var player model.Player
	err := repo.LoadPlayerByID(&player, 424242, true)
	assert.ErrorContains(t, err, "result is nil")

	err = repo.LoadPlayerByName(&player, "Nobody", true)
	assert.ErrorContains(t, err, "result is nil")
}

func TestLoadPlayerWorldScope(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "scoped", "secret", model.AccountTypeNormal)
	if _, err := repo.DB.Exec(
		"INSERT INTO players (name, world_id, account_id) VALUES (?, ?, ?)",
		"Foreigner", testWorldID+1, accountID,
	); err != nil {
		t.Fatalf("Error seeding foreign player: %v", err)
	}

	var player model.Player
	err := repo.LoadPlayerByName(&player, "Foreigner", false)
	assert.ErrorContains(t, err, "result is nil", "players of other worlds must be invisible")
}

func TestExpiredSkullDroppedOnLoad(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "skulled", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Redwrath", accountID)

	if _, err := repo.DB.Exec(
		"UPDATE players SET skull = 3, skulltime = ? WHERE id = ?",
		time.Now().Add(-time.Hour).Unix(), playerID,
	); err != nil {
		t.Fatalf("Error setting skull: %v", err)
	}

	player := testLoadedPlayer(t, repo, playerID)
	assert.Zero(t, player.Skull)
	assert.Zero(t, player.SkullTime)

	future := time.Now().Add(time.Hour).Unix()
	if _, err := repo.DB.Exec("UPDATE players SET skull = 3, skulltime = ? WHERE id = ?", future, playerID); err != nil {
		t.Fatalf("Error setting skull: %v", err)
	}

	player = testLoadedPlayer(t, repo, playerID)
	assert.Equal(t, uint8(3), player.Skull)
	assert.Equal(t, future, player.SkullTime)
}

func TestHealthClampedOnFullLoad(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "clamped", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Overhealed", accountID)

	if _, err := repo.DB.Exec("UPDATE players SET health = 500, healthmax = 185, mana = 300, manamax = 90 WHERE id = ?", playerID); err != nil {
		t.Fatalf("Error setting health: %v", err)
	}

	player := testLoadedPlayer(t, repo, playerID)
	assert.Equal(t, player.HealthMax, player.Health)
	assert.Equal(t, player.ManaMax, player.Mana)
}

func TestVIPEntriesCRUD(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "viplist", "secret", model.AccountTypeNormal)
	friendID := testSeedPlayer(t, repo, "Friend", accountID)

	entries, err := repo.VIPEntries(accountID)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, repo.AddVIPEntry(accountID, friendID, "hunting buddy", 2, true))

	entries, err = repo.VIPEntries(accountID)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, friendID, entries[0].PlayerID)
		assert.Equal(t, "Friend", entries[0].Name)
		assert.Equal(t, "hunting buddy", entries[0].Description)
		assert.Equal(t, uint32(2), entries[0].Icon)
		assert.True(t, entries[0].Notify)
	}

	assert.NoError(t, repo.EditVIPEntry(accountID, friendID, "quest partner", 5, false))

	entries, _ = repo.VIPEntries(accountID)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "quest partner", entries[0].Description)
		assert.Equal(t, uint32(5), entries[0].Icon)
		assert.False(t, entries[0].Notify)
	}

	assert.NoError(t, repo.RemoveVIPEntry(accountID, friendID))
	entries, _ = repo.VIPEntries(accountID)
	assert.Empty(t, entries)
}

func TestVIPGroupCRUD(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "vipgroups", "secret", model.AccountTypeNormal)
	friendID := testSeedPlayer(t, repo, "Member", accountID)

	assert.NoError(t, repo.AddVIPGroupEntry(4, accountID, "Guild mates", true))

	groups, err := repo.VIPGroupEntries(accountID, 0)
	assert.NoError(t, err)
	if assert.Len(t, groups, 1) {
		assert.Equal(t, uint8(4), groups[0].ID)
		assert.Equal(t, "Guild mates", groups[0].Name)
		assert.True(t, groups[0].Customizable)
	}

	assert.NoError(t, repo.EditVIPGroupEntry(4, accountID, "War allies", false))
	groups, _ = repo.VIPGroupEntries(accountID, 0)
	if assert.Len(t, groups, 1) {
		assert.Equal(t, "War allies", groups[0].Name)
		assert.False(t, groups[0].Customizable)
	}

	assert.NoError(t, repo.AddGuidVIPGroupEntry(4, accountID, friendID))
	assert.NoError(t, repo.RemoveGuidVIPGroupEntry(accountID, friendID))

	assert.NoError(t, repo.RemoveVIPGroupEntry(4, accountID))
	groups, _ = repo.VIPGroupEntries(accountID, 0)
	assert.Empty(t, groups)
}

func TestWorldRegistry(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	count, err := repo.CountWorlds()
	assert.NoError(t, err)
	assert.Zero(t, count)

	err = repo.InsertWorld(model.World{
		Name: "Emberfall", Type: "pvp", Motd: "Welcome!",
		Location: "Europe", IP: "127.0.0.1", Port: 7172,
	})
	assert.NoError(t, err)

	count, _ = repo.CountWorlds()
	assert.Equal(t, 1, count)

	worlds, err := repo.Worlds()
	assert.NoError(t, err)
	if assert.Len(t, worlds, 1) {
		assert.Equal(t, "Emberfall", worlds[0].Name)
		assert.Equal(t, "pvp", worlds[0].Type)
		assert.NotZero(t, worlds[0].Creation)
	}
}

func TestOnlinePresenceRelation(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "presence", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Watcher", accountID)

	count, err := repo.OnlineCount()
	assert.NoError(t, err)
	assert.Zero(t, count)

	assert.NoError(t, repo.InsertOnlinePlayer(playerID))
	count, _ = repo.OnlineCount()
	assert.Equal(t, 1, count)

	assert.NoError(t, repo.DeleteOnlinePlayer(playerID))
	count, _ = repo.OnlineCount()
	assert.Zero(t, count)
}

func TestAccountByDescriptor(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "lookup", "secret", model.AccountTypeTutor)

	byName, err := repo.AccountByDescriptor("lookup")
	assert.NoError(t, err)
	assert.Equal(t, accountID, byName.ID)

	byEmail, err := repo.AccountByDescriptor("lookup@test.local")
	assert.NoError(t, err)
	assert.Equal(t, accountID, byEmail.ID)

	byNumber, err := repo.AccountByDescriptor(strconv.FormatUint(uint64(accountID), 10))
	assert.NoError(t, err)
	assert.Equal(t, accountID, byNumber.ID)

	_, err = repo.AccountByDescriptor("missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountSessions(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "sessions", "secret", model.AccountTypeNormal)

	token, err := repo.CreateSession(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	account, err := repo.AccountBySession(token)
	assert.NoError(t, err)
	assert.Equal(t, accountID, account.ID)

	// An expired session must not resolve.
	expired := "00000000-0000-0000-0000-000000000001"
	if _, err = repo.DB.Exec(
		"INSERT INTO account_sessions (token, account_id, expires) VALUES (?, ?, ?)",
		expired, accountID, time.Now().Add(-time.Minute).Unix(),
	); err != nil {
		t.Fatalf("Error seeding expired session: %v", err)
	}

	_, err = repo.AccountBySession(expired)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountCharactersIncludeDeleted(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "roster", "secret", model.AccountTypeNormal)
	testSeedPlayer(t, repo, "Alive", accountID)
	deletedID := testSeedPlayer(t, repo, "Doomed", accountID)

	deletion := time.Now().Unix()
	if _, err := repo.DB.Exec("UPDATE players SET deletion = ? WHERE id = ?", deletion, deletedID); err != nil {
		t.Fatalf("Error marking player deleted: %v", err)
	}

	characters, err := repo.AccountCharacters(accountID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []model.AccountCharacter{
		{Name: "Alive", Deletion: 0},
		{Name: "Doomed", Deletion: deletion},
	}, characters)
}

func TestNameGUIDLookups(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "names", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Keeper", accountID)
	if _, err := repo.DB.Exec("UPDATE players SET group_id = ? WHERE id = ?", groupIDGamemaster, playerID); err != nil {
		t.Fatalf("Error promoting player: %v", err)
	}

	name, err := repo.NameByGUID(playerID)
	assert.NoError(t, err)
	assert.Equal(t, "Keeper", name)

	name, err = repo.NameByGUID(999999)
	assert.NoError(t, err)
	assert.Empty(t, name)

	guid, err := repo.GUIDByName("Keeper")
	assert.NoError(t, err)
	assert.Equal(t, playerID, guid)

	stored, guid, specialVip, err := repo.GUIDByNameEx("keeper")
	assert.NoError(t, err)
	assert.Equal(t, "Keeper", stored, "stored spelling wins")
	assert.Equal(t, playerID, guid)
	assert.True(t, specialVip)

	formatted, err := repo.FormatPlayerName("keeper")
	assert.NoError(t, err)
	assert.Equal(t, "Keeper", formatted)

	formatted, err = repo.FormatPlayerName("Stranger")
	assert.NoError(t, err)
	assert.Equal(t, "Stranger", formatted)
}

func TestBankAndHouseLookups(t *testing.T) {
	repo := testRepository(t)
	defer testCleanup(t, repo)

	accountID := testSeedAccount(t, repo, "bank", "secret", model.AccountTypeNormal)
	playerID := testSeedPlayer(t, repo, "Banker", accountID)

	assert.NoError(t, repo.IncreaseBankBalance(playerID, 1500))
	assert.NoError(t, repo.IncreaseBankBalance(playerID, 500))

	player := testLoadedPlayer(t, repo, playerID)
	assert.Equal(t, uint64(2000), player.Balance)

	bidded, err := repo.HasBiddedOnHouse(playerID)
	assert.NoError(t, err)
	assert.False(t, bidded)

	if _, err = repo.DB.Exec("INSERT INTO houses (world_id, highest_bidder) VALUES (?, ?)", testWorldID, playerID); err != nil {
		t.Fatalf("Error seeding house: %v", err)
	}

	bidded, err = repo.HasBiddedOnHouse(playerID)
	assert.NoError(t, err)
	assert.True(t, bidded)
}
