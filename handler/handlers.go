package handler

import (
	"emberfall_backend/model"
	"emberfall_backend/service"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type GameHandler struct {
	Auth     service.AuthServiceInterface
	Players  service.PlayerServiceInterface
	Worlds   service.WorldServiceInterface
	VIP      service.VIPServiceInterface
	Presence service.PresenceServiceInterface
	Logger   service.LoggerInterface

	// SessionMode disables token issuance on login; the token was already
	// established out of band.
	SessionMode bool
}

func New(auth service.AuthServiceInterface, players service.PlayerServiceInterface, worlds service.WorldServiceInterface, vip service.VIPServiceInterface, presence service.PresenceServiceInterface, logger service.LoggerInterface, sessionMode bool) *GameHandler {
	return &GameHandler{
		Auth:        auth,
		Players:     players,
		Worlds:      worlds,
		VIP:         vip,
		Presence:    presence,
		Logger:      logger,
		SessionMode: sessionMode,
	}
}

func (h *GameHandler) Login(ctx *fiber.Ctx) error {
	br := model.BaseResponse{
		Error:   true,
		Message: "Login or character unavailable.",
	}

	var loginData model.LoginAPI
	if err := ctx.BodyParser(&loginData); err != nil {
		h.Logger.Exception(fmt.Sprintf("Login(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(br)
	}

	if err := loginData.Validate(); err != nil {
		h.Logger.Warning(fmt.Sprintf("Login(): error validating login data: %v", err))
		br.Message = err.Error()
		return ctx.Status(http.StatusUnprocessableEntity).JSON(br)
	}

	accountID, ok := h.Auth.GameWorldAuthentication(loginData.Account, loginData.Password, loginData.Character, loginData.OldProtocol)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(br)
	}

	characters, err := h.Auth.Characters(accountID)
	if err != nil {
		h.Logger.Exception(fmt.Sprintf("Login(): error fetching characters for account %d: %v", accountID, err))
		return ctx.Status(http.StatusInternalServerError).JSON(br)
	}

	response := model.LoginResponseAPI{
		AccountID:   accountID,
		AccountType: h.Auth.GetAccountType(accountID),
		Characters:  characters,
		Worlds:      h.Worlds.LoadWorlds(),
	}

	if !h.SessionMode {
		token, errToken := h.Auth.CreateSession(accountID)
		if errToken != nil {
			h.Logger.Exception(fmt.Sprintf("Login(): error creating session for account %d: %v", accountID, errToken))
			return ctx.Status(http.StatusInternalServerError).JSON(br)
		}
		response.SessionToken = token
	}

	return ctx.Status(http.StatusOK).JSON(response)
}

func (h *GameHandler) ServerInfo(ctx *fiber.Ctx) error {
	return ctx.Status(http.StatusOK).JSON(model.ServerInfoAPI{
		Worlds:        h.Worlds.LoadWorlds(),
		PlayersOnline: h.Presence.OnlineCount(),
	})
}

func (h *GameHandler) CharacterInfo(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if name == "" {
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: "character name cannot be empty"})
	}

	var player model.Player
	if !h.Players.LoadPlayerByName(&player, name, false) {
		return ctx.Status(http.StatusNotFound).JSON(model.BaseResponse{Error: true, Message: "character not found"})
	}

	return ctx.Status(http.StatusOK).JSON(model.CharacterInfoAPI{
		ID:         player.ID,
		Name:       player.Name,
		Level:      player.Level,
		Vocation:   player.Vocation,
		Sex:        player.Sex,
		TownID:     player.TownID,
		LastLogin:  player.LastLogin,
		LastLogout: player.LastLogout,
		Online:     h.Presence.IsOnline(player.ID),
	})
}

func (h *GameHandler) PresenceUpdate(ctx *fiber.Ctx) error {
	var data model.PresenceAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("PresenceUpdate(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: "invalid request body"})
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: err.Error()})
	}

	h.Presence.SetOnline(data.PlayerID, data.Online)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) VIPList(ctx *fiber.Ctx) error {
	accountID, err := ctx.ParamsInt("accountId")
	if err != nil || accountID <= 0 {
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: "invalid account id"})
	}
	return ctx.Status(http.StatusOK).JSON(h.VIP.GetVIPEntries(uint32(accountID)))
}

func (h *GameHandler) VIPAdd(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPEntry(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.AddVIPEntry(data.AccountID, data.PlayerID, data.Description, data.Icon, data.Notify)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) VIPEdit(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPEntry(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.EditVIPEntry(data.AccountID, data.PlayerID, data.Description, data.Icon, data.Notify)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) VIPRemove(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPEntry(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.RemoveVIPEntry(data.AccountID, data.PlayerID)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) parseVIPEntry(ctx *fiber.Ctx) (*model.VIPEntryAPI, error) {
	var data model.VIPEntryAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("parseVIPEntry(): error parsing body request: %v", err))
		return nil, ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: "invalid request body"})
	}
	if err := data.Validate(); err != nil {
		return nil, ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: err.Error()})
	}
	return &data, nil
}

func (h *GameHandler) VIPGroupList(ctx *fiber.Ctx) error {
	accountID, err := ctx.ParamsInt("accountId")
	if err != nil || accountID <= 0 {
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: "invalid account id"})
	}
	return ctx.Status(http.StatusOK).JSON(h.VIP.GetVIPGroupEntries(uint32(accountID), 0))
}

func (h *GameHandler) VIPGroupAdd(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPGroup(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.AddVIPGroupEntry(data.GroupID, data.AccountID, data.Name, data.Customizable)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) VIPGroupEdit(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPGroup(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.EditVIPGroupEntry(data.GroupID, data.AccountID, data.Name, data.Customizable)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) VIPGroupRemove(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPGroup(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.RemoveVIPGroupEntry(data.GroupID, data.AccountID)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) VIPGroupAddMember(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPGroup(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.AddGuidVIPGroupEntry(data.GroupID, data.AccountID, data.PlayerID)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) VIPGroupRemoveMember(ctx *fiber.Ctx) error {
	data, errResp := h.parseVIPGroup(ctx)
	if data == nil {
		return errResp
	}
	h.VIP.RemoveGuidVIPGroupEntry(data.AccountID, data.PlayerID)
	return ctx.Status(http.StatusOK).JSON(model.BaseResponse{})
}

func (h *GameHandler) parseVIPGroup(ctx *fiber.Ctx) (*model.VIPGroupAPI, error) {
	var data model.VIPGroupAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("parseVIPGroup(): error parsing body request: %v", err))
		return nil, ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: "invalid request body"})
	}
	if err := data.Validate(); err != nil {
		return nil, ctx.Status(http.StatusUnprocessableEntity).JSON(model.BaseResponse{Error: true, Message: err.Error()})
	}
	return &data, nil
}
