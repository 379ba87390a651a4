package config

import (
	"errors"
	"github.com/Jeffail/gabs/v2"
)

type Config struct {
	Version  string `json:"version"`
	Dsn      string `json:"dsn"`
	Port     string `json:"port"`
	AuthType string `json:"auth_type"`

	WorldID       uint8  `json:"world_id"`
	ServerName    string `json:"server_name"`
	WorldType     string `json:"world_type"`
	Retro         bool   `json:"retro"`
	Motd          string `json:"motd"`
	WorldLocation string `json:"world_location"`
	IP            string `json:"ip"`
	GamePort      int    `json:"game_port"`
}

func Read(path string) (*Config, error) {
	parsed, err := gabs.ParseJSONFile(path)
	if err != nil {
		return nil, err
	}

	dsn, ok := parsed.Path("db.dsn").Data().(string)
	if !ok {
		return nil, errors.New("error dsn cast to string")
	}

	port, ok := parsed.Path("port").Data().(string)
	if !ok {
		return nil, errors.New("error port cast to string")
	}

	version, ok := parsed.Path("version").Data().(string)
	if !ok {
		return nil, errors.New("error version cast to string")
	}

	authType, ok := parsed.Path("auth.type").Data().(string)
	if !ok {
		return nil, errors.New("error auth type cast to string")
	}
	if authType != "password" && authType != "session" {
		return nil, errors.New("auth type must be password or session")
	}

	worldID, ok := parsed.Path("world.id").Data().(float64)
	if !ok {
		return nil, errors.New("error world id cast to number")
	}

	serverName, ok := parsed.Path("world.name").Data().(string)
	if !ok {
		return nil, errors.New("error world name cast to string")
	}

	worldType, ok := parsed.Path("world.type").Data().(string)
	if !ok {
		return nil, errors.New("error world type cast to string")
	}

	retro, ok := parsed.Path("world.retro").Data().(bool)
	if !ok {
		retro = false
	}

	motd, ok := parsed.Path("world.motd").Data().(string)
	if !ok {
		return nil, errors.New("error world motd cast to string")
	}

	location, ok := parsed.Path("world.location").Data().(string)
	if !ok {
		return nil, errors.New("error world location cast to string")
	}

	ip, ok := parsed.Path("world.ip").Data().(string)
	if !ok {
		return nil, errors.New("error world ip cast to string")
	}

	gamePort, ok := parsed.Path("world.game_port").Data().(float64)
	if !ok {
		return nil, errors.New("error world game port cast to number")
	}

	return &Config{
		Version:       version,
		Dsn:           dsn,
		Port:          port,
		AuthType:      authType,
		WorldID:       uint8(worldID),
		ServerName:    serverName,
		WorldType:     worldType,
		Retro:         retro,
		Motd:          motd,
		WorldLocation: location,
		IP:            ip,
		GamePort:      int(gamePort),
	}, nil
}
