package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field tags and a
// string-friendly [Duration] type so operators can write "24h" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Identity struct {
		Table       string `json:"table"`
		UserType    string `json:"user_type"`
		QREndpoints *bool  `json:"qr_endpoints"`
	} `json:"identity,omitempty"`

	Storage struct {
		DB struct {
			Host            string   `json:"host"`
			Port            int      `json:"port"`
			User            string   `json:"user"`
			Password        string   `json:"password"`
			Name            string   `json:"name"`
			SSLMode         string   `json:"ssl_mode"`
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Identity: Identity{
			Table:       jsonCfg.Identity.Table,
			UserType:    jsonCfg.Identity.UserType,
			QREndpoints: jsonCfg.Identity.QREndpoints,
		},
		Storage: Storage{
			DB: DB{
				Host:            jsonCfg.Storage.DB.Host,
				Port:            jsonCfg.Storage.DB.Port,
				User:            jsonCfg.Storage.DB.User,
				Password:        jsonCfg.Storage.DB.Password,
				Name:            jsonCfg.Storage.DB.Name,
				SSLMode:         jsonCfg.Storage.DB.SSLMode,
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
