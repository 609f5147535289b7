package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Name        string `json:"name"`
		Environment string `json:"environment"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSecret string   `json:"jwt_secret"`
		TokenExpiry Duration `json:"jwt_expiry"`
		TokenIssuer string   `json:"jwt_issuer"`
	} `json:"auth,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"api_url"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenFile      string   `json:"token_file"`
	} `json:"adapter,omitempty"`
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

	return &StructuredConfig{
		App: App{
			Name:        jsonCfg.App.Name,
			Environment: jsonCfg.App.Environment,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSecret: jsonCfg.Auth.TokenSecret,
			TokenExpiry: jsonCfg.Auth.TokenExpiry,
			TokenIssuer: jsonCfg.Auth.TokenIssuer,
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  jsonCfg.Server.RequestTimeout,
			ShutdownTimeout: jsonCfg.Server.ShutdownTimeout,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: jsonCfg.Adapter.RequestTimeout,
			TokenFile:      jsonCfg.Adapter.TokenFile,
		},
		JSONFilePath: jsonFilePath,
	}, nil
}
