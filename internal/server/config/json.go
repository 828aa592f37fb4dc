package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/flagx"
	"github.com/dmitrijs2005/grievdesk/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
//
// Pointer fields tell "absent" from "false".
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	Organization                string         `json:"organization"`
	FontPath                    string         `json:"font_path"`
	CatalogSource               string         `json:"catalog_source"`
	CatalogPath                 string         `json:"catalog_path"`
	WatchCatalog                *bool          `json:"watch_catalog"`
	CatalogImportPath           string         `json:"catalog_import_path"`
	DatabaseDSN                 string         `json:"database_dsn"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	S3CatalogKey                string         `json:"s3_catalog_key"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags. If it is
// not set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
//
// Only keys present in the file override the current values.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	}
	setString(&config.Organization, c.Organization)
	setString(&config.FontPath, c.FontPath)
	setString(&config.CatalogSource, c.CatalogSource)
	setString(&config.CatalogPath, c.CatalogPath)
	if c.WatchCatalog != nil {
		config.WatchCatalog = *c.WatchCatalog
	}
	setString(&config.CatalogImportPath, c.CatalogImportPath)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3CatalogKey, c.S3CatalogKey)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
