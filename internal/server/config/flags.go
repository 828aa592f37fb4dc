package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-l string   HTTP bind address (e.g., ":8080")
//	-s string   JWT secret
//	-t int      access token validity, minutes
//	-o string   organization name for document titles
//	-F string   TrueType font path
//	-k string   catalog source: file, s3 or postgres
//	-f string   catalog file path
//	-w bool     watch the catalog file for changes
//	-i string   catalog file to publish to PostgreSQL at startup
//	-d string   PostgreSQL DSN
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-n string   S3 catalog object key
//	-L string   log level
//
// Flags the set does not define are dropped by flagx.ParseKnown, so the -c
// config flag and any other component's flags pass through untouched.
// Duration flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port to run server")
	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.Organization, "o", config.Organization, "organization name")
	fs.StringVar(&config.FontPath, "F", config.FontPath, "TrueType font path")
	fs.StringVar(&config.CatalogSource, "k", config.CatalogSource, "catalog source (file, s3, postgres)")
	fs.StringVar(&config.CatalogPath, "f", config.CatalogPath, "catalog file path")
	fs.BoolVar(&config.WatchCatalog, "w", config.WatchCatalog, "watch catalog file")
	fs.StringVar(&config.CatalogImportPath, "i", config.CatalogImportPath, "catalog file to publish to database")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3CatalogKey, "n", config.S3CatalogKey, "S3 catalog object key")
	fs.StringVar(&config.LogLevel, "L", config.LogLevel, "log level")

	if err := flagx.ParseKnown(fs, os.Args[1:]); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
