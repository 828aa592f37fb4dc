// Package common contains shared constants and sentinel errors used across
// grievdesk components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DocumentDateLayout is the date layout printed on generated documents (DD-MM-YYYY).
const DocumentDateLayout = "02-01-2006"
