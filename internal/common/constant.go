// Package common contains shared constants and sentinel errors used across
// Dream Diary components.
package common

// AccessTokenHeaderName is the HTTP header used to carry the access token
// on outbound requests (in addition to the standard Authorization bearer).
const AccessTokenHeaderName = "access_token"
