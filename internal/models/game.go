package models

import (
	"fmt"
	"strings"
)

// IconCDN is the base URL of application icons.
const IconCDN = "https://cdn.discordapp.com/app-icons"

// Game identifies a title the host can impersonate.
type Game struct {
	AppID          string
	Name           string
	RelPath        string
	ExecutableName string
	IconHash       string
}

// IconURL returns the 64px icon URL for the game, or "" without a hash.
func (g Game) IconURL() string {
	return IconURL(g.AppID, g.IconHash)
}

// IconURL builds the CDN icon URL for an application icon hash.
func IconURL(appID, hash string) string {
	if appID == "" || hash == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s.png?size=64", IconCDN, appID, hash)
}

// SanitizeExecutableName strips characters that are invalid in Windows file
// names. Path separators are kept so nested names like "x64/game.exe" work.
func SanitizeExecutableName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, name)
}
