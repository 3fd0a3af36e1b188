package models

import (
	"fmt"
	"strings"
)

// PlayerIdentity is a Riot ID: a display name plus a tag line.
// Both parts compare case-insensitively.
type PlayerIdentity struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

func (p PlayerIdentity) String() string {
	return p.GameName + "#" + p.TagLine
}

// Key is the normalized form used for equality and lookups.
func (p PlayerIdentity) Key() string {
	return strings.ToLower(strings.TrimSpace(p.GameName)) + "#" + strings.ToLower(strings.TrimSpace(p.TagLine))
}

// Equal reports whether p and o name the same player.
func (p PlayerIdentity) Equal(o PlayerIdentity) bool {
	return p.Key() == o.Key()
}

// IsZero reports whether the identity has no name.
func (p PlayerIdentity) IsZero() bool {
	return strings.TrimSpace(p.GameName) == ""
}

// ParsePlayerIdentity parses "name#tag". The tag is required.
func ParsePlayerIdentity(s string) (PlayerIdentity, error) {
	idx := strings.LastIndex(s, "#")
	if idx <= 0 || idx == len(s)-1 {
		return PlayerIdentity{}, fmt.Errorf("player %q must look like name#tag", s)
	}
	return PlayerIdentity{
		GameName: strings.TrimSpace(s[:idx]),
		TagLine:  strings.TrimSpace(s[idx+1:]),
	}, nil
}
