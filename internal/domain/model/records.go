// Package model contains the wire records that flow through the pipeline.
//
// GameUpdate and PlayerStatsheet are persisted and therefore carry their
// unrecognized wire fields; GameStatsheet and TeamStatsheet exist only to
// derive the next tier's identifiers and decode plainly.
package model

import "encoding/json"

// Wire keys of the typed fields.
const (
	keyID        = "id"
	keyStatsheet = "statsheet"
	keyAwayTeam  = "awayTeam"
	keyHomeTeam  = "homeTeam"
	keyPlayerID  = "playerId"
	keyTeamID    = "teamId"
)

// GameUpdate is one game's row in a day's games response.
// Written to the corpus keyed by (day, home team).
type GameUpdate struct {
	ID        string
	Statsheet string
	AwayTeam  string
	HomeTeam  string
	Extra     Extra
}

// UnmarshalJSON decodes the typed keys and captures the rest in wire order.
func (g *GameUpdate) UnmarshalJSON(data []byte) error {
	extra, err := decodeTagged(data, func(key string, raw json.RawMessage) (bool, error) {
		switch key {
		case keyID:
			return true, json.Unmarshal(raw, &g.ID)
		case keyStatsheet:
			return true, json.Unmarshal(raw, &g.Statsheet)
		case keyAwayTeam:
			return true, json.Unmarshal(raw, &g.AwayTeam)
		case keyHomeTeam:
			return true, json.Unmarshal(raw, &g.HomeTeam)
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	g.Extra = extra
	return nil
}

// MarshalJSON writes the typed fields first, then the extras.
func (g GameUpdate) MarshalJSON() ([]byte, error) {
	return encodeTagged([]taggedField{
		{keyID, g.ID},
		{keyStatsheet, g.Statsheet},
		{keyAwayTeam, g.AwayTeam},
		{keyHomeTeam, g.HomeTeam},
	}, g.Extra)
}

// GameStatsheet links one game to its two team statsheets.
// Never persisted, so unknown fields are simply dropped.
type GameStatsheet struct {
	AwayTeamStats string `json:"awayTeamStats"`
	HomeTeamStats string `json:"homeTeamStats"`
}

// TeamStatsheet lists one team's player statsheet ids for a game.
// Never persisted.
type TeamStatsheet struct {
	PlayerStats []string `json:"playerStats"`
}

// PlayerStatsheet is one player's statistics row for a day.
// Written to the corpus keyed by (player, day).
type PlayerStatsheet struct {
	ID       string
	PlayerID string
	TeamID   string
	Extra    Extra
}

// UnmarshalJSON decodes the typed keys and captures the rest in wire order.
func (p *PlayerStatsheet) UnmarshalJSON(data []byte) error {
	extra, err := decodeTagged(data, func(key string, raw json.RawMessage) (bool, error) {
		switch key {
		case keyID:
			return true, json.Unmarshal(raw, &p.ID)
		case keyPlayerID:
			return true, json.Unmarshal(raw, &p.PlayerID)
		case keyTeamID:
			return true, json.Unmarshal(raw, &p.TeamID)
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

// MarshalJSON writes the typed fields first, then the extras.
func (p PlayerStatsheet) MarshalJSON() ([]byte, error) {
	return encodeTagged([]taggedField{
		{keyID, p.ID},
		{keyPlayerID, p.PlayerID},
		{keyTeamID, p.TeamID},
	}, p.Extra)
}
