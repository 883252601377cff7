package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ahentschel/doppelkopf.club/internal/doko"
	"github.com/ahentschel/doppelkopf.club/internal/doko/service"
)

// roundFile is the JSON shape accepted by the record subcommand.
type roundFile struct {
	Type         string            `json:"type"`
	Solo         string            `json:"solo"`
	EyesRe       int               `json:"eyes_re"`
	Participants []participantFile `json:"participants"`
}

type participantFile struct {
	PlayerID string      `json:"player_id"`
	Team     string      `json:"team"`
	Calls    []string    `json:"calls"`
	Bonuses  []bonusFile `json:"bonuses"`
}

type bonusFile struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

var roundTypes = map[string]doko.RoundType{
	"normal":              doko.RoundTypeNormal,
	"hochzeit":            doko.RoundTypeHochzeitNormal,
	"hochzeit-still":      doko.RoundTypeHochzeitStill,
	"hochzeit-ungeklaert": doko.RoundTypeHochzeitUngeklaert,
	"solo-karo":           doko.RoundTypeSoloKaro,
	"solo-herz":           doko.RoundTypeSoloHerz,
	"solo-pik":            doko.RoundTypeSoloPik,
	"solo-kreuz":          doko.RoundTypeSoloKreuz,
	"solo-buben":          doko.RoundTypeSoloBuben,
	"solo-damen":          doko.RoundTypeSoloDamen,
	"solo-fleischlos":     doko.RoundTypeSoloFleischlos,
}

var soloKinds = map[string]doko.SoloKind{
	"":        doko.SoloNone,
	"pflicht": doko.SoloPflicht,
	"lust":    doko.SoloLust,
}

var teams = map[string]doko.Team{
	"re":     doko.TeamRe,
	"kontra": doko.TeamKontra,
}

var callTypes = map[string]doko.CallType{
	"re":      doko.CallRe,
	"kontra":  doko.CallKontra,
	"keine90": doko.CallKeine90,
	"keine60": doko.CallKeine60,
	"keine30": doko.CallKeine30,
	"schwarz": doko.CallSchwarz,
}

var bonusTypes = map[string]doko.BonusType{
	"doko":     doko.BonusDoko,
	"fuchs":    doko.BonusFuchs,
	"karlchen": doko.BonusKarlchen,
}

// parseRoundInput decodes a JSON round description into a service input.
func parseRoundInput(r io.Reader) (service.RoundInput, error) {
	var file roundFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return service.RoundInput{}, fmt.Errorf("decode round: %w", err)
	}

	roundType, ok := roundTypes[file.Type]
	if !ok {
		return service.RoundInput{}, fmt.Errorf("unknown round type %q", file.Type)
	}
	soloKind, ok := soloKinds[file.Solo]
	if !ok {
		return service.RoundInput{}, fmt.Errorf("unknown solo kind %q", file.Solo)
	}

	in := service.RoundInput{
		Type:   roundType,
		Solo:   soloKind,
		EyesRe: file.EyesRe,
	}
	for _, p := range file.Participants {
		team, ok := teams[p.Team]
		if !ok {
			return service.RoundInput{}, fmt.Errorf("unknown team %q for player %s", p.Team, p.PlayerID)
		}
		participant := doko.RoundParticipant{PlayerID: p.PlayerID, Team: team}
		for _, call := range p.Calls {
			callType, ok := callTypes[call]
			if !ok {
				return service.RoundInput{}, fmt.Errorf("unknown call %q for player %s", call, p.PlayerID)
			}
			participant.Calls = append(participant.Calls, doko.Call{PlayerID: p.PlayerID, Type: callType})
		}
		for _, bonus := range p.Bonuses {
			bonusType, ok := bonusTypes[bonus.Type]
			if !ok {
				return service.RoundInput{}, fmt.Errorf("unknown bonus %q for player %s", bonus.Type, p.PlayerID)
			}
			participant.Bonuses = append(participant.Bonuses, doko.Bonus{
				PlayerID: p.PlayerID,
				Type:     bonusType,
				Count:    bonus.Count,
			})
		}
		in.Participants = append(in.Participants, participant)
	}

	return in, nil
}
