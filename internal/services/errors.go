package services

import "errors"

// Error kinds surfaced directly to callers; handlers map them to
// HTTP statuses and the bot maps them to chat replies.
var (
	ErrRoundActive     = errors.New("a round is already active in this chat")
	ErrNoActiveRound   = errors.New("no active round in this chat")
	ErrGameDisabled    = errors.New("game is disabled for this group")
	ErrBadTeamName     = errors.New("team name is empty after normalization")
	ErrTeamNameTaken   = errors.New("team name already taken")
	ErrAlreadyOnTeam   = errors.New("user is already on a team")
	ErrTeamNotFound    = errors.New("team not found")
	ErrNotTeamMember   = errors.New("user is not on a team")
	ErrTournamentOn    = errors.New("tournament already active")
	ErrTournamentOff   = errors.New("no active tournament")
	ErrBadRewards      = errors.New("rewards must satisfy first >= second >= third > 0")
	ErrBadInterval     = errors.New("interval must be between 1 and 1440 minutes")
	ErrBadTimeout      = errors.New("timeout must be between 10 and 600 seconds")
	ErrUnknownType     = errors.New("unknown round type")
	ErrDailyAlreadyRan = errors.New("daily round already started today")
	ErrNotGroupAdmin   = errors.New("only group admins can do this")
)
