package team

import "errors"

var errTeamFull = errors.New("team-full")
