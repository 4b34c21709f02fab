package domain

import (
	"errors"
	"strings"
)

// VoteDirection selects which counter a vote increments.
type VoteDirection int

const (
	VoteUp VoteDirection = iota + 1
	VoteDown
)

var ErrInvalidVoteDirection = errors.New("invalid vote direction")

// ParseVoteDirection accepts "up" or "down" in any letter case.
func ParseVoteDirection(s string) (VoteDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return VoteUp, nil
	case "down":
		return VoteDown, nil
	default:
		return 0, ErrInvalidVoteDirection
	}
}

func (d VoteDirection) String() string {
	switch d {
	case VoteUp:
		return "up"
	case VoteDown:
		return "down"
	default:
		return "unknown"
	}
}
