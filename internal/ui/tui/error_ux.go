package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "savestore") {
				return "Saved game not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindMalformedSave:
			return "Saved game is damaged"

		case domain.KindInvalidIndex:
			return "Out of range"

		case domain.KindFieldAlreadySet:
			return "That field is already filled"

		case domain.KindInvalidField:
			return "That field cannot be scored directly"

		case domain.KindTurnState:
			return "Not allowed right now"

		case domain.KindInvalidConfig:
			if errors.Is(err, domain.ErrInvalidPlayers) {
				return "Enter 2 to 10 unique, non-empty names"
			}

			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return crashToast
		}
	}

	if errors.Is(err, domain.ErrInvalidPlayers) {
		return "Enter 2 to 10 unique, non-empty names"
	}
	if errors.Is(err, domain.ErrTurnState) {
		return "Not allowed right now"
	}
	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return crashToast
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
