package pipeline

import (
	"strings"

	"github.com/arthur-debert/sdcops/pkg/errors"
)

// Action is a pipeline lifecycle action.
type Action string

const (
	ActionList   Action = "list"
	ActionStatus Action = "status"
	ActionStart  Action = "start"
	ActionStop   Action = "stop"
	ActionReset  Action = "reset"
	ActionImport Action = "import"
	ActionExport Action = "export"
	ActionDelete Action = "delete"
)

// subcommands maps each action to the CLI subcommand pair that performs it.
var subcommands = map[Action][]string{
	ActionList:   {"store", "list"},
	ActionStatus: {"manager", "status"},
	ActionStart:  {"manager", "start"},
	ActionStop:   {"manager", "stop"},
	ActionReset:  {"manager", "reset-origin"},
	ActionImport: {"store", "import"},
	ActionExport: {"store", "export"},
	ActionDelete: {"store", "delete"},
}

// Actions returns every supported action in display order.
func Actions() []Action {
	return []Action{
		ActionList,
		ActionStatus,
		ActionStart,
		ActionStop,
		ActionReset,
		ActionImport,
		ActionExport,
		ActionDelete,
	}
}

// ParseAction converts s into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown action %q", s).
			WithDetail("choices", Actions())
	}
	return a, nil
}

// Valid reports whether a is a supported action.
func (a Action) Valid() bool {
	_, ok := subcommands[a]
	return ok
}

// Subcommand returns the CLI subcommand tokens for a.
func (a Action) Subcommand() []string {
	tokens := subcommands[a]
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}

// RequiresPipeline reports whether a operates on a named pipeline.
func (a Action) RequiresPipeline() bool {
	return a != ActionList
}

func (a Action) String() string {
	return string(a)
}

// AuthType is the authentication scheme of the Data Collector UI.
type AuthType string

const (
	AuthNone   AuthType = "none"
	AuthBasic  AuthType = "basic"
	AuthDigest AuthType = "digest"
	AuthForm   AuthType = "form"
)

// ParseAuthType converts s into an AuthType.
func ParseAuthType(s string) (AuthType, error) {
	t := AuthType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown auth type %q", s).
			WithDetail("choices", []AuthType{AuthNone, AuthBasic, AuthDigest, AuthForm})
	}
	return t, nil
}

// Valid reports whether t is a supported authentication scheme.
func (t AuthType) Valid() bool {
	switch t {
	case AuthNone, AuthBasic, AuthDigest, AuthForm:
		return true
	}
	return false
}
