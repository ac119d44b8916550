// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Default section keys.
const (
	KeySignificance  = "significance"
	KeyCheckName     = "check_name"
	KeyLogger        = "logger"
	KeyStopRunOnFail = "stop_run_on_fail"
	KeySkipFile      = "skip_file"
)

// ErrInvalidSettings is returned for a malformed default section.
var ErrInvalidSettings = errors.New("invalid default section")

// Settings is the typed view of a file's default section.
type Settings struct {
	Significance  int
	CheckName     string
	Logger        string
	StopRunOnFail bool
	SkipFile      bool
}

// DefaultSettings returns the values used for every key a file leaves out.
func DefaultSettings() Settings {
	return Settings{
		Significance:  2,
		CheckName:     "General Checks",
		Logger:        "ResultsFunFactory",
		StopRunOnFail: false,
		SkipFile:      false,
	}
}

// ResolveSettings applies raw on top of DefaultSettings. Unknown keys and
// wrongly typed values are reported together.
func ResolveSettings(raw map[string]any) (Settings, error) {
	s := DefaultSettings()
	var errs []string

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := raw[key]
		var err error
		switch key {
		case KeySignificance:
			s.Significance, err = asInt(val)
			if err == nil && s.Significance < 0 {
				err = fmt.Errorf("must not be negative, got %d", s.Significance)
			}
		case KeyCheckName:
			s.CheckName, err = asString(val)
		case KeyLogger:
			s.Logger, err = asString(val)
			if err == nil && (s.Logger == "" || strings.ContainsAny(s.Logger, `/\`)) {
				err = fmt.Errorf("must be a non-empty name without path separators, got %q", s.Logger)
			}
		case KeyStopRunOnFail:
			s.StopRunOnFail, err = asBool(val)
		case KeySkipFile:
			s.SkipFile, err = asBool(val)
		default:
			err = errors.New("unknown key")
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}

	if len(errs) > 0 {
		return Settings{}, fmt.Errorf("%w:\n- %s", ErrInvalidSettings, strings.Join(errs, "\n- "))
	}
	return s, nil
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

func asBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected a bool, got %T", v)
	}
	return b, nil
}
