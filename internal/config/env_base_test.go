package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/favonia/cronkit/internal/config"
	"github.com/favonia/cronkit/internal/mocks"
	"github.com/favonia/cronkit/internal/output"
	"github.com/favonia/cronkit/internal/pp"
)

const keyPrefix = "TEST-5E0C2B7D41A8F3C96D1E-"

func set(t *testing.T, key string, set bool, val string) {
	t.Helper()

	if set {
		t.Setenv(key, val)
	} else {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

//nolint:paralleltest // environment vars are global
func TestGetenv(t *testing.T) {
	key := keyPrefix + "VAR"
	for name, tc := range map[string]struct {
		set      bool
		val      string
		expected string
	}{
		"nil":    {false, "", ""},
		"empty":  {true, "", ""},
		"simple": {true, "VAL", "VAL"},
		"space1": {true, "    VAL     ", "VAL"},
		"space2": {true, "     VAL    VAL2 ", "VAL    VAL2"},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			require.Equal(t, tc.expected, config.Getenv(key))
		})
	}
}

//nolint:paralleltest // environment vars are global
func TestReadFormat(t *testing.T) {
	key := keyPrefix + "OUTPUT"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      output.Format
		newField      output.Format
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil":   {false, "", output.JSON, output.JSON, true, nil},
		"empty": {true, "  ", output.Text, output.Text, true, nil},
		"yaml":  {true, " YAML ", output.Text, output.YAML, true, nil},
		"json":  {true, "json", output.Text, output.JSON, true, nil},
		"illform": {
			true, "xml", output.Text, output.Text, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s (%q) is not a supported output format: %v", key, "xml", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ok := config.ReadFormat(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:paralleltest // environment vars are global
func TestReadTime(t *testing.T) {
	key := keyPrefix + "NOW"
	old := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for name, tc := range map[string]struct {
		set           bool
		val           string
		newField      time.Time
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil":   {false, "", old, true, nil},
		"empty": {true, " ", old, true, nil},
		"utc":   {true, "2024-03-15T10:30:00Z", time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC), true, nil},
		"offset": {
			true, " 2024-03-15T10:30:00+09:00 ",
			time.Date(2024, time.March, 15, 1, 30, 0, 0, time.UTC), true, nil,
		},
		"illform": {
			true, "yesterday", old, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s (%q) is not an RFC 3339 timestamp: %v", key, "yesterday", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := old
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ok := config.ReadTime(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)
			require.True(t, tc.newField.Equal(field), "%v != %v", tc.newField, field)
		})
	}
}
