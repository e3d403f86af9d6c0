package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

func sendSettings(t *testing.T, m SettingsModel, keys ...string) SettingsModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		model, ok := next.(SettingsModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = model
	}
	return m
}

func TestSettingsEditing(t *testing.T) {
	var saved *config.BlocksConfig
	save := func(cfg config.BlocksConfig) error {
		saved = &cfg
		return nil
	}
	m := NewSettingsModel(config.DefaultBlocksConfig(), save, ThemeFor("dark"), 80, 24)

	m = sendSettings(t, m,
		"right", "right", // size 12
		"down", "space", // uniform on
		"down", "right", "L", // red 100 -> 106
		"down", "left", // green 200 -> 195
		"down", "H", // blue 150 -> 149
		"down", "right", // theme light
		"enter",
	)

	if !m.Saved() || saved == nil {
		t.Fatal("expected config to be saved")
	}
	expected := config.BlocksConfig{
		Board:  config.BoardConfig{Size: 12},
		Colors: config.ColorsConfig{Uniform: true, Block: []int{106, 195, 149}},
		Theme:  config.ThemeLight,
	}
	if diff := cmp.Diff(expected, *saved); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsClamp(t *testing.T) {
	m := NewSettingsModel(config.DefaultBlocksConfig(), nil, ThemeFor("dark"), 80, 24)

	for i := 0; i < 20; i++ {
		m = sendSettings(t, m, "right")
	}
	if m.Config().Board.Size != config.MaxBoardSize {
		t.Errorf("expected size %d, got %d", config.MaxBoardSize, m.Config().Board.Size)
	}
	for i := 0; i < 20; i++ {
		m = sendSettings(t, m, "left")
	}
	if m.Config().Board.Size != config.MinBoardSize {
		t.Errorf("expected size %d, got %d", config.MinBoardSize, m.Config().Board.Size)
	}

	m = sendSettings(t, m, "down", "down") // red
	for i := 0; i < 40; i++ {
		m = sendSettings(t, m, "right")
	}
	if got := m.Config().Colors.Block[0]; got != 255 {
		t.Errorf("expected red 255, got %d", got)
	}
}

func TestSettingsCancelKeepsOriginal(t *testing.T) {
	orig := config.DefaultBlocksConfig()
	m := NewSettingsModel(orig, nil, ThemeFor("dark"), 80, 24)

	m = sendSettings(t, m, "down", "down", "right", "esc")

	if m.Saved() {
		t.Error("cancel should not save")
	}
	if diff := cmp.Diff(config.DefaultBlocksConfig(), m.Config()); diff != "" {
		t.Errorf("cancel should restore the original (-want +got):\n%s", diff)
	}
	if orig.Colors.Block[0] != 100 {
		t.Errorf("caller's config was modified: %v", orig.Colors.Block)
	}
}

func TestSettingsSaveErrors(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	cfg.Theme = "neon"
	m := NewSettingsModel(cfg, nil, ThemeFor("dark"), 80, 24)

	m = sendSettings(t, m, "enter")
	var verr *config.ValidationError
	if !errors.As(m.err, &verr) || verr.Field != "theme" {
		t.Errorf("expected theme validation error, got %v", m.err)
	}
	if m.Saved() {
		t.Error("invalid config should not be saved")
	}

	failing := func(config.BlocksConfig) error { return errors.New("disk full") }
	m = NewSettingsModel(config.DefaultBlocksConfig(), failing, ThemeFor("dark"), 80, 24)
	m = sendSettings(t, m, "enter")
	if m.err == nil || m.Saved() {
		t.Error("save failure should be reported")
	}
}
