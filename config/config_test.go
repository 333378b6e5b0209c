package config

import "testing"

func TestDefaultIsUsable(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" {
		t.Fatalf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Table.RoundWind != "east" || cfg.Table.SeatWind != "east" {
		t.Fatalf("default table winds = %+v", cfg.Table)
	}
}
