package main

import "testing"

func TestRuntimeConfigTickRate(t *testing.T) {
	defer func(fps int) { flagFPS = fps }(flagFPS)

	tests := []struct {
		fps     int
		wantErr bool
	}{
		{60, false},
		{1, false},
		{0, true},
		{-30, true},
	}

	for _, tc := range tests {
		flagFPS = tc.fps
		cfg, err := runtimeConfig()
		if (err != nil) != tc.wantErr {
			t.Errorf("runtimeConfig() with --fps %d error = %v, wantErr %v", tc.fps, err, tc.wantErr)
			continue
		}
		if err == nil && cfg.TickRate != tc.fps {
			t.Errorf("TickRate = %d, expected %d", cfg.TickRate, tc.fps)
		}
	}
}
