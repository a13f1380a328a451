package service

import (
	"testing"

	"barbellfx-relay/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestIsGoldPair(t *testing.T) {
	tests := []struct {
		pair string
		want bool
	}{
		{"XAUUSD", true},
		{"xauusd", true},
		{"Gold_spot", true},
		{"GOLD", true},
		{"XAUEUR", true},
		{"EURUSD", false},
		{"XAGUSD", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.pair, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGoldPair(tt.pair))
		})
	}
}

func TestNormalizePrices(t *testing.T) {
	tests := []struct {
		name       string
		in         model.Signal
		want       model.Signal
		wantScaled bool
	}{
		{
			name: "gold below threshold is rescaled, zero stays zero",
			in: model.Signal{Pair: "XAUUSD", Action: "BUY", EntryMin: 1.950, EntryMax: 1.955,
				StopLoss: 1.940, TP1: 1.970, TP2: 0, TPFull: 1.990, Confidence: 75, Setup: "s", Timestamp: "t"},
			want: model.Signal{Pair: "XAUUSD", Action: "BUY", EntryMin: 1950, EntryMax: 1955,
				StopLoss: 1940, TP1: 1970, TP2: 0, TPFull: 1990, Confidence: 75, Setup: "s", Timestamp: "t"},
			wantScaled: true,
		},
		{
			name:       "single low field rescales every field",
			in:         model.Signal{Pair: "gold", EntryMin: 2000, EntryMax: 2001, StopLoss: 1.99, TP1: 2010},
			want:       model.Signal{Pair: "gold", EntryMin: 2000000, EntryMax: 2001000, StopLoss: 1990, TP1: 2010000},
			wantScaled: true,
		},
		{
			name: "gold already in range passes through",
			in:   model.Signal{Pair: "GOLD", EntryMin: 2350, EntryMax: 2355, StopLoss: 2340, TP1: 2370, TP2: 2380, TPFull: 2400},
			want: model.Signal{Pair: "GOLD", EntryMin: 2350, EntryMax: 2355, StopLoss: 2340, TP1: 2370, TP2: 2380, TPFull: 2400},
		},
		{
			name: "gold exactly at threshold is not rescaled",
			in:   model.Signal{Pair: "XAUUSD", EntryMin: 100, EntryMax: 100},
			want: model.Signal{Pair: "XAUUSD", EntryMin: 100, EntryMax: 100},
		},
		{
			name: "gold with all zero prices passes through",
			in:   model.Signal{Pair: "XAUUSD"},
			want: model.Signal{Pair: "XAUUSD"},
		},
		{
			name: "non gold pair is verbatim",
			in:   model.Signal{Pair: "EURUSD", EntryMin: 1.08, EntryMax: 1.081, StopLoss: 1.07, TP1: 1.09},
			want: model.Signal{Pair: "EURUSD", EntryMin: 1.08, EntryMax: 1.081, StopLoss: 1.07, TP1: 1.09},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scaled := NormalizePrices(tt.in)
			assert.Equal(t, tt.wantScaled, scaled)
			assert.Equal(t, tt.want.Pair, got.Pair)
			assert.Equal(t, tt.want.Action, got.Action)
			assert.Equal(t, tt.want.Setup, got.Setup)
			assert.Equal(t, tt.want.Confidence, got.Confidence)
			want, gotPrices := tt.want.Prices(), got.Prices()
			for i := range want {
				assert.InDelta(t, want[i], gotPrices[i], 1e-9, "price %d", i)
			}
		})
	}
}
