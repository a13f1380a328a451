package model

// Signal is the single trade instruction relayed between the producer and
// the terminal. It is replaced as a whole on every write.
type Signal struct {
	Pair       string  `json:"pair"`
	Action     string  `json:"action"`
	EntryMin   float64 `json:"entry_min"`
	EntryMax   float64 `json:"entry_max"`
	StopLoss   float64 `json:"stop_loss"`
	TP1        float64 `json:"tp1"`
	TP2        float64 `json:"tp2"`
	TPFull     float64 `json:"tp_full"`
	Confidence float64 `json:"confidence"`
	Setup      string  `json:"setup"`
	Timestamp  string  `json:"timestamp"`
}

// Prices returns the price levels in wire order:
// entry_min, entry_max, stop_loss, tp1, tp2, tp_full.
func (s Signal) Prices() [6]float64 {
	return [6]float64{s.EntryMin, s.EntryMax, s.StopLoss, s.TP1, s.TP2, s.TPFull}
}

// WithPrices returns a copy of s carrying p in the order used by Prices.
func (s Signal) WithPrices(p [6]float64) Signal {
	s.EntryMin, s.EntryMax, s.StopLoss, s.TP1, s.TP2, s.TPFull = p[0], p[1], p[2], p[3], p[4], p[5]
	return s
}
