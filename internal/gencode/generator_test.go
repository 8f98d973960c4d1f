package gencode

import "testing"

func TestNewGens(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr bool
		wantN   int
		wantM   int
	}{
		{
			name:  "equal length rows",
			rows:  [][]int{{1, 1, 1}, {1, 0, 1}},
			wantN: 2,
			wantM: 2,
		},
		{
			name:  "short rows right-padded",
			rows:  [][]int{{1, 1}, {1, 0, 1}},
			wantN: 2,
			wantM: 2,
		},
		{
			name:    "no generators",
			rows:    [][]int{},
			wantErr: true,
		},
		{
			name:    "all generators empty",
			rows:    [][]int{{}, {}},
			wantErr: true,
		},
		{
			name:    "non-binary coefficient",
			rows:    [][]int{{1, 2, 1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGens(tt.rows)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewGens(%v) returned nil error, want error", tt.rows)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGens(%v) returned error: %v", tt.rows, err)
			}
			if g.N != tt.wantN {
				t.Errorf("N = %d, want %d", g.N, tt.wantN)
			}
			if g.M != tt.wantM {
				t.Errorf("M = %d, want %d", g.M, tt.wantM)
			}
		})
	}
}

func TestNewGens_PadsShortRows(t *testing.T) {
	g, err := NewGens([][]int{{1, 1}, {1, 0, 1}})
	if err != nil {
		t.Fatalf("NewGens returned error: %v", err)
	}
	want := []int{1, 1, 0}
	for i, v := range want {
		if g.GS[0][i] != v {
			t.Errorf("GS[0][%d] = %d, want %d", i, g.GS[0][i], v)
		}
	}
}

func TestValidateBits(t *testing.T) {
	tests := []struct {
		name    string
		bits    []int
		wantErr bool
	}{
		{"valid", []int{1, 0, 1}, false},
		{"empty", []int{}, true},
		{"non-binary", []int{1, 2, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBits(tt.bits)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBits(%v) error = %v, wantErr %v", tt.bits, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProbability(t *testing.T) {
	tests := []struct {
		name    string
		p       float64
		rng     ProbabilityRange
		wantErr bool
	}{
		{"channel mid", 0.5, ProbabilityRangeChannel, false},
		{"channel zero rejected", 0, ProbabilityRangeChannel, true},
		{"channel one rejected", 1, ProbabilityRangeChannel, true},
		{"decode at boundary accepted", 0.5, ProbabilityRangeDecode, false},
		{"decode above boundary rejected", 0.6, ProbabilityRangeDecode, true},
		{"decode zero rejected", 0, ProbabilityRangeDecode, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProbability(tt.p, tt.rng)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProbability(%v) error = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
		})
	}
}
