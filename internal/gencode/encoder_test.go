package gencode

import "testing"

func bitsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		x    []int
		rows [][]int
		want []int
	}{
		{
			name: "rate 1/3 memory 2",
			x:    []int{1, 1, 1, 0},
			rows: [][]int{{1, 1, 1}, {1, 1, 0}, {1, 0, 1}},
			want: []int{1, 1, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0},
		},
		{
			name: "rate 1/3 memory 2 second pattern",
			x:    []int{1, 0, 1, 0},
			rows: [][]int{{1, 1, 1}, {1, 1, 0}, {1, 0, 1}},
			want: []int{1, 1, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGens(tt.rows)
			if err != nil {
				t.Fatalf("NewGens returned error: %v", err)
			}
			got := Encode(tt.x, g)
			if !bitsEqual(got, tt.want) {
				t.Errorf("Encode(%v, G) = %v, want %v", tt.x, got, tt.want)
			}
			if len(got) != g.N*(len(tt.x)+g.M) {
				t.Errorf("len(Encode(...)) = %d, want %d", len(got), g.N*(len(tt.x)+g.M))
			}
		})
	}
}

func TestEncode_InnerNoTail(t *testing.T) {
	g, err := NewGens([][]int{{1, 1, 1}, {1, 0, 1}})
	if err != nil {
		t.Fatalf("NewGens returned error: %v", err)
	}
	x := []int{1, 0, 1, 1}

	var got []int
	for i := range x {
		got = append(got, EncodeStep(x, g, i)...)
	}

	want := []int{1, 1, 1, 0, 0, 0, 0, 1}
	if !bitsEqual(got, want) {
		t.Errorf("inner encode = %v, want %v", got, want)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	g, err := NewGens([][]int{{1, 1, 1}, {1, 0, 1}})
	if err != nil {
		t.Fatalf("NewGens returned error: %v", err)
	}
	x := []int{1, 0, 1, 1, 0, 0, 1}

	a := Encode(x, g)
	b := Encode(x, g)
	if !bitsEqual(a, b) {
		t.Errorf("Encode is not deterministic: %v != %v", a, b)
	}
}
