package slider

import "testing"

func coverage(t *testing.T, tf TrackFill) {
	t.Helper()
	pieces := append([]Range{tf.Fill}, tf.Track...)

	var total float32
	for _, p := range pieces {
		if p.Start < 0 || p.End > 1 || p.Start > p.End {
			t.Errorf("invalid range %+v", p)
		}
		total += p.Len()
	}
	if !approx(total, 1, 1e-6) {
		t.Errorf("ranges %+v cover %v, want 1", pieces, total)
	}

	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			a, b := pieces[i], pieces[j]
			overlap := min(a.End, b.End) - max(a.Start, b.Start)
			if overlap > 1e-6 {
				t.Errorf("ranges %+v and %+v overlap by %v", a, b, overlap)
			}
		}
	}
}

func TestSplitTrackFill(t *testing.T) {
	tests := []struct {
		name   string
		value  float32
		policy FillType
		zero   float32
		fill   Range
		tracks int
	}{
		{"minimum", 0.3, FillMinimum, 0.5, Range{0, 0.3}, 1},
		{"maximum", 0.3, FillMaximum, 0.5, Range{0.3, 1}, 1},
		{"zero below", 0.2, FillZero, 0.5, Range{0.2, 0.5}, 2},
		{"zero above", 0.9, FillZero, 0.5, Range{0.5, 0.9}, 2},
		{"zero at start", 0.4, FillZero, 0, Range{0, 0.4}, 1},
		{"full minimum", 1, FillMinimum, 0, Range{0, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := SplitTrackFill(tt.value, tt.policy, tt.zero)
			if tf.Fill != tt.fill {
				t.Errorf("Fill = %+v, want %+v", tf.Fill, tt.fill)
			}
			if len(tf.Track) != tt.tracks {
				t.Errorf("Track has %d ranges, want %d", len(tf.Track), tt.tracks)
			}
			coverage(t, tf)
			coverage(t, tf.Mirror())
		})
	}
}

func TestRangeMirror(t *testing.T) {
	r := Range{0.1, 0.4}
	if got := r.Mirror(); !approx(got.Start, 0.6, 1e-6) || !approx(got.End, 0.9, 1e-6) {
		t.Errorf("Mirror() = %+v, want {0.6 0.9}", got)
	}
}

func TestFillTypeText(t *testing.T) {
	for _, f := range []FillType{FillMinimum, FillZero, FillMaximum} {
		text, _ := f.MarshalText()
		var back FillType
		if err := back.UnmarshalText(text); err != nil || back != f {
			t.Errorf("FillType %v text round trip = %v, %v", f, back, err)
		}
	}
	var f FillType
	if err := f.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("expected error for unknown fill type")
	}
}
