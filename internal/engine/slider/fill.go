package slider

// Range is a closed sub-range of [0, 1].
type Range struct {
	Start, End float32
}

// Len returns End - Start.
func (r Range) Len() float32 {
	return r.End - r.Start
}

// Mirror reflects the range across 0.5.
func (r Range) Mirror() Range {
	return Range{Start: 1 - r.End, End: 1 - r.Start}
}

// TrackFill splits [0, 1] into the filled part and the remaining track.
// Track holds one or two ranges; empty pieces are omitted. Pieces touch
// only at their endpoints.
type TrackFill struct {
	Fill  Range
	Track []Range
}

// SplitTrackFill computes the fill and track ranges for value under the
// given fill policy. zero is the normalized position of the range's zero
// and is only used by FillZero.
func SplitTrackFill(value float32, policy FillType, zero float32) TrackFill {
	var fill Range

	switch policy {
	case FillMinimum:
		fill = Range{0, value}
	case FillMaximum:
		fill = Range{value, 1}
	default:
		fill = Range{min(zero, value), max(zero, value)}
	}

	tf := TrackFill{Fill: fill}
	if fill.Start > 0 {
		tf.Track = append(tf.Track, Range{0, fill.Start})
	}
	if fill.End < 1 {
		tf.Track = append(tf.Track, Range{fill.End, 1})
	}
	return tf
}

// Mirror reflects every range.
func (tf TrackFill) Mirror() TrackFill {
	out := TrackFill{Fill: tf.Fill.Mirror()}
	for i := len(tf.Track) - 1; i >= 0; i-- {
		out.Track = append(out.Track, tf.Track[i].Mirror())
	}
	return out
}
