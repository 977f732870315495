package histbook

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks is a plot.TickMarker that keeps tick labels at full precision
// instead of gonum/plot's default truncation, which matters for narrow mass
// windows.
type PreciseTicks struct {
	NSuggestedTicks int
}

// Ticks implements plot.TickMarker.
func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = 4
	}
	if max <= min {
		panic("histbook: illegal tick range")
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult := int(n / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta := float64(majorMult) * tens

	var labels []float64
	val := math.Floor(min/majorDelta) * majorDelta
	for ; val <= max; val += majorDelta {
		if val >= min {
			labels = append(labels, val)
		}
	}
	prec := int(math.Ceil(math.Log10(val)) - math.Floor(math.Log10(majorDelta)))

	var ticks []plot.Tick
	for _, l := range labels {
		v := roundPrec(l, prec)
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}

	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}
	for val = math.Floor(min/minorDelta) * minorDelta; val <= max; val += minorDelta {
		if val < min {
			continue
		}
		minor := true
		for _, t := range ticks {
			if t.Value == val {
				minor = false
			}
		}
		if minor {
			ticks = append(ticks, plot.Tick{Value: val})
		}
	}
	return ticks
}

func roundPrec(x float64, prec int) float64 {
	if x == 0 {
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	r := x * pow
	if math.IsInf(r, 0) {
		return x
	}
	return math.Round(r) / pow
}
