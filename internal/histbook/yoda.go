package histbook

import (
	"fmt"
	"io"

	"github.com/gtaillepied/k1reco/internal/reco"
)

type yodaMarshaler interface {
	MarshalYODA() ([]byte, error)
}

// WriteYODA serializes the full book in YODA format, in a stable order, for
// downstream fitting tools.
func (b *Book) WriteYODA(w io.Writer) error {
	hs := []yodaMarshaler{
		b.K892Mass,
		b.K1Mass,
		b.ReconK892Pt,
		b.ReconK1Pt,
		b.TrueK1Pt,
		b.ReconK1.MassVsPt,
		b.ReconK1.MassVsMult,
	}
	for _, cat := range []reco.PairCategory{reco.K892Matter, reco.K892Anti, reco.K892MatterMix, reco.K892AntiMix} {
		hs = append(hs, b.Pairs[cat].MassVsPt, b.Pairs[cat].MassVsMult)
	}
	for cat := reco.MatterPos; cat <= reco.AntiNegMix; cat++ {
		hs = append(hs, b.Triplets[cat].MassVsPt, b.Triplets[cat].MassVsMult)
	}

	for _, h := range hs {
		raw, err := h.MarshalYODA()
		if err != nil {
			return fmt.Errorf("histbook: %w", err)
		}
		if _, err := w.Write(raw); err != nil {
			return fmt.Errorf("histbook: %w", err)
		}
	}
	return nil
}
