package reco

// Mode selects whether a processing pass combines tracks from one collision
// or from two mixed collisions. The selection logic is identical in both
// modes; only output routing and QA emission differ.
type Mode int

const (
	SameEvent Mode = iota
	Mixed
)

func (m Mode) String() string {
	if m == Mixed {
		return "mixed"
	}
	return "same-event"
}

// PairCategory labels a K(892)0 pair candidate by matter/antimatter sign and
// same-event vs mixed origin.
type PairCategory int

const (
	K892Matter PairCategory = iota + 1
	K892Anti
	K892MatterMix
	K892AntiMix
)

var pairCategoryNames = map[PairCategory]string{
	K892Matter:    "k892_matter",
	K892Anti:      "k892_anti",
	K892MatterMix: "k892_matter_mix",
	K892AntiMix:   "k892_anti_mix",
}

func (c PairCategory) String() string { return pairCategoryNames[c] }

func pairCategory(anti bool, mode Mode) PairCategory {
	switch {
	case !anti && mode == SameEvent:
		return K892Matter
	case anti && mode == SameEvent:
		return K892Anti
	case !anti:
		return K892MatterMix
	default:
		return K892AntiMix
	}
}

// Category labels a K1 triplet candidate: {matter, antimatter} for the pair
// times the bachelor charge sign, times same-event vs mixed origin.
type Category int

const (
	MatterPos Category = iota + 1
	MatterNeg
	AntiPos
	AntiNeg
	MatterPosMix
	MatterNegMix
	AntiPosMix
	AntiNegMix
)

var categoryNames = map[Category]string{
	MatterPos:    "matter_pos",
	MatterNeg:    "matter_neg",
	AntiPos:      "anti_pos",
	AntiNeg:      "anti_neg",
	MatterPosMix: "matter_pos_mix",
	MatterNegMix: "matter_neg_mix",
	AntiPosMix:   "anti_pos_mix",
	AntiNegMix:   "anti_neg_mix",
}

func (c Category) String() string { return categoryNames[c] }

func tripletCategory(anti bool, bachSign int, mode Mode) Category {
	var cat Category
	switch {
	case !anti && bachSign > 0:
		cat = MatterPos
	case !anti && bachSign <= 0:
		cat = MatterNeg
	case bachSign > 0:
		cat = AntiPos
	default:
		cat = AntiNeg
	}
	if mode == Mixed {
		cat += MatterPosMix - MatterPos
	}
	return cat
}
