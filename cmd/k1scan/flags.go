package main

import (
	"fmt"
	"strconv"
)

// floatList is a repeatable command-line flag collecting float64 values,
// used to override configured bin-edge lists without editing the config
// file. The first Set discards any default contents.
type floatList struct {
	vals []float64
	set  bool
}

func (f *floatList) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if !f.set {
		f.set = true
		f.vals = nil
	}
	f.vals = append(f.vals, v)
	return nil
}

func (f *floatList) String() string {
	return fmt.Sprint(f.vals)
}
