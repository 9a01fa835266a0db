// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterBytes yields each address and byte of an image, in address order.
func IterBytes(image []uint8) iter.Seq2[int, uint8] {
	return func(yield func(int, uint8) bool) {
		for addr, value := range image {
			if !yield(addr, value) {
				return
			}
		}
	}
}
