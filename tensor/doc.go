// Copyright 2026 TensrNEXT Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor metadata model for TensrNEXT.
//
// # Overview
//
// A tensor here is described, not computed: the package models shape,
// strides, buffer offset and contiguity, and derives new descriptions for
// zero-copy view operations. This package provides:
//   - Index arithmetic (strides, element counts, flat/multi index conversion)
//   - Immutable view metadata in two representations (Metadata, FixedMeta)
//   - View derivation: Slice, Reshape, Permute, Transpose, Squeeze, Unsqueeze
//   - A generic storage type (Tensor[T]) pairing metadata with a buffer
//
// # Basic Usage
//
//	import "github.com/Eren64bit/TensrNEXT/tensor"
//
//	func main() {
//	    m := tensor.NewMetadata(tensor.Shape{2, 3, 4}, 0)
//
//	    // Derive views without touching any element buffer
//	    v, err := tensor.Slice(m, []int{0, 1, 0}, []int{2, 3, 4})
//	    t, err := tensor.Transpose(v)
//	}
//
// # Views
//
// Every view operation is a pure function: it validates its arguments,
// returns fresh Metadata, and never mutates its input. A derived view
// addresses the same underlying elements as its source; slicing moves the
// view's origin forward in the buffer, permuting reorders axes in place,
// and squeeze/unsqueeze add or remove extent-1 axes while preserving
// element addressing.
//
// # Contiguity
//
// A view is contiguous when its strides equal the canonical row-major
// strides for its shape. The flag is recomputed from shape and strides at
// the end of every derivation, so a transpose yields IsContiguous() == false
// and transposing back restores true.
//
// # Metadata Representations
//
// Metadata is slice-backed and handles any rank. FixedMeta stores its
// dimensions inline with capacity MaxRank and avoids heap allocation, for
// callers on a hot path with a known small rank. Both satisfy the read-only
// Meta interface, and every view operation accepts either.
package tensor
