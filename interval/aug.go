// Copyright 2018 The Cockroach Authors.
// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package interval

import "math"

// negInf stands in for the maximum prefix sum of an empty subtree. Every
// real node contributes at least its own weight, so no node's maxPrefix is
// ever negInf.
const negInf = math.MinInt64

// aug summarizes the subtree rooted at a node for maximum-prefix-sum
// queries over the subtree's in-order sequence of weighted intervals.
type aug struct {
	// sum is the total weight in the subtree.
	sum int64
	// maxPrefix is the greatest cumulative weight over all prefixes of the
	// subtree's in-order sequence.
	maxPrefix int64
	// argmax is the Start of the leftmost interval achieving maxPrefix.
	argmax int64
}

// Update recombines the node's weight with its children's summaries. The
// candidates are considered in order: a prefix ending inside the left
// subtree, the prefix ending exactly at this node, a prefix extending into
// the right subtree. A later candidate overrides only on strict
// improvement, so ties resolve to the leftmost achiever.
func (a *aug) Update(key Interval, value int64, left, right *aug) {
	var leftSum, rightSum int64
	leftMax, leftArg := int64(negInf), int64(-1)
	if left != nil {
		leftSum, leftMax, leftArg = left.sum, left.maxPrefix, left.argmax
	}
	if right != nil {
		rightSum = right.sum
	}
	a.sum = leftSum + value + rightSum

	a.maxPrefix, a.argmax = leftMax, leftArg
	atNode := leftSum + value
	if atNode > a.maxPrefix {
		a.maxPrefix, a.argmax = atNode, key.Start
	}
	if right != nil && atNode+right.maxPrefix > a.maxPrefix {
		a.maxPrefix, a.argmax = atNode+right.maxPrefix, right.argmax
	}
}
