// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern_test

import (
	"fmt"

	"github.com/go-intern/intern"
)

func Example() {
	pool := intern.NewStringPool()

	a := pool.Get("example.com")
	b := pool.Get("example.com")
	fmt.Println("deduplicated:", a.Equal(b), pool.Len())

	// Handles from another pool only ever compare by value.
	other := intern.NewStringPool()
	c := other.Get("example.com")
	fmt.Println("cross-pool:", a.SamePool(c), a.Equal(c))

	c.Release()
	b.Release()
	a.Release()
	fmt.Println("after release:", pool.Len())

	// Output:
	// deduplicated: true 1
	// cross-pool: false true
	// after release: 0
}
