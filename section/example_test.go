// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/structures/benchtex/section"
)

const output = `
=== QU_PS ===
Blocks,Cost_per_n
1000,1.52
900,1.49
=== UR_PS ===
Blocks,Cost_per_n
1000,0.98
`

func Example() {
	r := section.NewReader(strings.NewReader(output), "out.txt")
	for r.Scan() {
		sec := r.Section()
		fmt.Printf("%s %v %d rows\n", sec.Tag, sec.Header, len(sec.Rows))
	}
	if err := r.Err(); err != nil {
		log.Fatal(err)
	}
	// Output:
	// QU_PS [Blocks Cost_per_n] 2 rows
	// UR_PS [Blocks Cost_per_n] 1 rows
}

func ExampleLookup() {
	sec, err := section.Lookup(strings.NewReader(output), "out.txt", "ur_ps")
	if err != nil {
		log.Fatal(err)
	}
	for _, rec := range sec.Records() {
		fmt.Println(rec["Blocks"], rec["Cost_per_n"])
	}
	// Output:
	// 1000 0.98
}
