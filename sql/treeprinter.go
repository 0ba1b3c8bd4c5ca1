// Copyright 2026 Vireo Data, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"fmt"
	"strings"
)

// TreePrinter renders plan trees for String methods and debug output. Write
// the node line first, then its already-rendered children.
type TreePrinter struct {
	node     string
	children []string
}

// NewTreePrinter creates a new tree printer.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// WriteNode writes the representation of the node itself.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) {
	p.node = fmt.Sprintf(format, args...)
}

// WriteChildren writes the rendered children of the node. Children may be
// multi-line subtrees produced by nested printers.
func (p *TreePrinter) WriteChildren(children ...string) {
	p.children = append(p.children, children...)
}

func (p *TreePrinter) String() string {
	var sb strings.Builder
	sb.WriteString(p.node)
	sb.WriteRune('\n')
	for i, child := range p.children {
		branch, indent := " ├─ ", " │   "
		if i == len(p.children)-1 {
			branch, indent = " └─ ", "     "
		}
		lines := strings.Split(strings.TrimRight(child, "\n"), "\n")
		for j, line := range lines {
			if j == 0 {
				sb.WriteString(branch)
			} else {
				sb.WriteString(indent)
			}
			sb.WriteString(line)
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
