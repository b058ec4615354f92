// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ccg

import (
	"strconv"
	"strings"

	"github.com/abelloun/cyk/category"
)

// Cell holds the judgements derived for one span of the input, in insertion order.
// Judgements with equal keys are merged as they are added.
type Cell struct {
	judgements []*Judgement
	index      map[string]int
}

func newCell() *Cell { return &Cell{index: make(map[string]int)} }

// Judgements returns the judgements of the cell. The returned slice must not be modified.
func (c *Cell) Judgements() []*Judgement {
	if c == nil {
		return nil
	}
	return c.judgements
}

// Len returns the number of distinct judgements in the cell.
func (c *Cell) Len() int {
	if c == nil {
		return 0
	}
	return len(c.judgements)
}

// add inserts j, merging its forest into an existing judgement with the same key.
func (c *Cell) add(j *Judgement) {
	key := j.Key()
	if i, ok := c.index[key]; ok {
		c.judgements[i] = c.judgements[i].merge(j)
		return
	}
	c.index[key] = len(c.judgements)
	c.judgements = append(c.judgements, j)
}

// Chart is the CKY table for a token sequence: cell (start, end) holds every judgement
// derivable for tokens[start:end].
type Chart struct {
	tokens []string
	// cells[start][width-1]
	cells [][]*Cell
}

func newChart(tokens []string) *Chart {
	n := len(tokens)
	cells := make([][]*Cell, n)
	for start := range cells {
		cells[start] = make([]*Cell, n-start)
		for w := range cells[start] {
			cells[start][w] = newCell()
		}
	}
	return &Chart{tokens: tokens, cells: cells}
}

// Len returns the number of tokens covered by the chart.
func (c *Chart) Len() int { return len(c.tokens) }

// Tokens returns the tokens covered by the chart.
func (c *Chart) Tokens() []string { return c.tokens }

// Cell returns the cell for the span [start, end), or nil if the span is out of range.
func (c *Chart) Cell(start, end int) *Cell {
	if start < 0 || end > len(c.tokens) || start >= end {
		return nil
	}
	return c.cells[start][end-start-1]
}

// Goals returns the judgements spanning the whole input whose category displays as goal.
func (c *Chart) Goals(goal string) []*Judgement {
	var goals []*Judgement
	for _, j := range c.Cell(0, len(c.tokens)).Judgements() {
		if category.String(j.Category) == goal {
			goals = append(goals, j)
		}
	}
	return goals
}

// String lists the populated cells of the chart, one judgement per line.
func (c *Chart) String() string {
	var sb strings.Builder
	for w := 1; w <= len(c.tokens); w++ {
		for start := 0; start+w <= len(c.tokens); start++ {
			cell := c.Cell(start, start+w)
			if cell.Len() == 0 {
				continue
			}
			sb.WriteString("(" + strconv.Itoa(start) + ", " + strconv.Itoa(start+w) + ")\n")
			for _, j := range cell.Judgements() {
				sb.WriteString("  " + j.String() + " [" + strconv.Itoa(j.Forest.Len()) + "]\n")
			}
		}
	}
	return sb.String()
}
