// Package overview holds the static dashboard figures shown on the Overview page.
package overview

import "sort"

// Slice is one labelled share of a chart.
type Slice struct {
	Label   string
	Percent int
	Color   string // hex color
}

// Chart is a precomputed distribution.
type Chart struct {
	Title  string
	Slices []Slice
}

// TotalDevices is the headline device count of the overview card.
const TotalDevices = 7250

// Charts returns the three status charts in display order.
func Charts() []Chart {
	return []Chart{
		{
			Title: "Application Status",
			Slices: []Slice{
				{"Healthy", 80, "#10b981"},
				{"Degraded", 10, "#f59e0b"},
				{"Error", 5, "#ef4444"},
				{"Unknown", 5, "#6b7280"},
			},
		},
		{
			Title: "Device Status",
			Slices: []Slice{
				{"Online", 55, "#10b981"},
				{"Error", 15, "#ef4444"},
				{"Degraded", 12, "#f59e0b"},
				{"Rebooting", 10, "#3b82f6"},
				{"Powered off", 5, "#6b7280"},
				{"Unknown", 3, "#8b5cf6"},
			},
		},
		{
			Title: "System Update Status",
			Slices: []Slice{
				{"Up to date", 75, "#10b981"},
				{"Out of date", 3, "#f59e0b"},
				{"Updating", 15, "#3b82f6"},
				{"Unknown", 7, "#9333ea"},
			},
		},
	}
}

// Segments splits width cells across the slices in proportion to their
// percentages using the largest remainder method. The result always sums to
// width (or to 0 when every slice is empty).
func (c Chart) Segments(width int) []int {
	out := make([]int, len(c.Slices))
	total := 0
	for _, s := range c.Slices {
		if s.Percent > 0 {
			total += s.Percent
		}
	}
	if width <= 0 || total == 0 {
		return out
	}

	type rem struct {
		idx  int
		frac int
	}
	rems := make([]rem, 0, len(c.Slices))
	used := 0
	for i, s := range c.Slices {
		if s.Percent <= 0 {
			continue
		}
		scaled := s.Percent * width
		out[i] = scaled / total
		used += out[i]
		rems = append(rems, rem{idx: i, frac: scaled % total})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < width; i++ {
		out[rems[i%len(rems)].idx]++
		used++
	}
	return out
}
