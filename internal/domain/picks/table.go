package picks

import "strconv"

// Table renders enriched picks as a header row plus one row per pick, for
// tabular sinks. Columns that are empty across every row are dropped; a
// column with any populated cell is kept, with misses rendered as "".
func Table(enriched []EnrichedPick) ([]string, [][]string) {
	columns := []struct {
		name  string
		value func(EnrichedPick) string
	}{
		{"pick_no", func(p EnrichedPick) string { return strconv.Itoa(p.PickNo) }},
		{"round", func(p EnrichedPick) string { return strconv.Itoa(p.Round) }},
		{"draft_slot", func(p EnrichedPick) string { return strconv.Itoa(p.DraftSlot) }},
		{"player_id", func(p EnrichedPick) string { return p.PlayerID }},
		{"username", func(p EnrichedPick) string { return p.Username }},
		{"full_name", func(p EnrichedPick) string {
			if p.Player == nil {
				return ""
			}
			return p.Player.FullName
		}},
		{"position", func(p EnrichedPick) string {
			if p.Player == nil {
				return ""
			}
			return string(p.Player.Position)
		}},
		{"team", func(p EnrichedPick) string {
			if p.Player == nil {
				return ""
			}
			return p.Player.Team
		}},
		{"adp", func(p EnrichedPick) string {
			if p.Player == nil {
				return ""
			}
			return strconv.FormatFloat(p.Player.ADP, 'f', -1, 64)
		}},
		{"tier", func(p EnrichedPick) string {
			if p.Player == nil || !p.Player.Tiered() {
				return ""
			}
			return strconv.Itoa(p.Player.Tier)
		}},
	}

	cells := make([][]string, len(enriched))
	populated := make([]bool, len(columns))
	for i, pick := range enriched {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = col.value(pick)
			if row[j] != "" {
				populated[j] = true
			}
		}
		cells[i] = row
	}

	header := make([]string, 0, len(columns))
	keep := make([]int, 0, len(columns))
	for j, col := range columns {
		if populated[j] {
			header = append(header, col.name)
			keep = append(keep, j)
		}
	}

	rows := make([][]string, len(cells))
	for i, row := range cells {
		out := make([]string, len(keep))
		for k, j := range keep {
			out[k] = row[j]
		}
		rows[i] = out
	}
	return header, rows
}
