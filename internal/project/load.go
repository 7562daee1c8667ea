package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/gbamap/internal/logger"
)

// layoutRecord mirrors one entry of layouts.json.
type layoutRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	PrimaryTileset   string `json:"primary_tileset"`
	SecondaryTileset string `json:"secondary_tileset"`
	BorderPath       string `json:"border_filepath"`
	BlockdataPath    string `json:"blockdata_filepath"`
}

// LoadLayouts loads the layout table from layouts.json, keyed by layout id.
func LoadLayouts(path string) (map[string]*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layouts: %w", err)
	}

	var doc struct {
		Layouts []*layoutRecord `json:"layouts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing layouts: %w", err)
	}

	layouts := make(map[string]*Layout, len(doc.Layouts))
	for _, rec := range doc.Layouts {
		if rec == nil || rec.ID == "" {
			continue
		}
		layouts[rec.ID] = &Layout{
			ID:               rec.ID,
			Name:             rec.Name,
			Width:            rec.Width,
			Height:           rec.Height,
			PrimaryTileset:   rec.PrimaryTileset,
			SecondaryTileset: rec.SecondaryTileset,
			BorderPath:       rec.BorderPath,
			BlockdataPath:    rec.BlockdataPath,
		}
	}

	return layouts, nil
}

// mapRecord mirrors the fields of a per-map map.json that the renderer
// consumes.
type mapRecord struct {
	Name         string `json:"name"`
	Layout       string `json:"layout"`
	ObjectEvents []struct {
		GraphicsID   string `json:"graphics_id"`
		X            int    `json:"x"`
		Y            int    `json:"y"`
		MovementType string `json:"movement_type"`
	} `json:"object_events"`
}

// LoadMaps loads every map listed in map_groups.json, reading each map's
// map.json under baseDir/data/maps. The numeric map id is group<<8 | index.
// A map whose map.json is missing or malformed is skipped with a warning;
// loading is best-effort.
func LoadMaps(groupsPath, baseDir string) ([]*Map, error) {
	data, err := os.ReadFile(groupsPath)
	if err != nil {
		return nil, fmt.Errorf("reading map groups: %w", err)
	}

	var order struct {
		GroupOrder []string `json:"group_order"`
	}
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("parsing map groups: %w", err)
	}

	var groups map[string]json.RawMessage
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing map groups: %w", err)
	}

	var maps []*Map
	for groupIdx, groupName := range order.GroupOrder {
		var names []string
		if err := json.Unmarshal(groups[groupName], &names); err != nil {
			logger.Warn("skipping malformed map group", zap.String("group", groupName), zap.Error(err))
			continue
		}

		for mapIdx, dir := range names {
			m, err := loadMap(baseDir, dir)
			if err != nil {
				logger.Warn("skipping map", zap.String("map", dir), zap.Error(err))
				continue
			}
			m.ID = groupIdx<<8 | mapIdx
			m.GroupNum = groupIdx
			m.MapNum = mapIdx
			maps = append(maps, m)
		}
	}

	return maps, nil
}

// loadMap reads one map.json into an unlinked Map record.
func loadMap(baseDir, dir string) (*Map, error) {
	path := filepath.Join(baseDir, "data", "maps", dir, "map.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map.json: %w", err)
	}

	var rec mapRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing map.json: %w", err)
	}

	m := &Map{
		Dir:      dir,
		Name:     rec.Name,
		LayoutID: rec.Layout,
	}
	if m.Name == "" {
		m.Name = dir
	}
	for _, ev := range rec.ObjectEvents {
		m.ObjectEvents = append(m.ObjectEvents, ObjectEvent{
			GraphicsID:   ev.GraphicsID,
			X:            ev.X,
			Y:            ev.Y,
			MovementType: MovementType(ev.MovementType),
		})
	}

	return m, nil
}
