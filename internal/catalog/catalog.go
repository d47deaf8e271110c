package catalog

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalog embed.FS

// AchievementDef is a static achievement definition: a unique code, a human
// title for ledger descriptions, and an optional coin reward.
type AchievementDef struct {
	Code  string `toml:"code"`
	Title string `toml:"title"`
	Coins int64  `toml:"coins"`
}

// MilestoneDef maps a stat threshold to a one-time achievement-point reward.
// The code is unique across the whole catalog and is what makes the award
// idempotent.
type MilestoneDef struct {
	Feature   string `toml:"feature"`
	Stat      string `toml:"stat"`
	Threshold int64  `toml:"threshold"`
	AP        int64  `toml:"ap"`
	Code      string `toml:"code"`
}

type catalogFile struct {
	Achievements []AchievementDef `toml:"achievements"`
	Milestones   []MilestoneDef   `toml:"milestones"`
	Features     map[string]int64 `toml:"features"`
}

// Catalog is immutable after Load; it is built once at startup and injected
// into the services that consult it.
type Catalog struct {
	achievements map[string]AchievementDef
	milestones   map[string][]MilestoneDef
	features     map[string]int64
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = defaultCatalog.ReadFile("catalog.toml")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("can't read catalog: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("can't parse catalog: %w", err)
	}

	c := &Catalog{
		achievements: make(map[string]AchievementDef, len(file.Achievements)),
		milestones:   make(map[string][]MilestoneDef),
		features:     make(map[string]int64, len(file.Features)),
	}

	for _, a := range file.Achievements {
		if a.Code == "" {
			return nil, fmt.Errorf("achievement with empty code")
		}
		if a.Coins < 0 {
			return nil, fmt.Errorf("achievement %s has negative coin reward", a.Code)
		}
		if _, ok := c.achievements[a.Code]; ok {
			return nil, fmt.Errorf("duplicate achievement code %s", a.Code)
		}
		c.achievements[a.Code] = a
	}

	seenCodes := make(map[string]struct{})
	for _, m := range file.Milestones {
		if m.Feature == "" || m.Stat == "" || m.Code == "" {
			return nil, fmt.Errorf("milestone with empty feature, stat or code")
		}
		if m.Threshold <= 0 || m.AP <= 0 {
			return nil, fmt.Errorf("milestone %s has non-positive threshold or reward", m.Code)
		}
		if _, ok := seenCodes[m.Code]; ok {
			return nil, fmt.Errorf("duplicate milestone code %s", m.Code)
		}
		seenCodes[m.Code] = struct{}{}
		key := milestoneKey(m.Feature, m.Stat)
		c.milestones[key] = append(c.milestones[key], m)
	}
	for _, list := range c.milestones {
		sort.Slice(list, func(i, j int) bool { return list[i].Threshold < list[j].Threshold })
	}

	for key, price := range file.Features {
		if price < 0 {
			return nil, fmt.Errorf("feature %s has negative price", key)
		}
		c.features[key] = price
	}

	return c, nil
}

func milestoneKey(feature, stat string) string {
	return feature + "/" + stat
}

func (c *Catalog) Achievement(code string) (AchievementDef, bool) {
	def, ok := c.achievements[code]
	return def, ok
}

// Milestones returns the milestone list for (feature, stat), ordered by
// ascending threshold. The returned slice must not be mutated.
func (c *Catalog) Milestones(feature, stat string) []MilestoneDef {
	return c.milestones[milestoneKey(feature, stat)]
}

func (c *Catalog) FeaturePrice(key string) (int64, bool) {
	price, ok := c.features[key]
	return price, ok
}
