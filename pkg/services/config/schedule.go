package config

import (
	"fmt"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const (
	keyStrategy    = "strategy"
	keyIndex       = "index"
	keyBase        = "base"
	keyOutput      = "output"
	keyDiscountMin = "discount_min"
	keyDiscountMax = "discount_max"
)

// ScheduleDefaults fill in what a schedule section and its DEFAULT section leave out.
type ScheduleDefaults struct {
	BaseFile string
	Discount DiscountRange
}

// Schedule lists dated generation runs in file order.
type Schedule interface {
	Entries() []domain.ScheduleEntry
}

type iniSchedule struct {
	entries []domain.ScheduleEntry
}

// LoadSchedule parses an ini schedule where every section is named after the date it
// generates, e.g.
//
//	[DEFAULT]
//	base = deals_base.json
//
//	[20241101]
//	strategy = random
//	index = 0
//	output = deals_20241101.json
func LoadSchedule(path string, defaults ScheduleDefaults) (Schedule, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	shared := cfg.Section(ini.DefaultSection)
	var entries []domain.ScheduleEntry
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection || len(section.Keys()) == 0 {
			continue
		}

		entry, err := parseEntry(section, shared, defaults)
		if err != nil {
			return nil, fmt.Errorf("schedule section [%s]: %w", section.Name(), err)
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("schedule %s has no dated sections", path)
	}
	return &iniSchedule{entries: entries}, nil
}

func (s *iniSchedule) Entries() []domain.ScheduleEntry {
	return append([]domain.ScheduleEntry(nil), s.entries...)
}

func parseEntry(section, shared *ini.Section, defaults ScheduleDefaults) (domain.ScheduleEntry, error) {
	entry := domain.ScheduleEntry{
		Date:        section.Name(),
		BaseFile:    defaults.BaseFile,
		DiscountMin: defaults.Discount.Min,
		DiscountMax: defaults.Discount.Max,
	}

	strategy := lookup(section, shared, keyStrategy)
	if strategy == nil || strategy.String() == "" {
		return entry, fmt.Errorf("missing %q", keyStrategy)
	}
	entry.Strategy = domain.StrategyName(strategy.String())

	index := lookup(section, shared, keyIndex)
	if index == nil {
		return entry, fmt.Errorf("missing %q", keyIndex)
	}
	idx, err := index.Int()
	if err != nil {
		return entry, fmt.Errorf("invalid %q: %w", keyIndex, err)
	}
	entry.DateIndex = idx

	output := lookup(section, shared, keyOutput)
	if output == nil || output.String() == "" {
		return entry, fmt.Errorf("missing %q", keyOutput)
	}
	entry.OutputFile = output.String()

	if base := lookup(section, shared, keyBase); base != nil && base.String() != "" {
		entry.BaseFile = base.String()
	}
	if entry.BaseFile == "" {
		return entry, fmt.Errorf("missing %q and no base file given", keyBase)
	}

	if key := lookup(section, shared, keyDiscountMin); key != nil {
		if entry.DiscountMin, err = key.Float64(); err != nil {
			return entry, fmt.Errorf("invalid %q: %w", keyDiscountMin, err)
		}
	}
	if key := lookup(section, shared, keyDiscountMax); key != nil {
		if entry.DiscountMax, err = key.Float64(); err != nil {
			return entry, fmt.Errorf("invalid %q: %w", keyDiscountMax, err)
		}
	}

	return entry, nil
}

// lookup returns the key from section, falling back to the DEFAULT section.
func lookup(section, shared *ini.Section, name string) *ini.Key {
	if section.HasKey(name) {
		return section.Key(name)
	}
	if shared.HasKey(name) {
		return shared.Key(name)
	}
	return nil
}
