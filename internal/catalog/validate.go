package catalog

import (
	"fmt"
	"math"

	"github.com/mmynk/webnest/internal/models"
)

// validate checks ids are present and unique within each list, prices are
// finite and non-negative and multipliers finite and positive.
func validate(d Data) error {
	if err := checkIDs(ProjectTypes, d.ProjectTypes, func(e models.ProjectType) string { return e.ID }); err != nil {
		return err
	}
	for _, t := range d.ProjectTypes {
		if !validPrice(t.BasePrice) {
			return fmt.Errorf("%w: project type %q has a negative or non-finite base price", ErrInvalid, t.ID)
		}
	}

	if err := checkIDs(Industries, d.Industries, func(e models.Industry) string { return e.ID }); err != nil {
		return err
	}
	for _, in := range d.Industries {
		if !(in.Multiplier > 0) || math.IsInf(in.Multiplier, 0) {
			return fmt.Errorf("%w: industry %q multiplier must be positive and finite", ErrInvalid, in.ID)
		}
	}

	if err := checkIDs(Features, d.Features, func(e models.Feature) string { return e.ID }); err != nil {
		return err
	}
	for _, f := range d.Features {
		if !validPrice(f.Price) {
			return fmt.Errorf("%w: feature %q has a negative or non-finite price", ErrInvalid, f.ID)
		}
	}

	if err := checkIDs(AddOns, d.AddOns, func(e models.AddOn) string { return e.ID }); err != nil {
		return err
	}
	for _, a := range d.AddOns {
		if !validPrice(a.Price) {
			return fmt.Errorf("%w: add-on %q has a negative or non-finite price", ErrInvalid, a.ID)
		}
	}

	if err := checkIDs(Themes, d.Themes, func(e models.Theme) string { return e.ID }); err != nil {
		return err
	}

	if err := checkIDs(TeamRoles, d.TeamRoles, func(e models.TeamRole) string { return e.ID }); err != nil {
		return err
	}
	for _, r := range d.TeamRoles {
		seen := make(map[string]bool, len(r.Levels))
		for _, l := range r.Levels {
			if l.Level == "" || seen[l.Level] {
				return fmt.Errorf("%w: team role %q has empty or duplicate level %q", ErrInvalid, r.ID, l.Level)
			}
			if !validPrice(l.Price) || !validPrice(l.USDPrice) {
				return fmt.Errorf("%w: team role %q level %q has a negative or non-finite price", ErrInvalid, r.ID, l.Level)
			}
			seen[l.Level] = true
		}
	}

	if err := checkIDs(StarterPackages, d.StarterPackages, func(e models.StarterPackage) string { return e.ID }); err != nil {
		return err
	}
	for _, p := range d.StarterPackages {
		if !validPrice(p.Price) || !validPrice(p.USDPrice) || p.TimelineDays < 0 {
			return fmt.Errorf("%w: starter package %q has an invalid price or negative timeline", ErrInvalid, p.ID)
		}
	}
	return nil
}

// validPrice rejects negative values, NaN and infinities.
func validPrice(p models.Money) bool {
	return p >= 0 && !math.IsInf(p, 0)
}

func checkIDs[T any](name string, entries []T, id func(T) string) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		v := id(e)
		if v == "" {
			return fmt.Errorf("%w: %s[%d] has no id", ErrInvalid, name, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate id %q in %s", ErrInvalid, v, name)
		}
		seen[v] = true
	}
	return nil
}
