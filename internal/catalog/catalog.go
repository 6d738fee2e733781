// Package catalog provides the immutable reference data behind project
// estimates: project types, industries, features, team roles, add-ons,
// themes and starter packages.
//
// A Catalog is built once (from the embedded default or a TOML file) and is
// passed explicitly to everything that reads it. Lists are small, so lookups
// are linear scans.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mmynk/webnest/internal/models"
)

// Recognized catalogue names for Find.
const (
	ProjectTypes    = "projectTypes"
	Industries      = "industries"
	Features        = "features"
	TeamRoles       = "teamRoles"
	AddOns          = "addOns"
	Themes          = "themes"
	StarterPackages = "starterPackages"
)

var (
	ErrNotFound         = errors.New("catalog entry not found")
	ErrUnknownCatalogue = errors.New("unknown catalogue")
	ErrInvalid          = errors.New("invalid catalog")
)

//go:embed default.toml
var defaultTOML []byte

// Data is the serializable form of a catalog.
type Data struct {
	ProjectTypes    []models.ProjectType    `json:"project_types" toml:"project_types"`
	Industries      []models.Industry       `json:"industries" toml:"industries"`
	Features        []models.Feature        `json:"features" toml:"features"`
	TeamRoles       []models.TeamRole       `json:"team_roles" toml:"team_roles"`
	AddOns          []models.AddOn          `json:"add_ons" toml:"add_ons"`
	Themes          []models.Theme          `json:"themes" toml:"themes"`
	StarterPackages []models.StarterPackage `json:"starter_packages" toml:"starter_packages"`
	CommonPages     []string                `json:"common_pages" toml:"common_pages"`
}

// Catalog is read-only reference data. The zero value is an empty catalog in
// which every lookup misses.
type Catalog struct {
	data Data
}

// New validates d and returns a catalog holding a private copy of it.
func New(d Data) (*Catalog, error) {
	if err := validate(d); err != nil {
		return nil, err
	}
	return &Catalog{data: cloneData(d)}, nil
}

// Parse decodes a TOML catalog.
func Parse(raw []byte) (*Catalog, error) {
	var d Data
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(d)
}

// LoadFile reads and parses a TOML catalog file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(raw)
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load returns the catalog at path, or the default catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Data returns a copy of the catalog contents.
func (c *Catalog) Data() Data {
	return cloneData(c.data)
}

func (c *Catalog) ProjectType(id string) (models.ProjectType, bool) {
	return find(c.data.ProjectTypes, func(e models.ProjectType) bool { return e.ID == id })
}

func (c *Catalog) Industry(id string) (models.Industry, bool) {
	return find(c.data.Industries, func(e models.Industry) bool { return e.ID == id })
}

func (c *Catalog) Feature(id string) (models.Feature, bool) {
	return find(c.data.Features, func(e models.Feature) bool { return e.ID == id })
}

func (c *Catalog) AddOn(id string) (models.AddOn, bool) {
	return find(c.data.AddOns, func(e models.AddOn) bool { return e.ID == id })
}

func (c *Catalog) Theme(id string) (models.Theme, bool) {
	return find(c.data.Themes, func(e models.Theme) bool { return e.ID == id })
}

func (c *Catalog) TeamRole(id string) (models.TeamRole, bool) {
	r, ok := find(c.data.TeamRoles, func(e models.TeamRole) bool { return e.ID == id })
	if ok {
		r.Levels = slices.Clone(r.Levels)
	}
	return r, ok
}

// TeamRoleLevel looks up the price of one level of a role.
func (c *Catalog) TeamRoleLevel(role, level string) (models.TeamRoleLevel, bool) {
	r, ok := c.TeamRole(role)
	if !ok {
		return models.TeamRoleLevel{}, false
	}
	return find(r.Levels, func(l models.TeamRoleLevel) bool { return l.Level == level })
}

func (c *Catalog) StarterPackage(id string) (models.StarterPackage, bool) {
	p, ok := find(c.data.StarterPackages, func(e models.StarterPackage) bool { return e.ID == id })
	if ok {
		p.Features = slices.Clone(p.Features)
		p.Pages = slices.Clone(p.Pages)
	}
	return p, ok
}

// StarterPackageList returns all starter packages in catalog order.
func (c *Catalog) StarterPackageList() []models.StarterPackage {
	return c.Data().StarterPackages
}

// CommonPages returns the suggested page names offered next to custom pages.
func (c *Catalog) CommonPages() []string {
	return slices.Clone(c.data.CommonPages)
}

// Find looks up id in the named catalogue. Team roles are looked up by role id.
func (c *Catalog) Find(name, id string) (any, error) {
	var (
		entry any
		ok    bool
	)
	switch name {
	case ProjectTypes:
		entry, ok = c.ProjectType(id)
	case Industries:
		entry, ok = c.Industry(id)
	case Features:
		entry, ok = c.Feature(id)
	case TeamRoles:
		entry, ok = c.TeamRole(id)
	case AddOns:
		entry, ok = c.AddOn(id)
	case Themes:
		entry, ok = c.Theme(id)
	case StarterPackages:
		entry, ok = c.StarterPackage(id)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCatalogue, name)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, name, id)
	}
	return entry, nil
}

func find[T any](entries []T, match func(T) bool) (T, bool) {
	for _, e := range entries {
		if match(e) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

func cloneData(d Data) Data {
	out := Data{
		ProjectTypes:    slices.Clone(d.ProjectTypes),
		Industries:      slices.Clone(d.Industries),
		Features:        slices.Clone(d.Features),
		AddOns:          slices.Clone(d.AddOns),
		Themes:          slices.Clone(d.Themes),
		CommonPages:     slices.Clone(d.CommonPages),
		TeamRoles:       make([]models.TeamRole, len(d.TeamRoles)),
		StarterPackages: make([]models.StarterPackage, len(d.StarterPackages)),
	}
	for i, r := range d.TeamRoles {
		r.Levels = slices.Clone(r.Levels)
		out.TeamRoles[i] = r
	}
	for i, p := range d.StarterPackages {
		p.Features = slices.Clone(p.Features)
		p.Pages = slices.Clone(p.Pages)
		out.StarterPackages[i] = p
	}
	return out
}
