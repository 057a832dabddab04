package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FallbackRole выдается министерствам без своего списка ролей
const FallbackRole = "Assistant"

// Catalog сопоставляет имя министерства со списком ролей.
// Поиск по имени чувствителен к регистру.
type Catalog struct {
	roles    map[string][]string
	fallback string
}

type fileFormat struct {
	Fallback   string              `yaml:"fallback"`
	Ministries map[string][]string `yaml:"ministries"`
}

func New(roles map[string][]string, fallback string) *Catalog {
	if fallback == "" {
		fallback = FallbackRole
	}
	c := &Catalog{
		roles:    make(map[string][]string, len(roles)),
		fallback: fallback,
	}
	for name, list := range roles {
		c.set(name, list)
	}
	return c
}

// Default возвращает встроенный каталог
func Default() *Catalog {
	return New(map[string][]string{
		"Louvor":   {"Vocal", "Guitar", "Keyboard", "Drums", "Bass"},
		"Recepção": {"Door", "Support", "Welcome"},
		"Infantil": {"Teacher", "Assistant", "Nursery"},
	}, FallbackRole)
}

// Load читает YAML-файл и накладывает его поверх встроенного каталога.
// Пустой path означает встроенный каталог без изменений.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role catalog: %w", err)
	}

	if err := c.merge(data); err != nil {
		return nil, fmt.Errorf("failed to parse role catalog %s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) merge(data []byte) error {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if fb := strings.TrimSpace(f.Fallback); fb != "" {
		c.fallback = fb
	}
	for name, list := range f.Ministries {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("ministry name must not be empty")
		}
		if len(c.clean(list)) == 0 {
			return fmt.Errorf("ministry %q has no roles", name)
		}
		c.set(name, list)
	}
	return nil
}

func (c *Catalog) set(name string, list []string) {
	roles := c.clean(list)
	if len(roles) == 0 {
		return
	}
	c.roles[name] = roles
}

func (c *Catalog) clean(list []string) []string {
	roles := make([]string, 0, len(list))
	for _, r := range list {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// RolesFor возвращает роли министерства или единственную резервную роль
func (c *Catalog) RolesFor(ministryName string) []string {
	if roles, ok := c.roles[ministryName]; ok {
		out := make([]string, len(roles))
		copy(out, roles)
		return out
	}
	return []string{c.fallback}
}

func (c *Catalog) Fallback() string {
	return c.fallback
}
