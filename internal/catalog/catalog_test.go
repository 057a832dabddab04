package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_RolesFor(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		ministry string
		want     []string
	}{
		{
			name:     "louvor",
			ministry: "Louvor",
			want:     []string{"Vocal", "Guitar", "Keyboard", "Drums", "Bass"},
		},
		{
			name:     "recepção",
			ministry: "Recepção",
			want:     []string{"Door", "Support", "Welcome"},
		},
		{
			name:     "infantil",
			ministry: "Infantil",
			want:     []string{"Teacher", "Assistant", "Nursery"},
		},
		{
			name:     "неизвестное министерство",
			ministry: "Intercessão",
			want:     []string{"Assistant"},
		},
		{
			name:     "регистр учитывается",
			ministry: "louvor",
			want:     []string{"Assistant"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.RolesFor(tt.ministry))
		})
	}
}

func TestCatalog_RolesForReturnsCopy(t *testing.T) {
	c := Default()

	roles := c.RolesFor("Louvor")
	roles[0] = "Trumpet"

	assert.Equal(t, "Vocal", c.RolesFor("Louvor")[0])
}

func TestNew_EmptyFallback(t *testing.T) {
	c := New(map[string][]string{"Louvor": {"Vocal"}}, "")

	assert.Equal(t, FallbackRole, c.Fallback())
	assert.Equal(t, []string{FallbackRole}, c.RolesFor("Mídia"))
}

func TestLoad(t *testing.T) {
	t.Run("пустой путь - встроенный каталог", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, FallbackRole, c.Fallback())
		assert.Len(t, c.RolesFor("Louvor"), 5)
	})

	t.Run("файл дополняет и переопределяет каталог", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roles.yaml")
		content := `
fallback: Auxiliar
ministries:
  Louvor: [Vocal, Violino]
  Mídia:
    - Projeção
    - " Som "
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"Vocal", "Violino"}, c.RolesFor("Louvor"))
		assert.Equal(t, []string{"Projeção", "Som"}, c.RolesFor("Mídia"))
		assert.Equal(t, []string{"Door", "Support", "Welcome"}, c.RolesFor("Recepção"))
		assert.Equal(t, []string{"Auxiliar"}, c.RolesFor("Outro"))
	})

	t.Run("ошибка: министерство без ролей", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ministries:\n  Louvor: []\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("ошибка: файл не найден", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("ошибка: некорректный YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ministries: [oops"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestLoad_ExampleFile(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "configs", "roles.example.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Projection", "Sound", "Streaming"}, c.RolesFor("Mídia"))
	assert.Equal(t, Default().RolesFor("Louvor"), c.RolesFor("Louvor"))
}
