package config

import (
	"os"
	"path/filepath"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Site struct {
	URL         string
	Title       string
	Description string
	Language    string
}

type GitHub struct {
	Token string
	// Endpoint is the GraphQL endpoint of the API.
	Endpoint string
	// Owner is the login of the profile owner. When empty, it is resolved from
	// the authenticated viewer.
	Owner string
}

type LanguageOverride struct {
	Name  string
	Color string
}

type RepositoryLanguageOverride struct {
	// Repository is the full repository identity (owner/name).
	Repository string
	Languages  []LanguageOverride
}

type Repositories struct {
	// BanList is a list of regular expressions matched against repository
	// names. Matching repositories are excluded from every output.
	BanList     []string
	RecentCount int
	// LanguageOverrides fully replaces the detected languages of a repository.
	LanguageOverrides []RepositoryLanguageOverride
	// ColorOverrides replaces the color reported by the API for a language
	// before the display colors are derived.
	ColorOverrides []LanguageOverride
}

type Contributions struct {
	Count int
}

type Content struct {
	NotesDir     string
	NotebooksDir string
	OutputDir    string
	FeedSize     int
}

var Hideoo = struct {
	Site          Site
	GitHub        GitHub
	Repositories  Repositories
	Contributions Contributions
	Content       Content
}{
	Site: Site{
		URL:         "https://hideoo.dev",
		Title:       "HiDeoo's Personal Notes",
		Description: "Guides, code, and thoughts from my personal journey.",
		Language:    "en-us",
	},
	GitHub: GitHub{
		Endpoint: "https://api.github.com/graphql",
	},
	Repositories: Repositories{
		BanList:     []string{`\.github`, `-repro`},
		RecentCount: 4,
		LanguageOverrides: []RepositoryLanguageOverride{
			{Repository: "HiDeoo/prettier-config", Languages: []LanguageOverride{{Name: "JSON", Color: "#28bd66"}}},
			{Repository: "HiDeoo/tsconfig", Languages: []LanguageOverride{{Name: "JSON", Color: "#28bd66"}}},
		},
		ColorOverrides: []LanguageOverride{
			{Name: "CSS", Color: "#6d13ec"},
			{Name: "JavaScript", Color: "#f0b400"},
			{Name: "JSON", Color: "#28bd66"},
			{Name: "Lua", Color: "#3c57dd"},
			{Name: "Shell", Color: "#1b984f"},
		},
	},
	Contributions: Contributions{
		Count: 8,
	},
	Content: Content{
		NotesDir:     "content/notes",
		NotebooksDir: "content/notebooks",
		OutputDir:    "dist",
		FeedSize:     25,
	},
}

// Load initializes the configuration values.
// It may optionally be called with a list of additional paths to check for the
// config file.
// Returns a boolean indicating whether or not a config file was loaded and an
// error if one occurred.
func Load(paths []string) (bool, error) {
	loaded, err := loadFromFile(paths)
	if err != nil {
		return loaded, err
	}
	if err := loadDotEnv(paths); err != nil {
		return loaded, err
	}
	loadFromEnv()
	return loaded, nil
}

// loadDotEnv loads the .env file of the working directory and of every
// additional config path into the environment. Variables that are already set
// take precedence.
func loadDotEnv(paths []string) error {
	for _, dir := range append([]string{"."}, paths...) {
		file := filepath.Join(dir, ".env")
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return errors.WrapIff(err, "failed to read %q", file)
		}
	}
	return nil
}

func loadFromFile(paths []string) (bool, error) {
	config := viper.New()

	// Viper has support for various formats, so it supports json, toml, yaml,
	// and more (https://github.com/spf13/viper#reading-config-files).
	config.SetConfigName("config")

	config.AddConfigPath(filepath.Join(xdg.ConfigHome, "hideoo"))
	config.AddConfigPath("$HOME/.config/hideoo")
	config.AddConfigPath(".")
	for _, path := range paths {
		config.AddConfigPath(path)
	}

	if err := config.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, nil
		}
		return false, err
	}

	if err := config.Unmarshal(&Hideoo); err != nil {
		return true, errors.Wrap(err, "failed to read hideoo configs")
	}

	return true, nil
}

func loadFromEnv() {
	for _, name := range []string{"HIDEOO_GITHUB_TOKEN", "GH_TOKEN", "GITHUB_TOKEN"} {
		if token := os.Getenv(name); token != "" {
			Hideoo.GitHub.Token = token
			return
		}
	}
}
