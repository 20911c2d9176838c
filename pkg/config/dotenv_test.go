package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("DOTENV_TEST_A", "")
	t.Setenv("DOTENV_TEST_B", "")

	path := filepath.Join(t.TempDir(), ".env")
	content := `# comment line
DOTENV_TEST_A=hello
export DOTENV_TEST_B="quoted value"

malformed line without equals
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("DOTENV_TEST_A"); got != "hello" {
		t.Errorf("DOTENV_TEST_A = %q", got)
	}
	if got := os.Getenv("DOTENV_TEST_B"); got != "quoted value" {
		t.Errorf("DOTENV_TEST_B = %q", got)
	}
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	t.Setenv("DOTENV_TEST_C", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DOTENV_TEST_C=from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("DOTENV_TEST_C"); got != "from-env" {
		t.Errorf("process env should win, got %q", got)
	}
}

func TestLoadDotEnvMissingFileIsFine(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("missing .env should not error: %v", err)
	}
}
