package rvdef

import (
	"path/filepath"
	"testing"
)

func TestKeyPathsAreRoleDistinct(t *testing.T) {
	seen := make(map[string]Role)
	for _, role := range Roles() {
		for _, path := range []string{
			PrivateKeyPath(role, "/tmp/keys"),
			PublicKeyPath(role, "/tmp/keys"),
		} {
			if prev, ok := seen[path]; ok {
				t.Errorf("path %q shared by roles %s and %s", path, prev, role)
			}
			seen[path] = role
		}
	}
}

func TestKeyPathsStable(t *testing.T) {
	got := PrivateKeyPath(RoleTeacher, "/base")
	want := filepath.Join("/base", "private", "teacher", "key")
	if got != want {
		t.Errorf("PrivateKeyPath = %q, want %q", got, want)
	}

	got = PublicKeyPath(RoleAdmin, "/base")
	want = filepath.Join("/base", "public", "admin", "key")
	if got != want {
		t.Errorf("PublicKeyPath = %q, want %q", got, want)
	}
}

func TestKeyPathsDefaultDir(t *testing.T) {
	def := DefaultKeyDir()
	if def == "" {
		t.Fatal("DefaultKeyDir is empty")
	}
	if got := PrivateKeyPath(RoleSupport, ""); got != filepath.Join(def, "private", "support", "key") {
		t.Errorf("empty destDir did not select default dir: %q", got)
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range Roles() {
		got, ok := ParseRole(role.DirName())
		if !ok || got != role {
			t.Errorf("ParseRole(%q) = %v, %v", role.DirName(), got, ok)
		}
	}
	if _, ok := ParseRole("principal"); ok {
		t.Error("ParseRole accepted an unknown role")
	}
}

func TestValidateProfileName(t *testing.T) {
	valid := []string{"roomview", "room-view", "room_view2", "R1"}
	for _, name := range valid {
		if err := ValidateProfileName(name); err != nil {
			t.Errorf("ValidateProfileName(%q): %v", name, err)
		}
	}

	invalid := []string{"", "-lead", "../escape", "a b", "x\\y", string(make([]byte, 80))}
	for _, name := range invalid {
		if err := ValidateProfileName(name); err == nil {
			t.Errorf("ValidateProfileName(%q) accepted invalid name", name)
		}
	}
}
