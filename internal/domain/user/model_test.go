package user

import "testing"

func TestCanSignIn(t *testing.T) {
	t.Parallel()

	if !CanSignIn("fan@club.com", "secret") {
		t.Fatalf("expected valid credentials to pass")
	}
	if CanSignIn("fan@club", "secret") {
		t.Fatalf("expected email without dot to fail")
	}
	if CanSignIn("fan@club.com", "short") {
		t.Fatalf("expected short password to fail")
	}
}

func TestRegistration_CanSignUp(t *testing.T) {
	t.Parallel()

	valid := Registration{
		Name:            "Ana",
		Email:           "ana@club.com",
		ConfirmEmail:    "ana@club.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	if !valid.CanSignUp() {
		t.Fatalf("expected valid registration")
	}

	cases := map[string]func(r *Registration){
		"empty name":         func(r *Registration) { r.Name = "" },
		"no at":              func(r *Registration) { r.Email, r.ConfirmEmail = "ana.club.com", "ana.club.com" },
		"email mismatch":     func(r *Registration) { r.ConfirmEmail = "other@club.com" },
		"password mismatch":  func(r *Registration) { r.ConfirmPassword = "secret2" },
		"password too short": func(r *Registration) { r.Password, r.ConfirmPassword = "abc", "abc" },
	}
	for name, mutate := range cases {
		r := valid
		mutate(&r)
		if r.CanSignUp() {
			t.Fatalf("%s: expected registration to be rejected", name)
		}
	}
}

func TestProfilePatch_Apply(t *testing.T) {
	t.Parallel()

	teamID := 529
	teamName := "Barcelona"
	stored := Profile{UserID: "u1", Name: "Ana", Email: "ana@club.com"}

	got := ProfilePatch{FavoriteTeamID: &teamID, FavoriteTeamName: &teamName}.Apply(stored)
	if got.Name != "Ana" || got.Email != "ana@club.com" {
		t.Fatalf("expected untouched fields to be kept, got %+v", got)
	}
	if got.FavoriteTeamID == nil || *got.FavoriteTeamID != 529 || *got.FavoriteTeamName != "Barcelona" {
		t.Fatalf("expected favorite team to be merged, got %+v", got)
	}
	if got.FavoriteTeamLogo != nil {
		t.Fatalf("expected logo to stay empty")
	}
	if !(ProfilePatch{}).IsEmpty() {
		t.Fatalf("expected zero patch to be empty")
	}
}
