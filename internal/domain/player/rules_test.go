package player

import "testing"

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestTranslatePosition(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Goalkeeper":           PositionGoalkeeper,
		"Centre-Back":          PositionDefender,
		"Defender":             PositionDefender,
		"Attacking Midfielder": PositionMidfielder,
		"Midfielder":           PositionMidfielder,
		"Striker":              PositionForward,
		"Attacker":             PositionForward,
		"Forward":              PositionForward,
		"Sweeper-Keeper":       PositionGoalkeeper,
		"WINGER":               "Winger",
		"coach":                "Coach",
		"":                     "",
	}

	for input, want := range cases {
		if got := TranslatePosition(input); got != want {
			t.Fatalf("TranslatePosition(%q): expected %q, got %q", input, want, got)
		}
	}
}

func TestDeriveAppearances(t *testing.T) {
	t.Parallel()

	got := DeriveAppearances(&Performance{Minutes: intPtr(185), Appearances: intPtr(7)})
	if got.Appearances == nil || *got.Appearances != 2 {
		t.Fatalf("expected appearances=2 for 185 minutes, got %v", got.Appearances)
	}

	got = DeriveAppearances(&Performance{Minutes: intPtr(45)})
	if got.Appearances == nil || *got.Appearances != 1 {
		t.Fatalf("expected appearances=1 for 45 minutes, got %v", got.Appearances)
	}

	zero := &Performance{Minutes: intPtr(0), Appearances: intPtr(3)}
	if got := DeriveAppearances(zero); got != zero || *got.Appearances != 3 {
		t.Fatalf("expected zero minutes to pass through unchanged")
	}

	absent := &Performance{}
	if got := DeriveAppearances(absent); got.Appearances != nil {
		t.Fatalf("expected absent appearances to stay absent, got %v", *got.Appearances)
	}

	if DeriveAppearances(nil) != nil {
		t.Fatalf("expected nil performance to stay nil")
	}
}

func TestDeriveAppearances_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := &Performance{Minutes: intPtr(900), Appearances: intPtr(12)}
	_ = DeriveAppearances(in)
	if *in.Appearances != 12 {
		t.Fatalf("expected input to stay untouched, got appearances=%d", *in.Appearances)
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := (Info{Name: strPtr("L. Messi"), FirstName: strPtr("Lionel")}).DisplayName(); got != "L. Messi" {
		t.Fatalf("expected full name, got %q", got)
	}
	if got := (Info{FirstName: strPtr("Lionel"), LastName: strPtr("Messi")}).DisplayName(); got != "Lionel Messi" {
		t.Fatalf("expected joined name, got %q", got)
	}
	if got := (Info{LastName: strPtr("Messi")}).DisplayName(); got != "Messi" {
		t.Fatalf("expected last name only, got %q", got)
	}
	if got := (Info{}).DisplayName(); got != "Jugador" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestFromRecord(t *testing.T) {
	t.Parallel()

	if _, ok := FromRecord(Record{}); ok {
		t.Fatalf("expected record without player to be dropped")
	}

	rec := Record{
		Player: &Info{ID: 10, Name: strPtr("Pedri"), Position: strPtr("Midfielder")},
		Statistics: []Statistics{
			{Position: strPtr("Attacker"), Minutes: intPtr(1800), Goals: intPtr(4), Rating: strPtr("7.12")},
			{Position: strPtr("Defender"), Minutes: intPtr(90), Goals: intPtr(9)},
		},
	}

	got, ok := FromRecord(rec)
	if !ok {
		t.Fatalf("expected record to map")
	}
	if got.Position == nil || *got.Position != "Attacker" {
		t.Fatalf("expected statistics position to win, got %v", got.Position)
	}
	if got.Performance == nil || got.Performance.Rating == nil || *got.Performance.Rating != 7.12 {
		t.Fatalf("expected parsed rating, got %+v", got.Performance)
	}
	// Known limitation: only the first statistics split is used, the second
	// split's 9 goals are not aggregated.
	if *got.Performance.Goals != 4 {
		t.Fatalf("expected goals from first split only, got %d", *got.Performance.Goals)
	}
	if *rec.Player.Position != "Midfielder" {
		t.Fatalf("expected source record to stay untouched")
	}
}

func TestFromRecord_FallsBackToBioPosition(t *testing.T) {
	t.Parallel()

	got, ok := FromRecord(Record{
		Player:     &Info{ID: 1, Position: strPtr("Goalkeeper")},
		Statistics: []Statistics{{Rating: strPtr("n/a")}},
	})
	if !ok {
		t.Fatalf("expected record to map")
	}
	if *got.Position != "Goalkeeper" {
		t.Fatalf("expected bio position, got %s", *got.Position)
	}
	if got.Performance.Rating != nil {
		t.Fatalf("expected invalid rating to be dropped")
	}
}

func TestSortRoster(t *testing.T) {
	t.Parallel()

	items := []Info{
		Normalize(Info{ID: 1, Name: strPtr("zubimendi"), Position: strPtr("Midfielder")}),
		Normalize(Info{ID: 2, Name: strPtr("Raya"), Position: strPtr("Goalkeeper")}),
		Normalize(Info{ID: 3, Name: strPtr("Saka"), Position: strPtr("Attacker")}),
		Normalize(Info{ID: 4, Name: strPtr("Coach"), Position: strPtr("Manager")}),
		Normalize(Info{ID: 5, Name: strPtr("Saliba"), Position: strPtr("Defender")}),
		Normalize(Info{ID: 6, Name: strPtr("Arteta")}),
		Normalize(Info{ID: 7, Name: strPtr("Odegaard"), Position: strPtr("Midfielder")}),
	}

	SortRoster(items)

	want := []int{2, 5, 7, 1, 3, 6, 4}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected id=%d, got=%d", i, id, items[i].ID)
		}
	}
}
