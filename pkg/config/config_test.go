package config

import (
	"strings"
	"testing"
)

func TestParseStagesLevelLine(t *testing.T) {
	text := "Stage\n{\n\tLevel: amoeban, \"The Amoeban\"\n}\n"
	cfg, err := ParseStages(text)
	if err != nil {
		t.Fatalf("ParseStages: %v", err)
	}
	if len(cfg.Stages) != 1 || len(cfg.Stages[0].Levels) != 1 {
		t.Fatalf("unexpected shape: %#v", cfg)
	}
	l := cfg.Stages[0].Levels[0]
	if l.ID != "amoeban" || l.Name != "The Amoeban" {
		t.Errorf("got %#v", l)
	}
}

func TestEmitStagesRoundTrip(t *testing.T) {
	cfg := &StageConfig{Stages: []Stage{{Levels: []Level{{ID: "amoeban", Name: "The Amoeban"}}}}}
	out := EmitStages(cfg)
	if !strings.Contains(out, "\tLevel: amoeban, \"The Amoeban\"") {
		t.Errorf("unexpected emit: %q", out)
	}
	reparsed, err := ParseStages(out)
	if err != nil {
		t.Fatalf("ParseStages(emit): %v", err)
	}
	if reparsed.Stages[0].Levels[0] != cfg.Stages[0].Levels[0] {
		t.Errorf("round trip mismatch: %#v != %#v", reparsed.Stages[0].Levels[0], cfg.Stages[0].Levels[0])
	}
}

func TestParseTrophyUnknownKeyPreserved(t *testing.T) {
	text := "Page \"p\"\n{\n\tDesc: \"d\"\n\tTrophy \"t\"\n\t{\n\t\tId: 1\n\t\tFoo: 1, 2, \"three\"\n\t}\n}\n"
	cfg, err := ParseTrophies(text)
	if err != nil {
		t.Fatalf("ParseTrophies: %v", err)
	}
	if len(cfg.Pages) != 1 || len(cfg.Pages[0].Trophies) != 1 {
		t.Fatalf("unexpected shape: %#v", cfg)
	}
	trophy := cfg.Pages[0].Trophies[0]
	if len(trophy.Etc) != 1 || trophy.Etc[0].Key != "Foo" {
		t.Fatalf("expected Foo to be preserved in Etc, got %#v", trophy.Etc)
	}
	if len(trophy.Etc[0].Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(trophy.Etc[0].Values))
	}
}

func TestEmitTrophyUnknownKeyRoundTrip(t *testing.T) {
	cfg := &TrophyConfig{Pages: []Page{{
		Name: "p",
		Desc: "d",
		Trophies: []Trophy{{
			Name: "t",
			ID:   1,
			Etc:  []Simple{{Key: "Foo", Values: []Token{IntegerToken{1}, IntegerToken{2}, StringToken{"three"}}}},
		}},
	}}}
	out := EmitTrophies(cfg)
	if !strings.Contains(out, "\t\tFoo: 1, 2, \"three\"") {
		t.Errorf("unexpected emit: %q", out)
	}
}

func TestParseCharacterBasic(t *testing.T) {
	text := "Character \"Jimmy\"\n{\n\tPowerup: 3\n\tDesc: \"Lightning fast\"\n\tTip: \"Use the super guide\"\n}\n"
	cfg, err := ParseCharacters(text)
	if err != nil {
		t.Fatalf("ParseCharacters: %v", err)
	}
	if len(cfg.Characters) != 1 {
		t.Fatalf("unexpected shape: %#v", cfg)
	}
	c := cfg.Characters[0]
	if c.Name != "Jimmy" || c.Powerup != 3 || c.Desc != "Lightning fast" || len(c.Tips) != 1 {
		t.Errorf("got %#v", c)
	}
}
