package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Level names one of a stage's playable levels.
type Level struct {
	ID   string
	Name string
}

// Dialog is an in-stage dialog line, optionally with a speaker title.
type Dialog struct {
	Index int64
	Text  string
	Title string
}

// StageDialog is a stage-transition dialog line.
type StageDialog struct {
	Index int64
	Text  string
}

// Credit is one line of the end-game credits roll. Int2 is -1 when absent.
type Credit struct {
	Int1 int64
	Text string
	Int2 int64
}

// Stage is a single "Stage { ... }" block.
type Stage struct {
	Levels       []Level
	Dialogs      []Dialog
	StageDialogs []StageDialog
	Credits      []Credit
}

// StageConfig is the parsed contents of stages.cfg.
type StageConfig struct {
	Valid             bool
	Stages            []Stage
	ExcludeRandStages []int64
	IncludeRandLevels []string
	Tips              []string
}

// ParseStages parses stages.cfg text into a StageConfig.
func ParseStages(text string) (*StageConfig, error) {
	cfg := &StageConfig{}
	lines := preprocess(text)

	ctx := Stage{}
	for _, line := range lines {
		if line == "" || line == "{" {
			continue
		}
		if line == "}" {
			cfg.Stages = append(cfg.Stages, ctx)
			ctx = Stage{}
			continue
		}
		if line == "Stage" {
			ctx = Stage{}
			continue
		}

		key := strings.TrimSpace(scanToBefore(line, ":"))
		value := splitToAfter(line, ":")
		tokens := Tokenize(value)

		switch key {
		case "Level":
			if len(tokens) != 2 {
				return nil, &ParseError{Reason: fmt.Sprintf("Level expects 2 values, got %d", len(tokens))}
			}
			ctx.Levels = append(ctx.Levels, Level{ID: TokenString(tokens[0]), Name: TokenString(tokens[1])})
		case "Dialog":
			d, err := parseDialog(tokens)
			if err != nil {
				return nil, err
			}
			ctx.Dialogs = append(ctx.Dialogs, d)
		case "StageDialog":
			if len(tokens) != 2 {
				return nil, &ParseError{Reason: fmt.Sprintf("StageDialog expects 2 values, got %d", len(tokens))}
			}
			ctx.StageDialogs = append(ctx.StageDialogs, StageDialog{Index: TokenInteger(tokens[0]), Text: TokenString(tokens[1])})
		case "Credit":
			c, err := parseCredit(tokens)
			if err != nil {
				return nil, err
			}
			ctx.Credits = append(ctx.Credits, c)
		case "ExcludeRandStages":
			for _, t := range tokens {
				cfg.ExcludeRandStages = append(cfg.ExcludeRandStages, TokenInteger(t))
			}
		case "IncludeRandLevels":
			for _, t := range tokens {
				cfg.IncludeRandLevels = append(cfg.IncludeRandLevels, TokenString(t))
			}
		case "Tip":
			if len(tokens) != 1 {
				return nil, &ParseError{Reason: fmt.Sprintf("Tip expects 1 value, got %d", len(tokens))}
			}
			cfg.Tips = append(cfg.Tips, TokenString(tokens[0]))
		}
	}

	cfg.Valid = true
	return cfg, nil
}

func parseDialog(tokens []Token) (Dialog, error) {
	switch len(tokens) {
	case 2:
		return Dialog{Index: TokenInteger(tokens[0]), Text: TokenString(tokens[1])}, nil
	case 3:
		return Dialog{Index: TokenInteger(tokens[0]), Text: TokenString(tokens[1]), Title: TokenString(tokens[2])}, nil
	default:
		return Dialog{}, &ParseError{Reason: fmt.Sprintf("Dialog expects 2 or 3 values, got %d", len(tokens))}
	}
}

func parseCredit(tokens []Token) (Credit, error) {
	switch len(tokens) {
	case 2:
		return Credit{Int1: TokenInteger(tokens[0]), Text: TokenString(tokens[1]), Int2: -1}, nil
	case 3:
		return Credit{Int1: TokenInteger(tokens[0]), Text: TokenString(tokens[1]), Int2: TokenInteger(tokens[2])}, nil
	default:
		return Credit{}, &ParseError{Reason: fmt.Sprintf("Credit expects 2 or 3 values, got %d", len(tokens))}
	}
}

// EmitStages renders a StageConfig back to text in the game's format.
func EmitStages(cfg *StageConfig) string {
	var b strings.Builder
	for _, s := range cfg.Stages {
		b.WriteString("Stage\n{\n")
		for _, l := range s.Levels {
			fmt.Fprintf(&b, "\tLevel: %s, %q\n", l.ID, l.Name)
		}
		for _, d := range s.Dialogs {
			if d.Title != "" {
				fmt.Fprintf(&b, "\tDialog: %d, %q, %q\n", d.Index, d.Text, d.Title)
			} else {
				fmt.Fprintf(&b, "\tDialog: %d, %q\n", d.Index, d.Text)
			}
		}
		for _, sd := range s.StageDialogs {
			fmt.Fprintf(&b, "\tStageDialog: %d, %q\n", sd.Index, sd.Text)
		}
		for _, c := range s.Credits {
			if c.Int2 >= 0 {
				fmt.Fprintf(&b, "\tCredit: %d, %q, %d\n", c.Int1, c.Text, c.Int2)
			} else {
				fmt.Fprintf(&b, "\tCredit: %d, %q\n", c.Int1, c.Text)
			}
		}
		b.WriteString("}\n")
	}
	if len(cfg.ExcludeRandStages) > 0 {
		b.WriteString("ExcludeRandStages: " + joinInts(cfg.ExcludeRandStages) + "\n")
	}
	if len(cfg.IncludeRandLevels) > 0 {
		b.WriteString("IncludeRandLevels: " + strings.Join(cfg.IncludeRandLevels, ", ") + "\n")
	}
	for _, tip := range cfg.Tips {
		fmt.Fprintf(&b, "Tip: %q\n", tip)
	}
	return b.String()
}

func joinInts(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ", ")
}
