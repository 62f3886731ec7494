package config

import (
	"fmt"
	"strings"
)

// Simple is a generic (key, values) pair used to losslessly preserve any
// key inside a Trophy block that isn't one of the dialect's known fields.
type Simple struct {
	Key    string
	Values []Token
}

// Trophy is a single "Trophy "name" { ... }" block. Desc and SmallDesc, when
// they appear inside a Trophy (as opposed to a Page), are preserved in Etc
// rather than promoted to dedicated fields, matching observed game output.
type Trophy struct {
	Name string
	ID   int64
	Etc  []Simple
}

// Page is a single "Page "name" { ... }" block.
type Page struct {
	Name      string
	Desc      string
	SmallDesc string
	Trophies  []Trophy
}

// TrophyConfig is the parsed contents of trophy.cfg.
type TrophyConfig struct {
	Valid bool
	Pages []Page
}

// ParseTrophies parses trophy.cfg text into a TrophyConfig.
func ParseTrophies(text string) (*TrophyConfig, error) {
	cfg := &TrophyConfig{}
	lines := preprocess(text)

	var page Page
	var trophy Trophy
	inTrophy := false

	for _, line := range lines {
		if line == "" || line == "{" {
			continue
		}
		if line == "}" {
			if inTrophy {
				page.Trophies = append(page.Trophies, trophy)
				trophy = Trophy{}
				inTrophy = false
			} else {
				cfg.Pages = append(cfg.Pages, page)
				page = Page{}
			}
			continue
		}
		if strings.HasPrefix(line, "Page") {
			_, rest := splitToFirstWhitespace(line)
			page = Page{Name: quotedName(rest)}
			inTrophy = false
			continue
		}
		if strings.HasPrefix(line, "Trophy") {
			_, rest := splitToFirstWhitespace(line)
			trophy = Trophy{Name: quotedName(rest)}
			inTrophy = true
			continue
		}

		key := strings.TrimSpace(scanToBefore(line, ":"))
		value := splitToAfter(line, ":")
		if key == line {
			// no colon found; not a recognized line shape, ignore.
			continue
		}
		tokens := Tokenize(value)

		switch {
		case key == "Id":
			if len(tokens) != 1 {
				return nil, &ParseError{Reason: fmt.Sprintf("Id expects 1 value, got %d", len(tokens))}
			}
			trophy.ID = TokenInteger(tokens[0])
		case key == "Desc" && !inTrophy:
			page.Desc = joinTokenText(tokens)
		case key == "SmallDesc" && !inTrophy:
			page.SmallDesc = joinTokenText(tokens)
		default:
			trophy.Etc = append(trophy.Etc, Simple{Key: key, Values: tokens})
		}
	}

	cfg.Valid = true
	return cfg, nil
}

func quotedName(s string) string {
	toks := Tokenize(s)
	if len(toks) == 0 {
		return ""
	}
	return TokenString(toks[0])
}

func joinTokenText(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	return TokenString(tokens[0])
}

// EmitTrophies renders a TrophyConfig back to text.
func EmitTrophies(cfg *TrophyConfig) string {
	var b strings.Builder
	for _, p := range cfg.Pages {
		fmt.Fprintf(&b, "Page %q\n{\n", p.Name)
		fmt.Fprintf(&b, "\tDesc: %q\n", p.Desc)
		if p.SmallDesc != "" {
			fmt.Fprintf(&b, "\tSmallDesc: %q\n", p.SmallDesc)
		}
		for _, t := range p.Trophies {
			fmt.Fprintf(&b, "\tTrophy %q\n\t{\n", t.Name)
			fmt.Fprintf(&b, "\t\tId: %d\n", t.ID)
			for _, e := range t.Etc {
				fmt.Fprintf(&b, "\t\t%s: %s\n", e.Key, JoinTokens(e.Values, ", ", true))
			}
			b.WriteString("\t}\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
