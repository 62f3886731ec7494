package config

import (
	"fmt"
	"strings"
)

// Character is a single "Character "name" { ... }" block.
type Character struct {
	Name    string
	Powerup int64
	Desc    string
	Tips    []string
	Etc     []Simple
}

// CharacterConfig is the parsed contents of characters.cfg.
type CharacterConfig struct {
	Valid      bool
	Characters []Character
}

// ParseCharacters parses characters.cfg text into a CharacterConfig.
func ParseCharacters(text string) (*CharacterConfig, error) {
	cfg := &CharacterConfig{}
	lines := preprocess(text)

	var ctx Character
	for _, line := range lines {
		if line == "" || line == "{" {
			continue
		}
		if line == "}" {
			cfg.Characters = append(cfg.Characters, ctx)
			ctx = Character{}
			continue
		}
		if strings.HasPrefix(line, "Character") {
			_, rest := splitToFirstWhitespace(line)
			ctx = Character{Name: quotedName(rest)}
			continue
		}

		key := strings.TrimSpace(scanToBefore(line, ":"))
		if key == line {
			continue
		}
		value := splitToAfter(line, ":")
		tokens := Tokenize(value)

		switch key {
		case "Powerup":
			if len(tokens) != 1 {
				return nil, &ParseError{Reason: fmt.Sprintf("Powerup expects 1 value, got %d", len(tokens))}
			}
			ctx.Powerup = TokenInteger(tokens[0])
		case "Desc":
			ctx.Desc = joinTokenText(tokens)
		case "Tip":
			ctx.Tips = append(ctx.Tips, joinTokenText(tokens))
		default:
			ctx.Etc = append(ctx.Etc, Simple{Key: key, Values: tokens})
		}
	}

	cfg.Valid = true
	return cfg, nil
}

// EmitCharacters renders a CharacterConfig back to text. Unlike trophy Etc
// values, character Etc values are emitted as bare tokens, not quoted
// strings, matching observed original output.
func EmitCharacters(cfg *CharacterConfig) string {
	var b strings.Builder
	for _, c := range cfg.Characters {
		fmt.Fprintf(&b, "Character %q\n{\n", c.Name)
		fmt.Fprintf(&b, "\tPowerup: %d\n", c.Powerup)
		fmt.Fprintf(&b, "\tDesc: %q\n", c.Desc)
		for _, tip := range c.Tips {
			fmt.Fprintf(&b, "\tTip: %q\n", tip)
		}
		for _, e := range c.Etc {
			fmt.Fprintf(&b, "\t%s: %s\n", e.Key, JoinTokens(e.Values, ", ", false))
		}
		b.WriteString("}\n")
	}
	return b.String()
}
