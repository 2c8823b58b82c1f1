package game

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed assets/dialogue.yaml
var dialogueYAML []byte

// DialogueScript holds the tutorial's lines, keyed by stage name plus a
// few banner keys for the idle escalations.
type DialogueScript struct {
	Speaker string                   `yaml:"speaker"`
	Stages  map[string]DialogueEntry `yaml:"stages"`
}

// DialogueEntry is the text block for one key.
type DialogueEntry struct {
	Lines []string `yaml:"lines"`
}

// LoadDialogueScript parses the embedded script.
func LoadDialogueScript() (*DialogueScript, error) {
	return ParseDialogueScript(dialogueYAML)
}

// ParseDialogueScript parses a script from raw YAML.
func ParseDialogueScript(data []byte) (*DialogueScript, error) {
	var ds DialogueScript
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dialogue script: %w", err)
	}
	return &ds, nil
}

// Lines returns the lines under a key. Unknown keys come back nil; the
// panel just renders empty rather than erroring.
func (ds *DialogueScript) Lines(key string) []string {
	if ds == nil {
		return nil
	}
	return ds.Stages[key].Lines
}

// StageLines returns the lines for a stage.
func (ds *DialogueScript) StageLines(s Stage) []string {
	return ds.Lines(s.String())
}

// wrapDialogue splits a line into rows of at most maxChars characters,
// breaking on spaces. A single word longer than maxChars gets a row of
// its own rather than being cut.
func wrapDialogue(line string, maxChars int) []string {
	if maxChars <= 0 || len(line) <= maxChars {
		if line == "" {
			return nil
		}
		return []string{line}
	}
	var rows []string
	var cur strings.Builder
	for _, word := range strings.Fields(line) {
		if cur.Len() == 0 {
			cur.WriteString(word)
			continue
		}
		if cur.Len()+1+len(word) > maxChars {
			rows = append(rows, cur.String())
			cur.Reset()
			cur.WriteString(word)
			continue
		}
		cur.WriteByte(' ')
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		rows = append(rows, cur.String())
	}
	return rows
}
