package recordstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TextInt is an integer stored as text ("13"). Bare numbers are accepted on
// read; writes always produce text so files keep their original shape.
type TextInt int

func (n *TextInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	return n.parse(s)
}

func (n TextInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(n)))
}

func (n *TextInt) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar integer", value.Line)
	}
	return n.parse(value.Value)
}

func (n TextInt) MarshalYAML() (any, error) {
	return strconv.Itoa(int(n)), nil
}

func (n *TextInt) parse(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}
	*n = TextInt(v)
	return nil
}

type ClubRecord struct {
	Name   string  `json:"name" yaml:"name"`
	Email  string  `json:"email" yaml:"email"`
	Points TextInt `json:"points" yaml:"points"`
}

type CompetitionRecord struct {
	Name           string  `json:"name" yaml:"name"`
	Date           string  `json:"date,omitempty" yaml:"date,omitempty"`
	NumberOfPlaces TextInt `json:"numberOfPlaces" yaml:"numberOfPlaces"`
}

type clubsDocument struct {
	Clubs []ClubRecord `json:"clubs" yaml:"clubs"`
}

type competitionsDocument struct {
	Competitions []CompetitionRecord `json:"competitions" yaml:"competitions"`
}
