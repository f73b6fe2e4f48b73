package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StationCodes maps a station title to its provider codes. Titles keep the
// order in which they were first added, both in memory and in JSON.
type StationCodes struct {
	titles []string
	codes  map[string][]string
}

func NewStationCodes() *StationCodes {
	return &StationCodes{codes: make(map[string][]string)}
}

func (s *StationCodes) Add(title, code string) {
	if s.codes == nil {
		s.codes = make(map[string][]string)
	}
	if _, ok := s.codes[title]; !ok {
		s.titles = append(s.titles, title)
	}
	s.codes[title] = append(s.codes[title], code)
}

func (s *StationCodes) Codes(title string) ([]string, bool) {
	codes, ok := s.codes[title]
	if !ok {
		return nil, false
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out, true
}

func (s *StationCodes) Titles() []string {
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	return out
}

func (s *StationCodes) Len() int {
	return len(s.titles)
}

func (s StationCodes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	out := bytes.NewBufferString("{")
	for i, title := range s.titles {
		if i > 0 {
			out.WriteByte(',')
		}
		buf.Reset()
		if err := enc.Encode(title); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimSpace(buf.Bytes()))
		out.WriteByte(':')

		buf.Reset()
		if err := enc.Encode(s.codes[title]); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimSpace(buf.Bytes()))
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

func (s *StationCodes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = StationCodes{codes: make(map[string][]string)}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("station codes: expected object, got %v", tok)
	}

	parsed := StationCodes{codes: make(map[string][]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		title, ok := tok.(string)
		if !ok {
			return fmt.Errorf("station codes: expected title, got %v", tok)
		}
		var codes []string
		if err := dec.Decode(&codes); err != nil {
			return fmt.Errorf("station codes: %q: %w", title, err)
		}
		if _, seen := parsed.codes[title]; !seen {
			parsed.titles = append(parsed.titles, title)
		}
		parsed.codes[title] = append(parsed.codes[title], codes...)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = parsed
	return nil
}
