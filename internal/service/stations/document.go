package stations

import (
	"encoding/json"
	"fmt"
	"io"
)

// StationsDocument is the provider's stations_list reference.
type StationsDocument struct {
	Countries []Country `json:"countries"`
}

type Country struct {
	Title   string   `json:"title"`
	Regions []Region `json:"regions"`
}

type Region struct {
	Title       string       `json:"title"`
	Settlements []Settlement `json:"settlements"`
}

type Settlement struct {
	Title    string    `json:"title"`
	Codes    CodeBlock `json:"codes"`
	Stations []Station `json:"stations"`
}

type Station struct {
	Title         string    `json:"title"`
	StationType   string    `json:"station_type"`
	TransportType string    `json:"transport_type"`
	Codes         CodeBlock `json:"codes"`
}

// CodeBlock keeps YandexCode nil when the key is absent, so an empty code
// can be told apart from a missing one.
type CodeBlock struct {
	YandexCode *string `json:"yandex_code"`
}

func DecodeDocument(r io.Reader) (StationsDocument, error) {
	var doc StationsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return StationsDocument{}, fmt.Errorf("decode stations document: %w", err)
	}
	return doc, nil
}
