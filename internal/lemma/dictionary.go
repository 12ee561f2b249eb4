// Package lemma resolves short inflected Spanish forms to their base form.
package lemma

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry is one line of a lemma JSONL file.
type Entry struct {
	Form  string `json:"form"`
	Lemma string `json:"lemma"`
}

// builtin covers the short verb and pronoun forms that appear at the end of
// verses most often. Keys and values are lower-case with accents.
var builtin = map[string]string{
	// ser / ir
	"es": "ser", "soy": "ser", "son": "ser", "era": "ser", "fue": "ser", "fui": "ser",
	"va": "ir", "voy": "ir", "vas": "ir", "van": "ir", "id": "ir",
	// haber
	"he": "haber", "ha": "haber", "has": "haber", "han": "haber", "hay": "haber",
	// dar / ver
	"da": "dar", "di": "dar", "dio": "dar", "doy": "dar", "das": "dar", "den": "dar", "dé": "dar",
	"ve": "ver", "veo": "ver", "vi": "ver", "vio": "ver", "ven": "ver", "ves": "ver",
	// short forms of verbs with a hiatus in the stem
	"lee": "leer", "lea": "leer", "leo": "leer", "leí": "leer",
	"cae": "caer", "caí": "caer",
	"cree": "creer", "creí": "creer", "crea": "crear",
	"roe": "roer", "oí": "oír", "oye": "oír",
	"rió": "reír", "ríe": "reír", "reí": "reír",
	// other irregular short forms
	"sé": "saber", "sal": "salir", "pon": "poner", "ten": "tener", "haz": "hacer",
	"mía": "mío", "tus": "tu", "mis": "mi", "sus": "su",
}

// Dictionary maps inflected forms to lemmas.
// It is read-only once loading has finished.
type Dictionary struct {
	entries map[string]string
}

// NewDictionary creates a dictionary preloaded with the built-in forms.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		entries: make(map[string]string, len(builtin)),
	}
	for form, lemma := range builtin {
		d.entries[form] = lemma
	}
	return d
}

// LoadFromFile adds the entries of a JSONL lemma file, one Entry per line.
// Malformed or incomplete lines are skipped; later entries override earlier ones.
func (d *Dictionary) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening lemma file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		form := strings.ToLower(strings.TrimSpace(entry.Form))
		lemma := strings.ToLower(strings.TrimSpace(entry.Lemma))
		if form == "" || lemma == "" {
			continue
		}

		d.entries[form] = lemma
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading lemma file: %w", err)
	}

	return nil
}

// Lemma returns the base form of word and whether it was found.
func (d *Dictionary) Lemma(word string) (string, bool) {
	lemma, ok := d.entries[strings.ToLower(word)]
	return lemma, ok
}

// Size returns the number of known forms.
func (d *Dictionary) Size() int {
	return len(d.entries)
}
