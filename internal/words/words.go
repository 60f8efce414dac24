// Package words provides the target and decoy word banks.
package words

import (
	"fmt"

	"github.com/thtahamid/active-recall-test/internal/model"
)

// Banks holds the target words and decoys for one quiz.
type Banks struct {
	Targets []model.Word
	Decoys  []model.Decoy
}

// Builtin returns the default bilingual banks: 15 targets and 10 decoys.
func Builtin() Banks {
	english := []string{"apple", "river", "candle", "window", "garden", "mirror", "thunder", "basket"}
	spanish := []string{"perro", "luna", "fuego", "silla", "nube", "camino", "estrella"}

	targets := make([]model.Word, 0, len(english)+len(spanish))
	pos := 1
	for _, text := range english {
		targets = append(targets, model.Word{Text: text, Language: model.LangEnglish, Position: pos})
		pos++
	}
	for _, text := range spanish {
		targets = append(targets, model.Word{Text: text, Language: model.LangSpanish, Position: pos})
		pos++
	}

	decoys := []model.Decoy{
		{Text: "orange", Language: model.LangEnglish},
		{Text: "bridge", Language: model.LangEnglish},
		{Text: "pillow", Language: model.LangEnglish},
		{Text: "forest", Language: model.LangEnglish},
		{Text: "hammer", Language: model.LangEnglish},
		{Text: "gato", Language: model.LangSpanish},
		{Text: "playa", Language: model.LangSpanish},
		{Text: "reloj", Language: model.LangSpanish},
		{Text: "montana", Language: model.LangSpanish},
		{Text: "libro", Language: model.LangSpanish},
	}

	return Banks{Targets: targets, Decoys: decoys}
}

// Validate checks bank invariants: at least one target per language and no
// text shared between targets and decoys.
func (b Banks) Validate() error {
	if len(b.Targets) == 0 {
		return fmt.Errorf("no target words")
	}
	perLang := map[model.Language]int{}
	seen := map[string]struct{}{}
	for _, w := range b.Targets {
		if w.Text == "" {
			return fmt.Errorf("empty target word")
		}
		if _, ok := seen[w.Text]; ok {
			return fmt.Errorf("duplicate target word %q", w.Text)
		}
		seen[w.Text] = struct{}{}
		perLang[w.Language]++
	}
	for _, lang := range []model.Language{model.LangEnglish, model.LangSpanish} {
		if perLang[lang] == 0 {
			return fmt.Errorf("no target words for language %q", lang)
		}
	}
	for _, d := range b.Decoys {
		if d.Text == "" {
			return fmt.Errorf("empty decoy word")
		}
		if _, ok := seen[d.Text]; ok {
			return fmt.Errorf("decoy %q collides with a target word", d.Text)
		}
		seen[d.Text] = struct{}{}
	}
	return nil
}
