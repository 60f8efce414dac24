package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thtahamid/active-recall-test/internal/model"
)

// Bank file names expected inside the custom words directory.
const (
	FileTargetsEnglish = "targets-en.txt"
	FileTargetsSpanish = "targets-es.txt"
	FileDecoysEnglish  = "decoys-en.txt"
	FileDecoysSpanish  = "decoys-es.txt"
)

// LoadBanks reads custom banks from one-word-per-line files in dir. Study
// positions follow file order, English first.
func LoadBanks(dir string) (Banks, error) {
	english, err := loadWords(filepath.Join(dir, FileTargetsEnglish))
	if err != nil {
		return Banks{}, fmt.Errorf("failed to load english targets: %w", err)
	}
	spanish, err := loadWords(filepath.Join(dir, FileTargetsSpanish))
	if err != nil {
		return Banks{}, fmt.Errorf("failed to load spanish targets: %w", err)
	}
	decoysEn, err := loadWords(filepath.Join(dir, FileDecoysEnglish))
	if err != nil {
		return Banks{}, fmt.Errorf("failed to load english decoys: %w", err)
	}
	decoysEs, err := loadWords(filepath.Join(dir, FileDecoysSpanish))
	if err != nil {
		return Banks{}, fmt.Errorf("failed to load spanish decoys: %w", err)
	}

	var banks Banks
	pos := 1
	for _, text := range english {
		banks.Targets = append(banks.Targets, model.Word{Text: text, Language: model.LangEnglish, Position: pos})
		pos++
	}
	for _, text := range spanish {
		banks.Targets = append(banks.Targets, model.Word{Text: text, Language: model.LangSpanish, Position: pos})
		pos++
	}
	for _, text := range decoysEn {
		banks.Decoys = append(banks.Decoys, model.Decoy{Text: text, Language: model.LangEnglish})
	}
	for _, text := range decoysEs {
		banks.Decoys = append(banks.Decoys, model.Decoy{Text: text, Language: model.LangSpanish})
	}
	if err := banks.Validate(); err != nil {
		return Banks{}, fmt.Errorf("invalid custom banks in %s: %w", dir, err)
	}
	return banks, nil
}

// loadWords reads one word per line from the provided file path.
func loadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
