package service

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slug строит URL-ключ новости из заголовка:
//   - диакритика снимается (NFD без combining marks): "Café" -> "cafe";
//   - прочие алфавиты транслитерируются в латиницу: "Новости" -> "novosti";
//   - нижний регистр, серии символов вне [a-z0-9] схлопываются в один дефис,
//     дефисов по краям нет.
//
// Slug(Slug(x)) == Slug(x). Пустой результат возможен только для заголовка
// без букв и цифр.
func Slug(title string) string {
	folded, _, err := transform.String(foldMarks(), strings.TrimSpace(title))
	if err != nil {
		folded = title
	}

	s := slugRegex.ReplaceAllString(slug.Make(folded), "-")

	return strings.Trim(s, "-")
}

// foldMarks: transform.Chain хранит состояние, экземпляр нужен на каждый вызов.
func foldMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
