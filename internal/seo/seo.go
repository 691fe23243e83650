// Package seo evaluates a static checklist of content heuristics over a
// draft. Every rule is a pure predicate over the text; rules never
// short-circuit each other and carry no state between evaluations.
package seo

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
)

// Rule names reported in the checklist.
const (
	RuleTitleLength     = "title_length"
	RuleMetaDescription = "meta_description_length"
	RuleHasH1           = "has_h1"
	RuleHasH2           = "has_h2"
	RuleMeetsLength     = "meets_length"
	RuleHasLinks        = "has_links"
	RuleImagesHaveAlt   = "images_have_alt"
)

// minH2Count is how many section headings a post needs to be skimmable.
const minH2Count = 2

// lengthRatio is the fraction of the target word count a draft must reach.
const lengthRatio = 0.9

var (
	wordRe  = regexp.MustCompile(`\w+`)
	h1Re    = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Re    = regexp.MustCompile(`(?m)^## (.+)$`)
	linkRe  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	imageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// Item is one evaluated checklist rule.
type Item struct {
	Rule   string `json:"rule"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Checklist is the result of one evaluation. Recomputed fresh every call.
type Checklist struct {
	Items          []Item             `json:"items"`
	WordCount      int                `json:"word_count"`
	KeywordDensity map[string]float64 `json:"keyword_density"`
}

// Passed reports whether every item passed.
func (c Checklist) Passed() bool {
	for _, item := range c.Items {
		if !item.Passed {
			return false
		}
	}
	return true
}

// Evaluate runs the full checklist over a draft. Keyword rules are emitted
// one per keyword and are order-independent: permuting the keyword list
// permutes the items but never changes the pass/fail set.
func Evaluate(draft content.Draft, keywords []string, targetWords int) Checklist {
	if targetWords <= 0 {
		targetWords = content.DefaultTargetWords
	}

	body := draft.Body
	wordCount := len(wordRe.FindAllString(body, -1))

	items := []Item{
		titleLengthItem(draft.Title),
		metaDescriptionItem(draft.MetaDescription),
		headingItem(RuleHasH1, h1Re, body, 1, "H1 heading"),
		headingItem(RuleHasH2, h2Re, body, minH2Count, "H2 headings"),
		meetsLengthItem(wordCount, targetWords),
		linksItem(body),
		imagesAltItem(body),
	}

	for _, kw := range content.CleanKeywords(keywords) {
		items = append(items, keywordItem(body, kw))
	}

	return Checklist{
		Items:          items,
		WordCount:      wordCount,
		KeywordDensity: KeywordDensity(body, keywords),
	}
}

func titleLengthItem(title string) Item {
	n := utf8.RuneCountInString(title)
	passed := n > 0 && n <= content.MaxTitleLen
	detail := fmt.Sprintf("%d chars (want 1-%d)", n, content.MaxTitleLen)
	if n == 0 {
		detail = "empty"
	}
	return Item{Rule: RuleTitleLength, Passed: passed, Detail: detail}
}

func metaDescriptionItem(desc string) Item {
	n := utf8.RuneCountInString(desc)
	passed := n > 0 && n <= content.MaxDescriptionLen
	detail := fmt.Sprintf("%d chars (want 1-%d)", n, content.MaxDescriptionLen)
	if n == 0 {
		detail = "empty"
	}
	return Item{Rule: RuleMetaDescription, Passed: passed, Detail: detail}
}

func headingItem(rule string, re *regexp.Regexp, body string, min int, label string) Item {
	count := len(re.FindAllString(body, -1))
	return Item{
		Rule:   rule,
		Passed: count >= min,
		Detail: fmt.Sprintf("%d %s (want >= %d)", count, label, min),
	}
}

func meetsLengthItem(wordCount, targetWords int) Item {
	required := int(lengthRatio * float64(targetWords))
	return Item{
		Rule:   RuleMeetsLength,
		Passed: wordCount >= required,
		Detail: fmt.Sprintf("%d words (want >= %d of %d target)", wordCount, required, targetWords),
	}
}

func linksItem(body string) Item {
	count := len(linkRe.FindAllString(body, -1))
	return Item{
		Rule:   RuleHasLinks,
		Passed: count > 0,
		Detail: fmt.Sprintf("%d links", count),
	}
}

// imagesAltItem passes vacuously when the draft has no images.
func imagesAltItem(body string) Item {
	images := imageRe.FindAllStringSubmatch(body, -1)
	missing := 0
	for _, img := range images {
		if strings.TrimSpace(img[1]) == "" {
			missing++
		}
	}
	return Item{
		Rule:   RuleImagesHaveAlt,
		Passed: missing == 0,
		Detail: fmt.Sprintf("%d images, %d missing alt text", len(images), missing),
	}
}

func keywordItem(body, keyword string) Item {
	present := strings.Contains(strings.ToLower(body), strings.ToLower(keyword))
	detail := "present"
	if !present {
		detail = "not found in body"
	}
	return Item{
		Rule:   fmt.Sprintf("keyword %q", keyword),
		Passed: present,
		Detail: detail,
	}
}

// KeywordDensity reports each keyword's share of the body's words as a
// percentage, rounded to two decimals. Empty keywords are skipped; an empty
// list yields an empty map.
func KeywordDensity(body string, keywords []string) map[string]float64 {
	words := wordRe.FindAllString(strings.ToLower(body), -1)
	total := len(words)
	if total == 0 {
		total = 1
	}
	joined := strings.Join(words, " ")

	densities := make(map[string]float64)
	for _, kw := range content.CleanKeywords(keywords) {
		phrase := strings.Join(wordRe.FindAllString(strings.ToLower(kw), -1), " ")
		if phrase == "" {
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
		count := len(re.FindAllString(joined, -1))
		densities[kw] = math.Round(10000*float64(count)/float64(total)) / 100
	}

	return densities
}
