package prompt

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// Placeholder is the literal token templates use for the input text.
const Placeholder = "{text_input}"

// KeywordExtraction is the template key for keyword extraction prompts.
const KeywordExtraction = "keyword_extraction"

// DefaultKeywordTemplate is the built-in keyword extraction prompt used
// when no template file entry overrides it.
const DefaultKeywordTemplate = "从以下文本中提取5到10个核心关键词。请确保关键词简洁明了，能准确概括文本主旨。" +
	"Extract 5 to 10 concise keywords that capture the gist of the text. " +
	"只返回关键词列表，用逗号分隔。Return only the keyword list, comma separated:\n\n---\n文本开始：\n{text_input}\n文本结束\n---"

// Loader reads prompt templates from a JSON file mapping template keys
// to template strings.
type Loader struct {
	Path string
}

// NewLoader creates a loader for the given template file path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load returns the template for key, or def when the file is missing,
// malformed, or has no entry for the key. The file is re-read on every
// call so edits take effect without a restart. Load never fails the
// caller.
func (l *Loader) Load(key, def string) string {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		log.Errorf("reading prompt file %s: %v", l.Path, err)
		return def
	}

	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		log.Errorf("parsing prompt file %s: %v", l.Path, err)
		return def
	}

	if tpl, ok := prompts[key]; ok {
		return tpl
	}
	return def
}
