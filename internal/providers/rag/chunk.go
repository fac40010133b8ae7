// Package rag prepares documents for the vector index: sentence-aware
// chunking bounded by token count, with overlap so retrieval does not lose
// context at chunk borders.
package rag

import (
	"strings"
	"sync"
	"unicode"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

type Chunk struct {
	Text      string
	TokenSize int
	Index     int
}

type ChunkerConfig struct {
	MaxTokens     int
	OverlapTokens int
}

// DefaultChunkerConfig fits comfortably inside the embedding model's
// context window.
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		MaxTokens:     400,
		OverlapTokens: 50,
	}
}

// ChunkText splits text into token-bounded chunks along sentence
// boundaries. Sentences longer than MaxTokens are sliced at the token
// level.
func ChunkText(text string, cfg ChunkerConfig) []Chunk {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	sentences := splitSentences(text)

	var chunks []Chunk
	var current strings.Builder
	currentTokens := 0
	index := 0

	flush := func() {
		if current.Len() == 0 {
			return
		}
		chunks = append(chunks, Chunk{
			Text:      strings.TrimSpace(current.String()),
			TokenSize: currentTokens,
			Index:     index,
		})
		index++
		current.Reset()
		currentTokens = 0
	}

	for i, sentence := range sentences {
		sentenceTokens := countTokens(sentence)

		// Oversized sentence: flush the buffer and slice it directly.
		if sentenceTokens > cfg.MaxTokens {
			flush()
			for _, sc := range sliceByTokens(sentence, cfg.MaxTokens) {
				chunks = append(chunks, Chunk{
					Text:      strings.TrimSpace(sc.Text),
					TokenSize: sc.TokenSize,
					Index:     index,
				})
				index++
			}
			continue
		}

		if currentTokens+sentenceTokens > cfg.MaxTokens && current.Len() > 0 {
			flush()

			// Seed the next chunk with trailing sentences from the
			// previous one.
			overlap := overlapFromSentences(sentences, i, cfg.OverlapTokens)
			current.WriteString(overlap)
			currentTokens = countTokens(overlap)
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentence)
		currentTokens += sentenceTokens
	}

	flush()
	return chunks
}

func sliceByTokens(text string, maxTokens int) []Chunk {
	enc := tokenizer()
	tokens := enc.Encode(text, nil, nil)

	var chunks []Chunk
	for i := 0; i < len(tokens); i += maxTokens {
		end := i + maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		part := tokens[i:end]
		chunks = append(chunks, Chunk{
			Text:      enc.Decode(part),
			TokenSize: len(part),
		})
	}
	return chunks
}

func splitSentences(text string) []string {
	var sentences []string

	for _, para := range splitParagraphs(text) {
		var current strings.Builder
		runes := []rune(para)

		for i, r := range runes {
			current.WriteRune(r)
			if r == '.' || r == '!' || r == '?' || r == '…' {
				if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
					if s := strings.TrimSpace(current.String()); s != "" {
						sentences = append(sentences, s)
					}
					current.Reset()
				}
			}
		}

		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) == 0 && text != "" {
		return []string{text}
	}
	return sentences
}

// splitParagraphs joins soft-wrapped lines inside a paragraph while
// keeping blank-line boundaries.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var result []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.ReplaceAll(p, "\n", " ")
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func overlapFromSentences(sentences []string, currentIdx int, targetTokens int) string {
	if currentIdx == 0 {
		return ""
	}

	var overlap []string
	tokens := 0
	for i := currentIdx - 1; i >= 0 && tokens < targetTokens; i-- {
		overlap = append([]string{sentences[i]}, overlap...)
		tokens += countTokens(sentences[i])
	}
	return strings.Join(overlap, " ")
}

func tokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return tk
}

func countTokens(text string) int {
	if text == "" {
		return 0
	}
	return len(tokenizer().Encode(text, nil, nil))
}
